package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/insomniacure/insomnia/pkg/db"
	"github.com/insomniacure/insomnia/pkg/logger"
)

type config struct {
	Address          string        `env:"ADDRESS" envDefault:":8080"`
	DefaultLocale    string        `env:"DEFAULT_LOCALE" envDefault:"en-US"`
	MetricsNamespace string        `env:"METRICS_NAMESPACE" envDefault:"insomnia"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	DB  db.Config
	Log logger.Config
}

func loadConfig() (config, error) {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
