package views

import (
	"context"
	"html/template"
	"maps"

	"github.com/insomniacure/insomnia/pkg/i18n"
	"github.com/insomniacure/insomnia/pkg/sanitizer"
	"github.com/insomniacure/insomnia/pkg/utils"
	"github.com/insomniacure/insomnia/sleeplog"
)

// funcs returns the template helpers for the locale carried by ctx.
// The InsomniaCureUtils functions come from the namespace in ctx; the rest
// are presentation helpers over the same locale format.
func funcs(ctx context.Context) template.FuncMap {
	lang, format := i18n.LocaleFromContext(ctx)
	langs := i18n.LanguagesFromContext(ctx)

	fm := template.FuncMap{
		"formatNumber":  format.FormatNumber,
		"formatPercent": format.FormatPercent,
		"percentSymbol": format.PercentSymbol,
		"markdown":      sanitizer.Markdown,
		"lang":          func() string { return lang },
		"languages":     func() []string { return langs },
		"chartSize":     func() int { return sleeplog.ChartSize },
	}
	maps.Copy(fm, utils.FromContext(ctx).FuncMap())
	return fm
}
