// Package sleeplog holds the sleep diary model and the calculations the
// tracker pages and chart are built from.
package sleeplog

import (
	"errors"
	"time"
)

// Scale bounds and defaults for the 1-10 ratings.
const (
	MinRating     = 1
	MaxRating     = 10
	DefaultRating = 5
)

// ChartSize is the number of most recent entries plotted on the chart.
const ChartSize = 10

// ErrNotFound is returned when an entry does not exist.
var ErrNotFound = errors.New("sleeplog: entry not found")

// Entry is one night in the sleep diary.
type Entry struct {
	SleepDate      time.Time
	CreatedAt      time.Time
	Bedtime        string // HH:MM
	WakeupTime     string // HH:MM
	Notes          string // markdown
	ID             int64
	SleepDuration  float64 // hours
	SleepLatency   int     // minutes to fall asleep
	SleepQuality   int
	StressLevel    int
	CaffeineIntake bool
	Exercise       bool
}

// TimeInBed returns the minutes between bedtime and wake-up.
func (e Entry) TimeInBed() float64 {
	return e.SleepDuration * 60
}

// TimeAsleep returns the minutes in bed minus the time it took to fall asleep.
func (e Entry) TimeAsleep() float64 {
	return e.TimeInBed() - float64(e.SleepLatency)
}

// Params carries the user-editable fields of an entry.
type Params struct {
	SleepDate      time.Time
	Bedtime        string
	WakeupTime     string
	Notes          string
	SleepLatency   int
	SleepQuality   int
	StressLevel    int
	CaffeineIntake bool
	Exercise       bool
}

// Duration returns the hours slept for the params' bedtime and wake-up time.
func (p Params) Duration() float64 {
	return Duration(p.Bedtime, p.WakeupTime)
}

// Duration returns the hours between two HH:MM clock times.
// A wake-up time earlier than bedtime means the night crossed midnight.
// Malformed times yield 0.
func Duration(bedtime, wakeup string) float64 {
	bed, err := time.Parse("15:04", bedtime)
	if err != nil {
		return 0
	}
	wake, err := time.Parse("15:04", wakeup)
	if err != nil {
		return 0
	}
	if wake.Before(bed) {
		wake = wake.Add(24 * time.Hour)
	}
	return wake.Sub(bed).Hours()
}
