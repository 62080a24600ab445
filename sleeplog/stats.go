package sleeplog

import (
	"math"
	"slices"
)

// ChartData is the JSON payload behind the duration/quality chart.
type ChartData struct {
	Dates     []string  `json:"dates"`
	Durations []float64 `json:"durations"`
	Qualities []int     `json:"qualities"`
}

// NewChartData builds chart series from entries ordered newest first.
// The series run oldest to newest so the chart reads left to right.
func NewChartData(recent []Entry) ChartData {
	data := ChartData{
		Dates:     make([]string, 0, len(recent)),
		Durations: make([]float64, 0, len(recent)),
		Qualities: make([]int, 0, len(recent)),
	}
	for _, e := range slices.Backward(recent) {
		data.Dates = append(data.Dates, e.SleepDate.Format("Jan 02"))
		data.Durations = append(data.Durations, math.Round(e.SleepDuration*10)/10)
		data.Qualities = append(data.Qualities, e.SleepQuality)
	}
	return data
}

// Summary aggregates a set of entries for the tracker header.
type Summary struct {
	Count       int
	AvgDuration float64 // hours
	AvgQuality  float64
	// AvgEfficiency is a fraction (0.9 = 90%) over entries with time in bed.
	AvgEfficiency float64
}

// Summarize computes averages over entries. An empty slice yields a zero Summary.
func Summarize(entries []Entry) Summary {
	s := Summary{Count: len(entries)}
	if s.Count == 0 {
		return s
	}

	var duration, quality, efficiency float64
	var rated int
	for _, e := range entries {
		duration += e.SleepDuration
		quality += float64(e.SleepQuality)
		if inBed := e.TimeInBed(); inBed > 0 {
			efficiency += e.TimeAsleep() / inBed
			rated++
		}
	}

	s.AvgDuration = duration / float64(s.Count)
	s.AvgQuality = quality / float64(s.Count)
	if rated > 0 {
		s.AvgEfficiency = efficiency / float64(rated)
	}
	return s
}
