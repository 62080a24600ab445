package utils

import (
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/insomniacure/insomnia/pkg/i18n"
)

// InvalidDate is rendered for values that cannot be read as a date.
const InvalidDate = "Invalid Date"

// maxTimestampMillis bounds numeric timestamps to ±100,000,000 days around the epoch.
const maxTimestampMillis = 8.64e15

// dateLayouts are tried in order; layouts without an offset parse as UTC.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// FormatDate formats a date with the en-US medium style ("Jan 5, 2024").
// See Namespace.FormatDate for the accepted values.
func FormatDate(value any) string {
	return InsomniaCureUtils.FormatDate(value)
}

// CalculateSleepEfficiency returns the percentage of time in bed spent asleep,
// rounded to the nearest integer with halves rounded up.
// Both durations must use the same unit. A zero timeInBed is not guarded
// and yields +Inf, -Inf or NaN.
func CalculateSleepEfficiency(timeInBed, timeAsleep float64) float64 {
	return roundHalfUp((timeAsleep / timeInBed) * 100)
}

func formatDate(lf *i18n.LocaleFormat, value any) string {
	t, ok := parseDate(value)
	if !ok {
		return InvalidDate
	}
	return lf.FormatMediumDate(t)
}

func parseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		return parseDateString(v)
	case *string:
		if v == nil {
			return time.Time{}, false
		}
		return parseDateString(*v)
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case int64:
		return fromMillis(float64(v))
	case float64:
		return fromMillis(v)
	default:
		return parseNumeric(reflect.ValueOf(value))
	}
}

// parseNumeric accepts every integer and float kind, named types included.
func parseNumeric(rv reflect.Value) (time.Time, bool) {
	switch {
	case rv.CanInt():
		return fromMillis(float64(rv.Int()))
	case rv.CanUint():
		return fromMillis(float64(rv.Uint()))
	case rv.CanFloat():
		return fromMillis(rv.Float())
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fromMillis reads a timestamp in milliseconds since the Unix epoch.
func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxTimestampMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf (-2.5 -> -2).
// Non-finite values are returned unchanged. A zero result keeps the sign of x,
// so values in [-0.5, 0) round to -0.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	if r == 0 {
		return math.Copysign(0, x)
	}
	return r
}
