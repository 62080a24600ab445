package utils

import (
	"html/template"

	"github.com/insomniacure/insomnia/pkg/i18n"
)

// Names under which the namespace functions are reachable from templates.
const (
	NameFormatDate               = "formatDate"
	NameCalculateSleepEfficiency = "calculateSleepEfficiency"
)

// InsomniaCureUtils is the process-wide namespace used by page templates.
// It formats dates for en-US and is never modified after initialization.
var InsomniaCureUtils = New(nil)

// Namespace exposes FormatDate and CalculateSleepEfficiency bound to a locale.
// It is immutable and safe for concurrent use.
type Namespace struct {
	format *i18n.LocaleFormat
}

// New creates a namespace that formats dates for the given locale.
// A nil format means en-US.
func New(format *i18n.LocaleFormat) *Namespace {
	if format == nil {
		format = i18n.FormatEnUS()
	}
	return &Namespace{format: format}
}

// FormatDate renders value as a medium date of the namespace locale.
//
// Accepted values: date strings (2006-01-02, RFC 3339, 2006-01-02 15:04:05,
// 01/02/2006, Jan 2, 2006 and a few more), time.Time, *time.Time, *string,
// and int, int64 or float64 timestamps in milliseconds since the Unix epoch.
// Anything else, including nil, empty strings and zero times, renders as
// InvalidDate. Dates are shown in their own offset; no timezone conversion
// takes place.
func (n *Namespace) FormatDate(value any) string {
	return formatDate(n.format, value)
}

// CalculateSleepEfficiency is the package-level CalculateSleepEfficiency.
// Efficiency does not depend on the locale.
func (n *Namespace) CalculateSleepEfficiency(timeInBed, timeAsleep float64) float64 {
	return CalculateSleepEfficiency(timeInBed, timeAsleep)
}

// FuncMap returns the namespace functions keyed by their template names.
// The map holds exactly these two entries; callers may extend their own copy.
func (n *Namespace) FuncMap() template.FuncMap {
	return template.FuncMap{
		NameFormatDate:               n.FormatDate,
		NameCalculateSleepEfficiency: n.CalculateSleepEfficiency,
	}
}

// Names returns the names the namespace exposes, sorted.
func (n *Namespace) Names() []string {
	return []string{NameCalculateSleepEfficiency, NameFormatDate}
}

// Format returns the locale format the namespace renders dates with.
func (n *Namespace) Format() *i18n.LocaleFormat {
	return n.format
}
