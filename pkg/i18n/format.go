package i18n

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// monthToken is the layout token replaced by the locale's month abbreviation.
const monthToken = "Jan"

// monthPlaceholder never appears in a Go time layout, so it survives t.Format untouched.
const monthPlaceholder = "\x00"

var englishMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// LocaleFormat contains formatting rules and methods for locale-specific formatting.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
	percentSymbol     string
	dateFormat        string
	mediumDateFormat  string
	timeFormat        string
	monthNames        [12]string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a new LocaleFormat with the given options.
// If no options are provided, it defaults to US English formatting.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		percentSymbol:     "%",
		dateFormat:        "01/02/2006",
		mediumDateFormat:  "Jan 2, 2006",
		timeFormat:        "3:04 PM",
		monthNames:        englishMonths,
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the thousand separator character.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// WithPercentSymbol sets the percent symbol, including any leading space.
func WithPercentSymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.percentSymbol = symbol
	}
}

// WithDateFormat sets the numeric date layout (Go time layout).
func WithDateFormat(format string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = format
	}
}

// WithMediumDateFormat sets the medium date layout.
// The "Jan" token is replaced with the locale's month abbreviation.
func WithMediumDateFormat(format string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.mediumDateFormat = format
	}
}

// WithTimeFormat sets the time layout (Go time layout).
func WithTimeFormat(format string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeFormat = format
	}
}

// WithMonthNames sets the abbreviated month names, January first.
func WithMonthNames(names [12]string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.monthNames = names
	}
}

// FormatNumber formats a number with the locale's separators.
// At most two decimal places are kept; trailing zeros are dropped.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Sprint(n)
	}

	negative := n < 0
	if negative {
		n = -n
	}

	n = math.Round(n*100) / 100
	intPart := int64(n)
	decPart := n - float64(intPart)

	result := lf.formatIntegerWithSeparator(intPart)
	if decPart > 0 {
		decStr := strings.TrimRight(fmt.Sprintf("%.2f", decPart)[2:], "0")
		if decStr != "" {
			result += lf.decimalSeparator + decStr
		}
	}

	if negative && result != "0" {
		result = "-" + result
	}

	return result
}

// FormatPercent formats a fraction as a percentage (0.5 -> "50%").
// One decimal place is kept when it is not zero.
func (lf *LocaleFormat) FormatPercent(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Sprint(n) + lf.percentSymbol
	}

	percentage := math.Round(n*1000) / 10
	negative := percentage < 0
	if negative {
		percentage = -percentage
	}

	intPart := int64(percentage)
	decPart := percentage - float64(intPart)

	result := fmt.Sprintf("%d", intPart)
	if decPart > 0 {
		decStr := strings.TrimRight(fmt.Sprintf("%.1f", decPart)[2:], "0")
		if decStr != "" {
			result += lf.decimalSeparator + decStr
		}
	}

	if negative && result != "0" {
		result = "-" + result
	}

	return result + lf.percentSymbol
}

// FormatDate formats a date with the locale's numeric date layout.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateFormat)
}

// FormatMediumDate formats a date with a 4-digit year, abbreviated month name
// and numeric day, ordered the way the locale orders them.
func (lf *LocaleFormat) FormatMediumDate(t time.Time) string {
	if !strings.Contains(lf.mediumDateFormat, monthToken) {
		return t.Format(lf.mediumDateFormat)
	}
	layout := strings.ReplaceAll(lf.mediumDateFormat, monthToken, monthPlaceholder)
	return strings.ReplaceAll(t.Format(layout), monthPlaceholder, lf.monthNames[t.Month()-1])
}

// FormatTime formats a time of day with the locale's time layout.
func (lf *LocaleFormat) FormatTime(t time.Time) string {
	return t.Format(lf.timeFormat)
}

// PercentSymbol returns the symbol appended by FormatPercent.
func (lf *LocaleFormat) PercentSymbol() string {
	return lf.percentSymbol
}

func (lf *LocaleFormat) formatIntegerWithSeparator(n int64) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}

	var groups []string
	for i := len(str); i > 0; i -= 3 {
		start := max(0, i-3)
		groups = append([]string{str[start:i]}, groups...)
	}

	return strings.Join(groups, lf.thousandSeparator)
}
