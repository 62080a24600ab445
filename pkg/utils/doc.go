// Package utils holds the display helpers shared by every page template.
//
// Two pure functions are exposed through a single namespace value,
// InsomniaCureUtils, so templates reach them without importing anything:
//
//	tmpl := template.New("page").Funcs(utils.InsomniaCureUtils.FuncMap())
//
//	{{formatDate .SleepDate}}                                 // "Jan 5, 2024"
//	{{calculateSleepEfficiency .TimeInBed .TimeAsleep}}       // 88
//
// FormatDate renders a calendar date with a 4-digit year, abbreviated month
// and numeric day. Values that cannot be read as a date render as
// "Invalid Date" instead of failing.
//
// CalculateSleepEfficiency returns round(100 * timeAsleep / timeInBed).
// Inputs are not validated: a zero timeInBed yields +Inf, -Inf or NaN, the
// same way the division itself does.
//
// A namespace bound to another locale is created with New and exposes the
// same two names; the i18n middleware builds one per request.
package utils
