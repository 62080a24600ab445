// Package requests parses and validates the sleep log form.
package requests

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/insomniacure/insomnia/sleeplog"
)

// Form field names.
const (
	FieldSleepDate      = "sleep_date"
	FieldBedtime        = "bedtime"
	FieldWakeupTime     = "wakeup_time"
	FieldSleepLatency   = "sleep_latency"
	FieldSleepQuality   = "sleep_quality"
	FieldStressLevel    = "stress_level"
	FieldCaffeineIntake = "caffeine_intake"
	FieldExercise       = "exercise"
	FieldNotes          = "notes"
)

// Limits for free-form and numeric input.
const (
	MaxNotesLength  = 5000
	MaxSleepLatency = 24 * 60
	maxFormBytes    = 64 << 10
)

// SleepLogRequest is the raw sleep log form, kept as strings so an invalid
// submission can be rendered back exactly as typed.
type SleepLogRequest struct {
	SleepDate      string
	Bedtime        string
	WakeupTime     string
	SleepLatency   string
	SleepQuality   string
	StressLevel    string
	Notes          string
	CaffeineIntake bool
	Exercise       bool
}

// NewSleepLogRequest returns the blank form: today's date and default ratings.
func NewSleepLogRequest(today time.Time) SleepLogRequest {
	return SleepLogRequest{
		SleepDate:    today.Format(time.DateOnly),
		SleepLatency: "0",
		SleepQuality: strconv.Itoa(sleeplog.DefaultRating),
		StressLevel:  strconv.Itoa(sleeplog.DefaultRating),
	}
}

// FromEntry fills the form from a stored entry for editing.
func FromEntry(e sleeplog.Entry) SleepLogRequest {
	return SleepLogRequest{
		SleepDate:      e.SleepDate.Format(time.DateOnly),
		Bedtime:        e.Bedtime,
		WakeupTime:     e.WakeupTime,
		SleepLatency:   strconv.Itoa(e.SleepLatency),
		SleepQuality:   strconv.Itoa(e.SleepQuality),
		StressLevel:    strconv.Itoa(e.StressLevel),
		Notes:          e.Notes,
		CaffeineIntake: e.CaffeineIntake,
		Exercise:       e.Exercise,
	}
}

// ParseSleepLog reads the form from an urlencoded or multipart POST body.
// Checkboxes count as checked when present with any value.
func ParseSleepLog(w http.ResponseWriter, r *http.Request) (SleepLogRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return SleepLogRequest{}, errors.Join(ErrInvalidForm, err)
	}

	f := r.PostForm
	_, caffeine := f[FieldCaffeineIntake]
	_, exercise := f[FieldExercise]

	return SleepLogRequest{
		SleepDate:      strings.TrimSpace(f.Get(FieldSleepDate)),
		Bedtime:        strings.TrimSpace(f.Get(FieldBedtime)),
		WakeupTime:     strings.TrimSpace(f.Get(FieldWakeupTime)),
		SleepLatency:   strings.TrimSpace(f.Get(FieldSleepLatency)),
		SleepQuality:   strings.TrimSpace(f.Get(FieldSleepQuality)),
		StressLevel:    strings.TrimSpace(f.Get(FieldStressLevel)),
		Notes:          strings.TrimSpace(strings.ReplaceAll(f.Get(FieldNotes), "\r\n", "\n")),
		CaffeineIntake: caffeine,
		Exercise:       exercise,
	}, nil
}

// Validate converts the form into entry params.
// All field problems are reported together; params are only meaningful when errs is empty.
func (r SleepLogRequest) Validate() (sleeplog.Params, ValidationErrors) {
	var errs ValidationErrors
	p := sleeplog.Params{
		Notes:          r.Notes,
		CaffeineIntake: r.CaffeineIntake,
		Exercise:       r.Exercise,
	}

	switch d, err := time.Parse(time.DateOnly, r.SleepDate); {
	case r.SleepDate == "":
		errs.add(FieldSleepDate, "Sleep date is required.")
	case err != nil:
		errs.add(FieldSleepDate, "Enter the date as YYYY-MM-DD.")
	default:
		p.SleepDate = d
	}

	p.Bedtime = clockField(&errs, FieldBedtime, "Bedtime", r.Bedtime)
	p.WakeupTime = clockField(&errs, FieldWakeupTime, "Wake-up time", r.WakeupTime)
	p.SleepLatency = intField(&errs, FieldSleepLatency, "Time to fall asleep", r.SleepLatency, 0, 0, MaxSleepLatency)
	p.SleepQuality = intField(&errs, FieldSleepQuality, "Sleep quality", r.SleepQuality,
		sleeplog.DefaultRating, sleeplog.MinRating, sleeplog.MaxRating)
	p.StressLevel = intField(&errs, FieldStressLevel, "Stress level", r.StressLevel,
		sleeplog.DefaultRating, sleeplog.MinRating, sleeplog.MaxRating)

	if utf8.RuneCountInString(r.Notes) > MaxNotesLength {
		errs.add(FieldNotes, "Notes must be at most "+strconv.Itoa(MaxNotesLength)+" characters.")
	}

	return p, errs
}

// clockField accepts HH:MM and the HH:MM:SS some browsers send, normalised to HH:MM.
func clockField(errs *ValidationErrors, field, label, raw string) string {
	if raw == "" {
		errs.add(field, label+" is required.")
		return ""
	}
	for _, layout := range []string{"15:04", time.TimeOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04")
		}
	}
	errs.add(field, label+" must be a time like 23:30.")
	return ""
}

// intField parses an optional integer; an empty value yields def.
func intField(errs *ValidationErrors, field, label, raw string, def, lo, hi int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		errs.add(field, label+" must be a whole number from "+strconv.Itoa(lo)+" to "+strconv.Itoa(hi)+".")
		return def
	}
	return n
}
