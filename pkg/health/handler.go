package health

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime"
	"net/http"
	"slices"
	"strings"
)

// LivenessHandler answers 200 as long as the process serves requests.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		write(w, r, http.StatusOK, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks and reports 503 when any of them fails.
// Details configured with WithDetails are included in the report.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := runChecks(r.Context(), checks, cfg)

		status := http.StatusOK
		if resp.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		write(w, r, status, resp)
	}
}

func write(w http.ResponseWriter, r *http.Request, status int, resp *Response) {
	w.Header().Set("Cache-Control", "no-store")

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	writeText(w, status, resp)
}

// writeText renders the status line followed by one sorted line per check
// and detail:
//
//	OK
//	postgres: healthy
//	default_locale = en-US
//	schema_version = 1
func writeText(w io.Writer, status int, resp *Response) {
	var b strings.Builder
	if status == http.StatusOK {
		b.WriteString("OK")
	} else {
		b.WriteString(http.StatusText(status))
	}

	for _, name := range slices.Sorted(maps.Keys(resp.Checks)) {
		c := resp.Checks[name]
		fmt.Fprintf(&b, "\n%s: %s", name, c.Status)
		if c.Error != "" {
			fmt.Fprintf(&b, " (%s)", c.Error)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(resp.Details)) {
		fmt.Fprintf(&b, "\n%s = %s", name, resp.Details[name])
	}

	_, _ = io.WriteString(w, b.String())
}

// wantsJSON reports whether the client asked for JSON with ?format=json
// or an Accept header listing application/json.
func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		if mt, _, err := mime.ParseMediaType(strings.TrimSpace(part)); err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}
