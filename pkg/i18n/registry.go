package i18n

import (
	"errors"
	"slices"

	"golang.org/x/text/language"
)

// DefaultLang is the locale used when no default language is specified.
const DefaultLang = "en-US"

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// Registry maps supported locales to their formats and resolves requested
// languages against them. It is immutable after creation and safe for concurrent use.
type Registry struct {
	matcher language.Matcher
	tags    []string
	formats []*LocaleFormat
}

// NewRegistry creates a Registry for the given formats.
// The default language is tried first when nothing better matches.
func NewRegistry(defaultLang string, formats map[string]*LocaleFormat) (*Registry, error) {
	if defaultLang == "" {
		return nil, ErrEmptyLanguage
	}
	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, errors.Join(ErrInvalidLanguage, err)
	}

	r := &Registry{}
	var supported []language.Tag
	var defaultFormat *LocaleFormat

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		f := formats[name]
		if f == nil {
			return nil, ErrNilFormat
		}
		tag, err := language.Parse(name)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, err)
		}
		if tag == def {
			defaultFormat = f
			continue
		}
		supported = append(supported, tag)
		r.tags = append(r.tags, tag.String())
		r.formats = append(r.formats, f)
	}

	if defaultFormat == nil {
		return nil, ErrDefaultNotListed
	}

	// The matcher falls back to the first supported tag.
	supported = append([]language.Tag{def}, supported...)
	r.tags = append([]string{def.String()}, r.tags...)
	r.formats = append([]*LocaleFormat{defaultFormat}, r.formats...)
	r.matcher = language.NewMatcher(supported)

	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(defaultLang string, formats map[string]*LocaleFormat) *Registry {
	r, err := NewRegistry(defaultLang, formats)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the default language tag and its format.
func (r *Registry) Default() (string, *LocaleFormat) {
	return r.tags[0], r.formats[0]
}

// Languages returns the supported language tags, default first.
func (r *Registry) Languages() []string {
	return slices.Clone(r.tags)
}

// Match resolves an Accept-Language header value to the best supported locale.
// Returns the default locale when the header is empty, malformed or matches nothing.
//
// Example header: "de-CH,de;q=0.9,en;q=0.8" resolves to "de-DE".
func (r *Registry) Match(header string) (string, *LocaleFormat) {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return r.Default()
	}
	return r.match(tags...)
}

// Lookup resolves a single language tag, e.g. from a "lang" cookie.
// Reports false when the tag is malformed or no supported locale is close enough.
func (r *Registry) Lookup(lang string) (string, *LocaleFormat, bool) {
	if lang == "" {
		return "", nil, false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", nil, false
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return "", nil, false
	}
	return r.tags[idx], r.formats[idx], true
}

func (r *Registry) match(tags ...language.Tag) (string, *LocaleFormat) {
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return r.Default()
	}
	return r.tags[idx], r.formats[idx]
}
