// Package sanitizer renders user-written notes to safe HTML.
package sanitizer

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	notesPolicy *bluemonday.Policy
	markdown    goldmark.Markdown
	initOnce    sync.Once
)

func initRenderer() {
	initOnce.Do(func() {
		// Basic formatting only; raw HTML typed into notes never survives.
		notesPolicy = bluemonday.NewPolicy()
		notesPolicy.AllowStandardURLs()
		notesPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		notesPolicy.AllowAttrs("href").OnElements("a")
		notesPolicy.RequireNoFollowOnLinks(true)

		markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify))
	})
}

// SanitizeHTML applies the notes policy to an HTML fragment.
func SanitizeHTML(s string) string {
	initRenderer()
	return notesPolicy.Sanitize(s)
}

// Markdown converts markdown notes to sanitized HTML ready for a template.
// Input that goldmark cannot convert is shown as escaped text.
func Markdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	initRenderer()

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}

	return template.HTML(notesPolicy.Sanitize(buf.String()))
}
