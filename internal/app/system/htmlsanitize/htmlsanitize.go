// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize cleans user-entered text that ends up on printed
// certificates and exported reports.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy   = newRichPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// newRichPolicy allows the inline formatting certificate captions use.
func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "br", "p", "span")
	return p
}

// Sanitize keeps simple inline formatting and removes everything else,
// including scripts, event handlers and links.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(richPolicy.Sanitize(s))
}

// StripTags removes all markup and returns plain text with entities decoded.
// Used for spreadsheet cells and other non-HTML outputs.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !strings.Contains(s, "<") || !strings.Contains(s, ">")
}
