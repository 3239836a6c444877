package sanitizer

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// contentPolicy keeps inline formatting and basic structure. Everything not
// listed here is stripped; the bodies of executable or interactive elements are
// dropped together with the tags.
var contentPolicy = newContentPolicy()

// quoteRestorer undoes bluemonday's quote escaping in text nodes. Quotes are
// common in Somali and English text and the allowed attributes cannot carry them.
var quoteRestorer = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"b", "i", "em", "strong", "u", "s", "mark", "small", "sub", "sup",
		"p", "br", "span", "ul", "ol", "li", "blockquote", "code", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)

	// Right-to-left hints matter for Arabic content.
	p.AllowAttrs("dir").Matching(regexp.MustCompile(`(?i)^(rtl|ltr|auto)$`)).Globally()
	p.AllowAttrs("lang").Matching(regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})*$`)).Globally()

	// Only elements with a closing tag can be skipped; void elements such as
	// input, embed, link and meta are simply not allowed.
	p.SkipElementsContent("script", "style", "iframe", "object", "form", "button", "noscript", "template")

	return p
}

// maxEntityLookahead covers the longest named character reference.
const maxEntityLookahead = 40

// restoreAmpersands turns "&amp;" back into "&" wherever a bare "&" cannot be
// read as a character reference, so "Tom & Jerry" and "R&D" come back unchanged
// while "&amp;lt;" stays escaped.
func restoreAmpersands(s string) string {
	const escaped = "&amp;"
	if !strings.Contains(s, escaped) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.Index(s, escaped)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		s = s[i+len(escaped):]

		rest := s
		if len(rest) > maxEntityLookahead {
			rest = rest[:maxEntityLookahead]
		}
		if html.UnescapeString("&"+rest) == "&"+html.UnescapeString(rest) {
			b.WriteByte('&')
		} else {
			b.WriteString(escaped)
		}
	}
}

// IsWhitespaceOnly reports whether the input is empty after trimming.
// It is meant for raw, pre-sanitization input.
func IsWhitespaceOnly(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SanitizeInput trims the input and removes disallowed tags and attributes.
// The result is always trimmed and sanitizing it again returns the same string.
func SanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	out := contentPolicy.Sanitize(s)
	out = quoteRestorer.Replace(out)
	out = restoreAmpersands(out)

	return strings.TrimSpace(out)
}

// IsEmptyAfterSanitization reports whether the original input carried content
// but nothing survived sanitization, i.e. it was made only of disallowed markup.
// Empty and whitespace-only input always yields false.
func IsEmptyAfterSanitization(original string) bool {
	if IsWhitespaceOnly(original) {
		return false
	}
	return SanitizeInput(original) == ""
}
