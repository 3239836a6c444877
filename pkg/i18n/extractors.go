package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the Accept-Language header we are willing to parse.
const maxAcceptLanguageLength = 4096

// LangExtractor returns the language code negotiated for r, or "" when none matched.
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds configuration for the language extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages sets the languages the extractor may return.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// Negotiator matches language preferences against a fixed set of supported codes.
type Negotiator struct {
	supported []string
	matcher   language.Matcher
}

// NewNegotiator builds a negotiator for the given codes. Unparseable codes are skipped.
func NewNegotiator(supported ...string) *Negotiator {
	n := &Negotiator{}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		n.supported = append(n.supported, strings.ToLower(code))
		tags = append(tags, tag)
	}
	n.matcher = language.NewMatcher(tags)
	return n
}

// Match returns the supported code closest to any of the given codes, or "".
func (n *Negotiator) Match(codes ...string) string {
	if len(n.supported) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		if tag, err := language.Parse(strings.TrimSpace(code)); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return ""
	}

	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	return n.supported[idx]
}

// MatchAcceptLanguage resolves an Accept-Language header honoring q-values.
func (n *Negotiator) MatchAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 || len(n.supported) == 0 {
		return ""
	}

	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	return n.supported[idx]
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header. Only supported languages are returned.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
		SupportedLangs: []string{DefaultLanguage},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	n := NewNegotiator(cfg.SupportedLangs...)

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := n.Match(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		if cfg.QueryParamName != "" {
			if v := r.URL.Query().Get(cfg.QueryParamName); v != "" {
				if lang := n.Match(v); lang != "" {
					return lang
				}
			}
		}

		return n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
	}
}
