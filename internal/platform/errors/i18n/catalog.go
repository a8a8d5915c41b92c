// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{
		BaseLocale: enUSCatalog,
		"pt-BR":    ptBRCatalog,
	}
	matcher = buildMatcher()
)

// GetCatalog returns the catalog for the given locale.
// Unknown locales resolve to the closest registered one, then to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}
	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return baseCatalog()
	}
	return match(tag)
}

// ForAcceptLanguage picks the catalog best matching an Accept-Language header.
func ForAcceptLanguage(header string) *Catalog {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return baseCatalog()
	}
	return match(tags...)
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Tag returns the language tag of this catalog.
func (c *Catalog) Tag() language.Tag {
	tag, err := language.Parse(c.locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata to ensure
// consistent output (template variables without metadata render as empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a new catalog for the given locale.
// This is primarily for testing purposes.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
	matcher = buildMatcherLocked()
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

type localeMatcher struct {
	matcher language.Matcher
	locales []string
}

func buildMatcher() localeMatcher {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	return buildMatcherLocked()
}

// buildMatcherLocked keeps the base locale first so it wins on no confidence.
func buildMatcherLocked() localeMatcher {
	locales := []string{BaseLocale}
	tags := []language.Tag{language.MustParse(BaseLocale)}
	for locale := range catalogs {
		if locale == BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		locales = append(locales, locale)
		tags = append(tags, tag)
	}
	return localeMatcher{matcher: language.NewMatcher(tags), locales: locales}
}

func match(tags ...language.Tag) *Catalog {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	_, index, confidence := matcher.matcher.Match(tags...)
	if confidence == language.No {
		return catalogs[BaseLocale]
	}
	if c, ok := catalogs[matcher.locales[index]]; ok {
		return c
	}
	return catalogs[BaseLocale]
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func baseCatalog() *Catalog {
	c, _ := lookupCatalog(BaseLocale)
	return c
}
