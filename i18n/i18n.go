// Package i18n provides translation strings, translation string factories
// and localizers backed by golang.org/x/text message catalogs.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// TranslationString is a message identifier waiting to be translated. It
// carries the catalog domain it belongs to and an optional default used
// when no translation exists.
type TranslationString struct {
	MsgID   string
	Domain  string
	Default string
}

// String returns the untranslated text.
func (ts TranslationString) String() string {
	if ts.Default != "" {
		return ts.Default
	}
	return ts.MsgID
}

// Factory creates TranslationStrings bound to one domain.
type Factory func(msgid string) TranslationString

// NewFactory returns a Factory for domain.
func NewFactory(domain string) Factory {
	return func(msgid string) TranslationString {
		return TranslationString{MsgID: msgid, Domain: domain}
	}
}

// Localizer translates TranslationStrings into a single locale.
type Localizer interface {
	Locale() language.Tag
	Translate(ts TranslationString) string
}

type identityLocalizer struct{}

func (identityLocalizer) Locale() language.Tag { return language.Und }

func (identityLocalizer) Translate(ts TranslationString) string { return ts.String() }

// Identity is a locale-less Localizer that returns every string as given.
var Identity Localizer = identityLocalizer{}

type catalogLocalizer struct {
	tag     language.Tag
	domains map[string]*catalog.Builder
}

func (l *catalogLocalizer) Locale() language.Tag { return l.tag }

func (l *catalogLocalizer) Translate(ts TranslationString) string {
	b, ok := l.domains[ts.Domain]
	if !ok {
		return ts.String()
	}
	p := message.NewPrinter(l.tag, message.Catalog(b))
	return p.Sprintf(message.Key(ts.MsgID, escapeVerbs(ts.String())))
}

// Catalog messages are printf formats; nothing we translate takes
// arguments, so every % is literal.
func escapeVerbs(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
