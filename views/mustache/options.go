package mustache

import (
	"github.com/sirupsen/logrus"

	"howett.net/stache/i18n"
)

// DefaultDomain is the translation domain used when neither the request
// nor the factory supplies a translation string factory.
const DefaultDomain = "stache"

// DefaultTranslationFactory creates TranslationStrings in DefaultDomain.
var DefaultTranslationFactory = i18n.NewFactory(DefaultDomain)

// Option represents a functional option for configuring the mustache
// renderer factory.
type Option func(*factory)

// FieldLoggingOption enables logging to a logrus-enabled stream.
func FieldLoggingOption(logger logrus.FieldLogger) Option {
	return func(f *factory) {
		f.logger = logger
	}
}

// LocalizerOption sets the localizer used when a request carries none.
func LocalizerOption(l i18n.Localizer) Option {
	return func(f *factory) {
		f.localizer = l
	}
}

// TranslationFactoryOption sets the translation string factory used when a
// request carries none.
func TranslationFactoryOption(tf i18n.Factory) Option {
	return func(f *factory) {
		f.translate = tf
	}
}

// MarkdownOption forces the markdown helper on or off regardless of the
// mustache.markdown setting.
func MarkdownOption(enabled bool) Option {
	return func(f *factory) {
		f.markdown = &enabled
	}
}
