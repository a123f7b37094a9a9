package views

import (
	"github.com/sirupsen/logrus"

	"howett.net/stache"
)

// RegistryOption represents a functional option for configuring a
// Registry.
type RegistryOption func(*Registry) error

// SettingsOption supplies the settings handed to every renderer factory.
func SettingsOption(settings stache.Settings) RegistryOption {
	return func(r *Registry) error {
		r.settings = settings
		return nil
	}
}

// RendererOption registers factory for templates ending in ext.
func RendererOption(ext string, factory RendererFactory) RegistryOption {
	return func(r *Registry) error {
		return r.AddRenderer(ext, factory)
	}
}

// FieldLoggingOption enables logging to a logrus-enabled stream.
func FieldLoggingOption(logger logrus.FieldLogger) RegistryOption {
	return func(r *Registry) error {
		r.logger = logger
		return nil
	}
}
