package stache

import (
	"github.com/sirupsen/logrus"
)

type LogLevel struct {
	l *logrus.Level
}

func (l *LogLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	lev, err := logrus.ParseLevel(s)
	l.l = &lev
	return err
}

func (l *LogLevel) LogrusLevel() logrus.Level {
	if l.l == nil {
		return logrus.InfoLevel
	}
	return *l.l
}

// Route binds a named mux route to the view that renders it.
type Route struct {
	Name     string
	Path     string
	Template string
	Methods  []string
}

type Configuration struct {
	Logging struct {
		Level LogLevel
	}

	// Packages maps asset package names to directories on disk.
	Packages       map[string]string
	DefaultPackage string `yaml:"default_package"`

	// Settings is handed to every renderer factory verbatim.
	Settings Settings

	I18n struct {
		DefaultLocale string `yaml:"default_locale"`
		Domain        string
		Catalogs      string
	} `yaml:"i18n"`

	Web struct {
		Bind          string
		Proxied       bool
		SessionKeys   []string `yaml:"session_keys"`
		Routes        []Route
		NotFound      string `yaml:"not_found"`
		ErrorTemplate string `yaml:"error_template"`
	}
}

type ConfigurationService interface {
	LoadConfiguration() (*Configuration, error)
}
