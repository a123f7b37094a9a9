package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"howett.net/stache"
	"howett.net/stache/assets"
	"howett.net/stache/i18n"
	"howett.net/stache/internal/config"
	"howett.net/stache/views"
	"howett.net/stache/views/mustache"
	"howett.net/stache/web"
)

type app struct {
	config   *stache.Configuration
	logger   *logrus.Logger
	resolver *assets.Resolver
	catalog  *i18n.Catalog
	views    *views.Registry
	router   *mux.Router
	routes   *web.MuxRoutes
}

func loadApp(files []string) (*app, error) {
	if len(files) == 0 {
		files = []string{"stache.yml"}
	}
	cfg, err := config.NewFileConfigurationService(files).LoadConfiguration()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger := logrus.New()
	logger.Level = cfg.Logging.Level.LogrusLevel()

	a := &app{
		config: cfg,
		logger: logger,
	}

	a.resolver, err = assets.New(cfg.Packages, cfg.DefaultPackage)
	if err != nil {
		return nil, err
	}

	fallback := language.English
	if cfg.I18n.DefaultLocale != "" {
		fallback, err = language.Parse(cfg.I18n.DefaultLocale)
		if err != nil {
			return nil, fmt.Errorf("i18n.default_locale: %w", err)
		}
	}
	if cfg.I18n.Catalogs != "" {
		dir, err := a.resolver.Resolve("", cfg.I18n.Catalogs)
		if err != nil {
			return nil, fmt.Errorf("i18n.catalogs: %w", err)
		}
		a.catalog, err = i18n.LoadDir(dir, fallback)
		if err != nil {
			return nil, err
		}
		glog.Infof("loaded translations for %v", a.catalog.Languages())
	}

	a.views, err = views.New(
		views.SettingsOption(cfg.Settings),
		views.FieldLoggingOption(logger),
	)
	if err != nil {
		return nil, err
	}

	mopts := []mustache.Option{
		mustache.FieldLoggingOption(logger),
		mustache.LocalizerOption(a.catalog.Localizer(fallback)),
	}
	if cfg.I18n.Domain != "" {
		mopts = append(mopts, mustache.TranslationFactoryOption(i18n.NewFactory(cfg.I18n.Domain)))
	}
	if err := mustache.Include(a.views, a.resolver, mopts...); err != nil {
		return nil, err
	}

	a.router = mux.NewRouter()
	a.routes = &web.MuxRoutes{Router: a.router}
	return a, nil
}

func (a *app) translationFactory() i18n.Factory {
	if a.config.I18n.Domain == "" {
		return nil
	}
	return i18n.NewFactory(a.config.I18n.Domain)
}
