package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STACHE_TEST_BIND", ":9999")

	base := writeConfig(t, dir, "base.yml", `
logging:
  level: debug
packages:
  app: ./site
default_package: app
settings:
  partials.directories:
    - app:partials
    - app:shared
  mustache.markdown: true
i18n:
  default_locale: en
  domain: site
  catalogs: app:locales
web:
  bind: ":8080"
  routes:
    - name: home
      path: /
      template: home.mustache
`)
	override := writeConfig(t, dir, "override.yml", `
web:
  bind: "{{env "STACHE_TEST_BIND"}}"
  not_found: errors/404.mustache
`)

	c, err := NewFileConfigurationService([]string{base, override}).LoadConfiguration()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := c.Logging.Level.LogrusLevel(); got != logrus.DebugLevel {
		t.Errorf("log level = %v, want debug", got)
	}
	if c.Web.Bind != ":9999" {
		t.Errorf("bind = %q, want env expansion", c.Web.Bind)
	}
	if c.Web.NotFound != "errors/404.mustache" {
		t.Errorf("not_found = %q", c.Web.NotFound)
	}
	if c.DefaultPackage != "app" || c.Packages["app"] != "./site" {
		t.Errorf("packages = %v (default %q)", c.Packages, c.DefaultPackage)
	}
	if c.I18n.Domain != "site" || c.I18n.DefaultLocale != "en" {
		t.Errorf("i18n = %+v", c.I18n)
	}

	dirs, ok := c.Settings.PartialDirectories()
	if !ok {
		t.Fatalf("partial directories missing from %v", c.Settings)
	}
	if diff := cmp.Diff([]string{"app:partials", "app:shared"}, dirs); diff != "" {
		t.Errorf("partial directories (-want +got):\n%s", diff)
	}
	if !c.Settings.Bool("mustache.markdown") {
		t.Errorf("markdown setting not read")
	}
	if len(c.Web.Routes) != 1 || c.Web.Routes[0].Template != "home.mustache" {
		t.Errorf("routes = %+v", c.Web.Routes)
	}
}

func TestLoadConfigurationErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewFileConfigurationService([]string{filepath.Join(t.TempDir(), "nope.yml")}).LoadConfiguration()
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("BadLevel", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yml", "logging:\n  level: shouting\n")
		_, err := NewFileConfigurationService([]string{path}).LoadConfiguration()
		if err == nil {
			t.Fatal("expected error for bad log level")
		}
	})
}
