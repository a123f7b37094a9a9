package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	yaml "gopkg.in/yaml.v2"
)

type catalogFile struct {
	Locale   string
	Domain   string
	Messages map[string]string
}

// Catalog holds translations for any number of domains and locales. The
// zero Catalog is empty and hands out the Identity localizer.
type Catalog struct {
	domains  map[string]*catalog.Builder
	tags     []language.Tag
	fallback language.Tag

	// matchTags is tags with fallback first, as the matcher prefers its
	// first entry when nothing matches.
	matchTags []language.Tag
	matcher   language.Matcher
}

// LoadDir loads a catalog laid out as <dir>/<locale>/<domain>.yaml.
func LoadDir(dir string, fallback language.Tag) (*Catalog, error) {
	return LoadFS(os.DirFS(dir), fallback)
}

// LoadFS loads every <locale>/<domain>.yaml file in fsys. The fallback tag
// is used when a request matches no loaded locale.
func LoadFS(fsys fs.FS, fallback language.Tag) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: glob catalogs: %w", err)
	}
	sort.Strings(paths)

	c := &Catalog{
		domains:  make(map[string]*catalog.Builder),
		fallback: fallback,
	}
	seen := make(map[language.Tag]bool)

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", p, err)
		}
		tag, err := c.addFile(p, file)
		if err != nil {
			return nil, err
		}
		if !seen[tag] {
			seen[tag] = true
			c.tags = append(c.tags, tag)
		}
	}

	c.buildMatcher()
	return c, nil
}

func (c *Catalog) addFile(p string, file catalogFile) (language.Tag, error) {
	localeFromPath := path.Base(path.Dir(p))
	domainFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		locale = localeFromPath
	}
	if locale != localeFromPath {
		return language.Und, fmt.Errorf("i18n: %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	domain := strings.TrimSpace(file.Domain)
	if domain == "" {
		domain = domainFromPath
	}
	if domain != domainFromPath {
		return language.Und, fmt.Errorf("i18n: %s: domain %q must match file name %q", p, domain, domainFromPath)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("i18n: %s: %w", p, err)
	}

	b, ok := c.domains[domain]
	if !ok {
		b = catalog.NewBuilder(catalog.Fallback(c.fallback))
		c.domains[domain] = b
	}
	for key, msg := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return language.Und, fmt.Errorf("i18n: %s: blank message id", p)
		}
		if err := b.SetString(tag, key, escapeVerbs(msg)); err != nil {
			return language.Und, fmt.Errorf("i18n: %s: %q: %w", p, key, err)
		}
	}
	return tag, nil
}

func (c *Catalog) buildMatcher() {
	if len(c.tags) == 0 {
		return
	}
	c.matchTags = []language.Tag{c.fallback}
	for _, t := range c.tags {
		if t != c.fallback {
			c.matchTags = append(c.matchTags, t)
		}
	}
	c.matcher = language.NewMatcher(c.matchTags)
}

// Languages returns the locales present in the catalog.
func (c *Catalog) Languages() []language.Tag {
	if c == nil {
		return nil
	}
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Match picks the best catalog locale for the given preferences. Each
// preference may be a single tag or a full Accept-Language header value.
func (c *Catalog) Match(prefs ...string) language.Tag {
	if c == nil {
		return language.Und
	}
	if c.matcher == nil {
		return c.fallback
	}
	var want []language.Tag
	for _, pref := range prefs {
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		want = append(want, tags...)
	}
	_, idx, conf := c.matcher.Match(want...)
	if conf == language.No {
		return c.fallback
	}
	return c.matchTags[idx]
}

// Localizer returns a Localizer for tag. An empty catalog returns the
// Identity localizer.
func (c *Catalog) Localizer(tag language.Tag) Localizer {
	if c == nil || len(c.domains) == 0 {
		return Identity
	}
	return &catalogLocalizer{tag: tag, domains: c.domains}
}
