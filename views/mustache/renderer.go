// Package mustache renders mustache templates for the views registry.
//
// Every render resolves its template through the asset resolver, reads it
// fresh from disk, and builds a new partials.Loader, so partial lookups are
// memoized for exactly one render. The caller's data is normalized so that
// null values render as nothing, and the helpers _, lorem and route_path
// (plus markdown, when enabled) are added under their reserved keys.
package mustache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	engine "github.com/cbroglie/mustache"
	"github.com/sirupsen/logrus"

	"howett.net/stache"
	"howett.net/stache/i18n"
	"howett.net/stache/partials"
	"howett.net/stache/views"
)

type factory struct {
	resolver  stache.AssetResolver
	logger    logrus.FieldLogger
	localizer i18n.Localizer
	translate i18n.Factory
	markdown  *bool
}

// NewFactory returns a views.RendererFactory for mustache templates whose
// names resolve through resolver.
func NewFactory(resolver stache.AssetResolver, options ...Option) views.RendererFactory {
	f := &factory{
		resolver:  resolver,
		localizer: i18n.Identity,
		translate: DefaultTranslationFactory,
	}
	for _, opt := range options {
		opt(f)
	}
	if f.logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		f.logger = discard
	}
	return f.build
}

func (f *factory) build(info views.RendererInfo) (views.Renderer, error) {
	markdown := info.Settings.Bool(stache.SettingMarkdown)
	if f.markdown != nil {
		markdown = *f.markdown
	}
	return &Renderer{
		info:     info,
		factory:  f,
		markdown: markdown,
		logger: f.logger.WithFields(logrus.Fields{
			"template": info.Name,
			"package":  info.Package,
		}),
	}, nil
}

// Include registers the mustache renderer with reg under the extension
// named by reg's settings.
func Include(reg *views.Registry, resolver stache.AssetResolver, options ...Option) error {
	return reg.AddRenderer(reg.Settings().Extension(), NewFactory(resolver, options...))
}

// Renderer renders a single mustache template.
type Renderer struct {
	info     views.RendererInfo
	factory  *factory
	markdown bool
	logger   logrus.FieldLogger
}

// Render renders the template with data. The result is returned verbatim.
func (r *Renderer) Render(data map[string]interface{}, req *views.Request) (string, error) {
	path, body, err := r.load()
	if err != nil {
		r.logger.WithError(err).Error("failed to load template")
		return "", err
	}

	roots, ok := r.info.Settings.PartialDirectories()
	if !ok {
		roots = []string{filepath.Dir(path)}
	}
	loader := partials.New(roots, r.info.Package, r.factory.resolver,
		partials.ExtensionOption(r.info.Settings.Extension()),
		partials.FieldLoggingOption(r.logger))

	ctx := normalizeContext(data)
	helpers := NewHelpers(req, r.factory.localizer, r.factory.translate)
	for k, v := range helpers.Bindings(r.markdown) {
		ctx[k] = v
	}

	out, err := engine.RenderPartials(body, loader, ctx)
	if err != nil {
		r.logger.WithError(err).Error("failed to render template")
		return "", err
	}
	return out, nil
}

func (r *Renderer) load() (string, string, error) {
	path, err := r.factory.resolver.Resolve(r.info.Package, r.info.Name)
	if err != nil {
		return "", "", &stache.TemplateError{Name: r.info.Name, Err: err}
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return "", "", &stache.TemplateError{Name: r.info.Name, Err: err}
	}
	if !utf8.Valid(body) {
		return "", "", &stache.TemplateError{Name: r.info.Name, Err: fmt.Errorf("%s is not valid UTF-8", path)}
	}
	return path, string(body), nil
}
