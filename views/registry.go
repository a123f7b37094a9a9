package views

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"howett.net/stache"
)

// RendererInfo describes the template a Renderer is built for.
type RendererInfo struct {
	// Name is the template's asset specification, e.g. "app:templates/home.mustache".
	Name string
	// Package is the asset package relative names resolve against.
	Package  string
	Settings stache.Settings
}

// Renderer renders one template.
type Renderer interface {
	Render(data map[string]interface{}, req *Request) (string, error)
}

// RendererFactory builds a Renderer for a template.
type RendererFactory func(info RendererInfo) (Renderer, error)

type rendererKey struct {
	name, pkg string
}

// Registry dispatches templates to renderers by file extension.
type Registry struct {
	mu        sync.Mutex
	settings  stache.Settings
	factories map[string]RendererFactory
	renderers map[rendererKey]Renderer
	logger    logrus.FieldLogger
}

// New returns a new, empty Registry.
func New(options ...RegistryOption) (*Registry, error) {
	r := &Registry{
		settings:  stache.Settings{},
		factories: make(map[string]RendererFactory),
		renderers: make(map[rendererKey]Renderer),
	}
	for _, opt := range options {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		r.logger = discard
	}
	return r, nil
}

// Settings returns the settings passed to renderer factories.
func (r *Registry) Settings() stache.Settings {
	return r.settings
}

// AddRenderer registers factory for templates whose names end in ext.
// A later registration for the same extension replaces the earlier one.
func (r *Registry) AddRenderer(ext string, factory RendererFactory) error {
	if ext == "" || factory == nil {
		return fmt.Errorf("views: renderer registration needs an extension and a factory")
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[ext] = factory
	for k := range r.renderers {
		if filepath.Ext(k.name) == ext {
			delete(r.renderers, k)
		}
	}
	return nil
}

func (r *Registry) renderer(name, pkg string) (Renderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rendererKey{name, pkg}
	if rn, ok := r.renderers[key]; ok {
		return rn, nil
	}

	ext := filepath.Ext(name)
	factory, ok := r.factories[ext]
	if !ok {
		return nil, &stache.TemplateError{Name: name, Err: fmt.Errorf("no renderer for extension %q", ext)}
	}
	rn, err := factory(RendererInfo{Name: name, Package: pkg, Settings: r.settings})
	if err != nil {
		return nil, err
	}
	r.renderers[key] = rn
	r.logger.WithFields(logrus.Fields{
		"template": name,
		"package":  pkg,
	}).Debug("created renderer")
	return rn, nil
}

// Bind returns a durable handle to the named template.
func (r *Registry) Bind(name, pkg string) (*View, error) {
	if _, err := r.renderer(name, pkg); err != nil {
		return nil, err
	}
	return &View{reg: r, name: name, pkg: pkg}, nil
}

// Render renders the named template with data.
func (r *Registry) Render(name, pkg string, data map[string]interface{}, req *Request) (string, error) {
	rn, err := r.renderer(name, pkg)
	if err != nil {
		return "", err
	}
	if req == nil {
		req = &Request{}
	}
	return rn.Render(data, req)
}

// Reload drops every memoized renderer. Bound views pick up the new
// renderers on their next render.
func (r *Registry) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers = make(map[rendererKey]Renderer)
}
