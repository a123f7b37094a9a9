// Package assets resolves "package:path" asset specifications to absolute
// filesystem paths.
package assets

import (
	"fmt"
	"path/filepath"
	"strings"

	"howett.net/stache"
)

var _ stache.AssetResolver = (*Resolver)(nil)

// Resolver maps package names onto directories. Relative package
// directories are made absolute when the Resolver is built.
type Resolver struct {
	packages       map[string]string
	defaultPackage string
}

// New builds a Resolver over the supplied package directories. The default
// package is used when neither the spec nor the caller names one.
func New(packages map[string]string, defaultPackage string) (*Resolver, error) {
	r := &Resolver{
		packages:       make(map[string]string, len(packages)),
		defaultPackage: defaultPackage,
	}
	for name, dir := range packages {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("assets: package %q: %w", name, err)
		}
		r.packages[name] = abs
	}
	return r, nil
}

// Resolve returns the absolute path named by spec. Absolute specs are
// returned cleaned and unchanged; "name:rel" resolves rel under package
// name; a bare relative spec resolves under pkg, or the default package
// when pkg is empty.
func (r *Resolver) Resolve(pkg, spec string) (string, error) {
	if filepath.IsAbs(spec) {
		return filepath.Clean(spec), nil
	}

	if name, rel, ok := strings.Cut(spec, ":"); ok {
		pkg, spec = name, rel
	}
	if pkg == "" {
		pkg = r.defaultPackage
	}

	root, ok := r.packages[pkg]
	if !ok {
		return "", fmt.Errorf("assets: %q: %w", pkg, stache.ErrUnknownPackage)
	}
	return filepath.Join(root, filepath.FromSlash(spec)), nil
}
