// Package partials locates named mustache partials beneath a set of root
// directories. A Loader memoizes every lookup, including misses, for its
// whole lifetime; build one per render.
package partials

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang/groupcache/lru"
	"github.com/sirupsen/logrus"

	"howett.net/stache"
)

// Result is the outcome of a partial lookup. The zero Result means the
// partial does not exist in any root.
type Result struct {
	Found bool
	Body  string
}

// Found returns a Result carrying body.
func Found(body string) Result { return Result{Found: true, Body: body} }

// NotFound is the Result cached for partials that exist in no root.
var NotFound = Result{}

// Option configures a Loader.
type Option func(*Loader)

// FieldLoggingOption routes lookup logging to a logrus-enabled stream.
func FieldLoggingOption(logger logrus.FieldLogger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// ExtensionOption overrides the partial file extension.
func ExtensionOption(ext string) Option {
	return func(l *Loader) {
		if ext != "" {
			l.ext = ext
		}
	}
}

// Loader resolves partial names against an ordered set of roots. It
// satisfies the mustache engine's PartialProvider contract. Loaders are not
// safe for concurrent use.
type Loader struct {
	roots    []string
	pkg      string
	resolver stache.AssetResolver
	ext      string
	logger   logrus.FieldLogger

	cache *lru.Cache
	walks int
}

// New returns a Loader searching roots, in order. Each root is an asset
// specification resolved through resolver relative to pkg.
func New(roots []string, pkg string, resolver stache.AssetResolver, options ...Option) *Loader {
	l := &Loader{
		roots:    roots,
		pkg:      pkg,
		resolver: resolver,
		ext:      stache.DefaultExtension,
		cache:    lru.New(0),
	}
	for _, opt := range options {
		opt(l)
	}
	if l.logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		l.logger = discard
	}
	return l
}

// Get returns the body of the named partial, or the empty string if no
// root holds it.
func (l *Loader) Get(name string) (string, error) {
	res, err := l.Lookup(name)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}

// Lookup returns the cached Result for name, searching the roots on the
// first request only. Failures are not cached.
func (l *Loader) Lookup(name string) (Result, error) {
	if v, ok := l.cache.Get(name); ok {
		return v.(Result), nil
	}

	res, err := l.search(name)
	if err != nil {
		return Result{}, err
	}
	l.cache.Add(name, res)
	return res, nil
}

// Walks returns the number of root directory walks performed so far.
func (l *Loader) Walks() int {
	return l.walks
}

var errStopWalk = errors.New("stop walk")

func (l *Loader) search(name string) (Result, error) {
	filename := name + l.ext
	log := l.logger.WithField("partial", name)

	for _, spec := range l.roots {
		root, err := l.resolver.Resolve(l.pkg, spec)
		if err != nil {
			return Result{}, &stache.PartialLoadError{Name: name, Path: spec, Err: err}
		}
		root, err = filepath.EvalSymlinks(root)
		if err != nil {
			return Result{}, &stache.PartialLoadError{Name: name, Path: spec, Err: err}
		}
		fi, err := os.Stat(root)
		if err != nil {
			return Result{}, &stache.PartialLoadError{Name: name, Path: root, Err: err}
		}
		if !fi.IsDir() {
			return Result{}, &stache.PartialLoadError{Name: name, Path: root, Err: fmt.Errorf("not a directory")}
		}

		l.walks++
		var match string
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || d.Name() != filename {
				return nil
			}
			// follows symlinks, so a linked partial counts as a file
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
				match = path
				return errStopWalk
			}
			return nil
		})
		if err != nil && err != errStopWalk {
			return Result{}, &stache.PartialLoadError{Name: name, Path: root, Err: err}
		}
		if match == "" {
			log.WithField("root", root).Debug("partial not under root")
			continue
		}

		body, err := os.ReadFile(match)
		if err != nil {
			return Result{}, &stache.PartialLoadError{Name: name, Path: match, Err: err}
		}
		log.WithField("path", match).Debug("loaded partial")
		return Found(string(body)), nil
	}

	log.Debug("partial not found")
	return NotFound, nil
}
