// Package stache holds the configuration, capability interfaces and error
// kinds shared by the mustache view packages.
package stache

// AssetResolver maps a logical asset specification to an absolute path on
// disk. A specification is either "package:relative/path" or a bare
// relative path resolved against a caller-supplied package.
type AssetResolver interface {
	Resolve(pkg, spec string) (string, error)
}

// RouteBuilder builds the path for a named route.
type RouteBuilder interface {
	RoutePath(name string, kwargs map[string]string) (string, error)
}
