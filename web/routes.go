package web

import (
	"fmt"
	"sort"

	"github.com/gorilla/mux"
)

// MuxRoutes builds URL paths from the named routes of a mux.Router.
type MuxRoutes struct {
	Router *mux.Router
}

// RoutePath returns the path for the named route. Keyword arguments fill
// the route's variables; arguments the route does not name are ignored.
func (m *MuxRoutes) RoutePath(name string, kwargs map[string]string) (string, error) {
	route := m.Router.Get(name)
	if route == nil {
		return "", fmt.Errorf("web: no route named %q", name)
	}

	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, kwargs[k])
	}

	u, err := route.URLPath(pairs...)
	if err != nil {
		return "", fmt.Errorf("web: route %q: %w", name, err)
	}
	return u.String(), nil
}
