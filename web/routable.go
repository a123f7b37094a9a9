// Package web serves rendered views over HTTP with gorilla/mux.
package web

import "github.com/gorilla/mux"

// Routable is implemented by handlers that attach themselves to a router.
type Routable interface {
	BindRoutes(*mux.Router) error
}
