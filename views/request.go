package views

import (
	"howett.net/stache"
	"howett.net/stache/i18n"
)

// Request is the set of per-request capabilities available to a renderer.
type Request struct {
	Routes    stache.RouteBuilder
	Localizer i18n.Localizer
	Translate i18n.Factory
}
