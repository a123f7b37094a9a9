package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"howett.net/stache"
)

// Handler serves configured routes by rendering their templates.
type Handler struct {
	Routes   []stache.Route
	Renderer Renderer
	Locales  *LocaleService
}

// NewHandler returns a Handler serving routes through renderer.
func NewHandler(routes []stache.Route, renderer Renderer, locales *LocaleService) *Handler {
	return &Handler{
		Routes:   routes,
		Renderer: renderer,
		Locales:  locales,
	}
}

// pageData exposes the route's variables both at the top level and under
// "vars", and the first value of each query parameter under "query".
func (h *Handler) pageData(route stache.Route, r *http.Request) map[string]interface{} {
	vars := mux.Vars(r)
	query := make(map[string]interface{})
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	data := make(map[string]interface{}, len(vars)+4)
	for k, v := range vars {
		data[k] = v
	}
	data["route"] = route.Name
	data["vars"] = vars
	data["query"] = query
	if h.Locales != nil {
		data["locale"] = h.Locales.Locale(r).String()
	}
	return data
}

func (h *Handler) page(route stache.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.Renderer.Render(w, r, http.StatusOK, &Page{
			Template: route.Template,
			Data:     h.pageData(route, r),
		})
	}
}

// BindRoutes registers every route on router. A route without a template
// only exists for building paths; serving it yields a 404.
func (h *Handler) BindRoutes(router *mux.Router) error {
	for _, route := range h.Routes {
		mr := router.NewRoute().Path(route.Path)
		if route.Template != "" {
			mr.Handler(h.page(route))
		}
		if route.Name != "" {
			mr.Name(route.Name)
		}
		if len(route.Methods) > 0 {
			mr.Methods(route.Methods...)
		} else {
			mr.Methods("GET", "HEAD")
		}
		if err := mr.GetError(); err != nil {
			return err
		}
	}
	return nil
}
