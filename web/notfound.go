package web

import (
	"bytes"
	"net/http"
)

var notFoundBody = []byte("404 page not found\n")

// notFoundWriter holds back a 404 status until it knows whether the body
// is net/http's stock "404 page not found" page.
type notFoundWriter struct {
	http.ResponseWriter
	status  int
	flushed bool
	tripped bool
}

func (w *notFoundWriter) WriteHeader(status int) {
	w.status = status
	if status == http.StatusNotFound {
		return
	}
	w.flushed = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *notFoundWriter) Write(p []byte) (int, error) {
	if w.status == http.StatusNotFound && !w.flushed {
		if bytes.Equal(p, notFoundBody) {
			w.tripped = true
			return len(p), nil
		}
		w.flushed = true
		w.ResponseWriter.WriteHeader(http.StatusNotFound)
	}
	return w.ResponseWriter.Write(p)
}

type notFoundHandler struct {
	http.Handler
	errorHandler http.Handler
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writer := &notFoundWriter{ResponseWriter: w}
	h.Handler.ServeHTTP(writer, r)
	switch {
	case writer.tripped:
		h.errorHandler.ServeHTTP(w, r)
	case writer.status == http.StatusNotFound && !writer.flushed:
		w.WriteHeader(http.StatusNotFound)
	}
}

// NotFound returns a new http.Handler that invokes errorHandler when orig
// would have rendered net/http's default 404 page.
func NotFound(orig http.Handler, errorHandler http.Handler) http.Handler {
	return &notFoundHandler{orig, errorHandler}
}

// NotFoundPage returns a handler rendering template with a 404 status.
func NotFoundPage(renderer Renderer, template string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if template == "" {
			renderer.Error(w, r, ErrPageNotFound)
			return
		}
		renderer.Render(w, r, http.StatusNotFound, &Page{
			Template: template,
			Data:     map[string]interface{}{"path": r.URL.Path},
		})
	})
}
