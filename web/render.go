package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"howett.net/stache"
	"howett.net/stache/i18n"
	"howett.net/stache/views"
)

// ErrPageNotFound is rendered as a 404.
var ErrPageNotFound = errors.New("page not found")

type Renderer interface {
	Error(w http.ResponseWriter, r *http.Request, err error)
	Render(w http.ResponseWriter, r *http.Request, status int, v interface{})
}

// Page names a template and the data to render it with.
type Page struct {
	Template string
	Data     map[string]interface{}
}

// HTMLRenderer renders Pages through a views.Registry.
type HTMLRenderer struct {
	Views   *views.Registry
	Package string
	Routes  stache.RouteBuilder

	// Locales and Translate may be nil.
	Locales   *LocaleService
	Translate i18n.Factory

	// ErrorTemplate, when set, renders errors with "status" and "message".
	ErrorTemplate string
	Logger        logrus.FieldLogger
}

func (h *HTMLRenderer) logger() logrus.FieldLogger {
	if h.Logger != nil {
		return h.Logger
	}
	return logrus.StandardLogger()
}

// Request returns the view capabilities for r.
func (h *HTMLRenderer) Request(r *http.Request) *views.Request {
	req := &views.Request{
		Routes:    h.Routes,
		Translate: h.Translate,
	}
	if h.Locales != nil {
		req.Localizer = h.Locales.Localizer(r)
	}
	return req
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrPageNotFound):
		return http.StatusNotFound
	default:
		// missing templates and bad helper input are both server faults
		return http.StatusInternalServerError
	}
}

func (h *HTMLRenderer) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	log := h.logger().WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": status,
	}).WithError(err)
	switch {
	case errors.Is(err, stache.ErrTemplateNotFound):
		log.Error("template not found")
	case errors.Is(err, stache.ErrInvalidHelperInput):
		log.Error("invalid helper input")
	case status >= 500:
		log.Error("request failed")
	default:
		log.Info("request failed")
	}

	message := http.StatusText(status)
	if h.ErrorTemplate != "" {
		out, rerr := h.Views.Render(h.ErrorTemplate, h.Package, map[string]interface{}{
			"status":  status,
			"message": message,
		}, h.Request(r))
		if rerr == nil {
			writeHTML(w, status, out)
			return
		}
		h.logger().WithError(rerr).Error("failed to render error template")
	}
	http.Error(w, message, status)
}

func (h *HTMLRenderer) Render(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	page, ok := v.(*Page)
	if !ok {
		h.Error(w, r, fmt.Errorf("web: cannot render %T", v))
		return
	}
	out, err := h.Views.Render(page.Template, h.Package, page.Data, h.Request(r))
	if err != nil {
		h.Error(w, r, err)
		return
	}
	writeHTML(w, status, out)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Del("X-Content-Type-Options")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
