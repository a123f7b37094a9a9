package mustache

import (
	"errors"
	"html"
	"strconv"
	"strings"

	engine "github.com/cbroglie/mustache"
	"github.com/microcosm-cc/bluemonday"

	"howett.net/stache"
	"howett.net/stache/i18n"
	"howett.net/stache/views"
)

// Reserved context keys. Helpers are written last, so they shadow caller
// data under the same names.
const (
	TranslateKey = "_"
	LoremKey     = "lorem"
	RoutePathKey = "route_path"
	MarkdownKey  = "markdown"
)

// loremBlock keeps the filler paragraph byte for byte, indentation included.
const loremBlock = "Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n" +
	"        Fusce nulla felis, semper id aliquam vel, condimentum sed libero.\n" +
	"        Sed volutpat iaculis pellentesque. Cras dui lectus, pretium vel \n" +
	"        fermentum pretium, faucibus non tellus. Morbi semper auctor diam id \n" +
	"        molestie. Maecenas aliquam aliquam ultricies. Nam ut turpis mi, \n" +
	"        scelerisque aliquet odio. Proin in nulla a diam pretium ornare. Donec \n" +
	"        ipsum justo, egestas ac semper non, blandit ac mauris. Nulla ultrices, \n" +
	"        neque non egestas adipiscing, massa velit volutpat tellus, sit amet \n" +
	"        fermentum tellus risus id quam. Vivamus hendrerit fringilla egestas. \n" +
	"        Nunc sit amet arcu id erat interdum dictum vitae quis risus. Sed \n" +
	"        porttitor dui vel elit pharetra ut hendrerit lorem ornare. Mauris id \n" +
	"        augue augue, sit amet facilisis justo.\n" +
	"        "

const loremSeparator = "<br />"

var errNoRoutes = errors.New("route_path: request has no route builder")

// Helpers are the template helpers bound to a single render.
type Helpers struct {
	routes    stache.RouteBuilder
	localizer i18n.Localizer
	translate i18n.Factory
	policy    *bluemonday.Policy
}

// NewHelpers binds helpers to req. A nil Localizer or Translate on the
// request falls back to localizer and translate.
func NewHelpers(req *views.Request, localizer i18n.Localizer, translate i18n.Factory) *Helpers {
	h := &Helpers{
		localizer: localizer,
		translate: translate,
		policy:    sanitationPolicy,
	}
	if req != nil {
		h.routes = req.Routes
		if req.Localizer != nil {
			h.localizer = req.Localizer
		}
		if req.Translate != nil {
			h.translate = req.Translate
		}
	}
	if h.localizer == nil {
		h.localizer = i18n.Identity
	}
	if h.translate == nil {
		h.translate = DefaultTranslationFactory
	}
	return h
}

// RoutePath builds a URL path from "<route> key=value,key=value".
func (h *Helpers) RoutePath(spec string) (string, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(spec), " ")
	if name == "" {
		return "", &stache.HelperInputError{Helper: RoutePathKey, Input: spec, Reason: "missing route name"}
	}

	kwargs := make(map[string]string)
	for _, seg := range strings.Split(args, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		k, v, ok := strings.Cut(seg, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return "", &stache.HelperInputError{Helper: RoutePathKey, Input: spec, Reason: "malformed argument " + strconv.Quote(seg)}
		}
		kwargs[k] = strings.TrimSpace(v)
	}

	if h.routes == nil {
		return "", errNoRoutes
	}
	return h.routes.RoutePath(name, kwargs)
}

// Translate returns text translated into the request's locale. The
// result is not sanitized; the _ lambda sanitizes what it renders.
func (h *Helpers) Translate(text string) string {
	return h.localizer.Translate(h.translate(text))
}

// LoremIpsum returns countSpec copies of a filler paragraph joined by
// line breaks.
func LoremIpsum(countSpec string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(countSpec))
	if err != nil {
		return "", &stache.HelperInputError{Helper: LoremKey, Input: countSpec, Reason: "invalid count"}
	}
	if n < 0 {
		return "", &stache.HelperInputError{Helper: LoremKey, Input: countSpec, Reason: "negative count"}
	}
	blocks := make([]string, n)
	for i := range blocks {
		blocks[i] = loremBlock
	}
	return strings.Join(blocks, loremSeparator), nil
}

// Bindings returns the helpers as engine lambdas keyed by their reserved
// names.
func (h *Helpers) Bindings(markdown bool) map[string]interface{} {
	b := map[string]interface{}{
		TranslateKey: engine.LambdaFunc(h.translateLambda),
		LoremKey:     engine.LambdaFunc(loremLambda),
		RoutePathKey: engine.LambdaFunc(h.routePathLambda),
	}
	if markdown {
		b[MarkdownKey] = engine.LambdaFunc(markdownLambda)
	}
	return b
}

// The section text is the message id; the translation may itself use
// template tags.
func (h *Helpers) translateLambda(text string, render engine.RenderFunc) (string, error) {
	out, err := render(h.Translate(text))
	if err != nil {
		return "", err
	}
	return h.policy.Sanitize(out), nil
}

func (h *Helpers) routePathLambda(text string, render engine.RenderFunc) (string, error) {
	spec, err := render(text)
	if err != nil {
		return "", err
	}
	path, err := h.RoutePath(spec)
	if err != nil {
		return "", err
	}
	return html.EscapeString(path), nil
}

func loremLambda(text string, render engine.RenderFunc) (string, error) {
	spec, err := render(text)
	if err != nil {
		return "", err
	}
	return LoremIpsum(spec)
}
