package mustache

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday"

	engine "github.com/cbroglie/mustache"
)

var mkdHTMLRenderer blackfriday.Renderer
var sanitationPolicy *bluemonday.Policy

func init() {
	mkdHTMLRenderer = blackfriday.HtmlRenderer(blackfriday.HTML_SAFELINK|
		blackfriday.HTML_NOFOLLOW_LINKS, "", "")
	sanitationPolicy = bluemonday.UGCPolicy()
	sanitationPolicy.AllowAttrs("class").OnElements("div", "i", "span")
}

// Markdown renders text as sanitized HTML.
func Markdown(text string) string {
	md := blackfriday.Markdown([]byte(text), mkdHTMLRenderer,
		blackfriday.EXTENSION_NO_INTRA_EMPHASIS|
			blackfriday.EXTENSION_TABLES|
			blackfriday.EXTENSION_AUTOLINK|
			blackfriday.EXTENSION_FENCED_CODE|
			blackfriday.EXTENSION_HEADER_IDS|
			blackfriday.EXTENSION_LAX_HTML_BLOCKS)
	return sanitationPolicy.Sanitize(string(md))
}

func markdownLambda(text string, render engine.RenderFunc) (string, error) {
	src, err := render(text)
	if err != nil {
		return "", err
	}
	return Markdown(src), nil
}
