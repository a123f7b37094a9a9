/*
Package views provides stache's renderer registry. A Registry maps a
template file extension to a RendererFactory and memoizes one Renderer per
template name and asset package.

A renderer is handed three things on every render: the template's data,
a map of names to values, and a Request. The Request carries the
per-request capabilities a renderer may need:

	Routes
		Builds URL paths from route names and keyword arguments.
	Localizer
		Translates TranslationStrings into the request's locale.
	Translate
		Creates TranslationStrings for the application's domain.

Any of them may be nil; renderers are expected to fall back to the
defaults they were configured with.

Once a template is bound via registry.Bind(name, pkg), the returned View
can be rendered in perpetuity. Reload drops every memoized renderer, so
the next Bind or Render builds a fresh one from the current settings.
*/
package views
