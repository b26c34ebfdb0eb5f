// Package view renders the marketing page from a site.Config.
//
// Rendering is a pure function of its inputs: the same Config and Options
// always produce the same markup. Components are gomponents nodes; handlers
// that want a templ.Component use Component.
package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/frontdoor/internal/site"
)

// Options carries the deployment details that change the markup but not the
// content.
type Options struct {
	Mode     site.ExportMode
	BasePath string // normalized, "" for root hosting

	// FormDetectionShim adds the hidden copy of the contact form that the
	// hosting provider's build step scans for. Only used in static mode.
	FormDetectionShim bool
}

func (o Options) asset(ref string) string {
	return site.AssetPath(o.BasePath, ref)
}

func (o Options) home() string {
	return site.PagePath(o.BasePath, "")
}

type PageConfig struct {
	Title       string
	Description string
}

// Layout wraps content in the document shell shared by every page.
func Layout(config PageConfig, opts Options, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("stylesheet"), Href(opts.asset("/static/css/site.css"))),
			),
			Body(
				Class("min-h-screen antialiased"),
				g.Group(content),
				Script(Src(opts.asset("/static/js/contact.js")), Defer()),
			),
		),
	})
}
