package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/frontdoor/internal/site"
)

// Page renders the complete single-page site.
func Page(cfg *site.Config, opts Options) g.Node {
	return Layout(
		PageConfig{
			Title:       cfg.Business.Name,
			Description: cfg.Hero.Subtitle,
		},
		opts,
		Main(
			Class("min-h-screen"),
			g.If(opts.Mode == site.ExportStatic && opts.FormDetectionShim, FormDetectionShim()),
			TopBar(cfg.Business),
			Hero(cfg.Hero, opts),
			FeatureGrid("features", cfg.Features.Main, opts, "bg-gray-50"),
			About(cfg.About, opts),
			Testimonials(cfg.Testimonials, opts),
			CallToAction("cta", cfg.CTA.Primary, CTAPrimary, opts),
			FeatureGrid("more-features", cfg.Features.Secondary, opts, ""),
			CallToAction("cta-secondary", cfg.CTA.Secondary, CTASecondary, opts),
			ContactSection(cfg.Business, cfg.Map),
			PageFooter(cfg.Business),
		),
	)
}

// NotFound renders the 404 page with a link back to the home page.
func NotFound(cfg *site.Config, opts Options) g.Node {
	return Layout(
		PageConfig{Title: "Page not found | " + cfg.Business.Name},
		opts,
		Main(
			Class("min-h-screen flex flex-col"),
			TopBar(cfg.Business),
			Section(
				classes(container, "flex-1 py-32 text-center"),
				H1(Class("text-5xl font-bold mb-4"), g.Text("Page not found")),
				P(Class("text-gray-600 mb-8"), g.Text("The page you are looking for does not exist.")),
				A(
					Href(opts.home()),
					classes(buttonBase, "inline-block bg-blue-600 text-white hover:bg-blue-700"),
					g.Text("Back to "+cfg.Business.Name),
				),
			),
			PageFooter(cfg.Business),
		),
	)
}

// Component adapts a gomponents node to templ.Component so handlers can
// render it with templ.Handler.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return node.Render(w)
	})
}
