package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/DukeRupert/frontdoor/internal/contact"
	"github.com/DukeRupert/frontdoor/internal/site"
)

func TopBar(b site.Business) g.Node {
	return Div(
		Class("bg-gradient-to-r from-blue-900 to-blue-800 text-white py-2 px-4"),
		Div(
			Class("container mx-auto flex justify-between items-center"),
			Span(Class("font-bold"), g.Text(b.Name)),
			A(Href("tel:"+b.Phone), Class("hover:text-blue-200"), g.Text(b.Phone)),
		),
	)
}

// Hero is the first screen: background image, headline and the contact form.
func Hero(h site.Hero, opts Options) g.Node {
	return Section(
		ID("top"),
		Class("relative min-h-screen flex items-center justify-center"),
		backdrop(opts.asset(h.BackgroundImage), "Hero background", "bg-black/50"),
		Div(
			classes(container, "relative z-10 py-16 text-center text-white"),
			H1(Class("text-5xl font-bold mb-4"), g.Text(h.Title)),
			g.If(h.Subtitle != "", P(Class("text-xl mb-8"), g.Text(h.Subtitle))),
			ContactForm(h.FormTitle, opts),
		),
	)
}

// ContactForm is the visible form. It posts to the site root; the page
// script intercepts the submit and sends the same urlencoded body.
func ContactForm(title string, opts Options) g.Node {
	return FormEl(
		Name(contact.FormName),
		Method("post"),
		Action(opts.home()),
		g.Attr("data-netlify", "true"),
		g.Attr("netlify-honeypot", contact.HoneypotField),
		g.Attr("data-contact-form", ""),
		Class("max-w-md mx-auto bg-white/10 backdrop-blur-sm p-8 rounded-lg text-left"),

		Input(Type("hidden"), Name(contact.FormNameKey), Value(contact.FormName)),
		P(
			g.Attr("hidden"),
			Label(
				g.Text("Don't fill this out if you're human: "),
				Input(Name(contact.HoneypotField), g.Attr("tabindex", "-1"), g.Attr("autocomplete", "off")),
			),
		),

		H2(Class("text-2xl font-semibold mb-6 text-white"), g.Text(title)),
		Div(
			Class("space-y-4"),
			formInput("text", contact.FieldName, "Your Name", "name"),
			formInput("email", contact.FieldEmail, "Your Email", "email"),
			formInput("tel", contact.FieldPhone, "Your Phone", "tel"),
			Textarea(
				Name(string(contact.FieldMessage)),
				Placeholder("Your Message"),
				Required(),
				Rows("4"),
				g.Attr("aria-label", "Your Message"),
				Class(inputBase),
			),
		),
		Button(
			Type("submit"),
			classes(buttonBase, "w-full mt-6 px-6 bg-blue-600 text-white hover:bg-blue-700"),
			g.Text("Send Message"),
		),
	)
}

func formInput(typ string, f contact.Field, placeholder, autocomplete string) g.Node {
	return Input(
		Type(typ),
		Name(string(f)),
		Placeholder(placeholder),
		Required(),
		g.Attr("autocomplete", autocomplete),
		g.Attr("aria-label", placeholder),
		Class(inputBase),
	)
}

// FormDetectionShim is a hidden, inert copy of the contact form. Static
// hosts that detect forms at deploy time read it from the exported HTML.
func FormDetectionShim() g.Node {
	return FormEl(
		Name(contact.FormName),
		g.Attr("netlify"),
		g.Attr("netlify-honeypot", contact.HoneypotField),
		g.Attr("hidden"),
		Input(Type("text"), Name(string(contact.FieldName))),
		Input(Type("email"), Name(string(contact.FieldEmail))),
		Input(Type("tel"), Name(string(contact.FieldPhone))),
		Textarea(Name(string(contact.FieldMessage))),
	)
}

// FeatureGrid renders a row of feature cards. Empty lists render nothing.
func FeatureGrid(id string, features []site.Feature, opts Options, extra string) g.Node {
	if len(features) == 0 {
		return nil
	}
	return Section(
		ID(id),
		classes(sectionPad, extra),
		Div(
			Class(container),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f site.Feature) g.Node {
					return featureCard(f, opts)
				})),
			),
		),
	)
}

func featureCard(f site.Feature, opts Options) g.Node {
	return Div(
		classes(cardBase, "hover:shadow-2xl"),
		Div(
			Class("relative h-48 mb-4 rounded overflow-hidden"),
			Img(
				Src(opts.asset(f.Image)),
				Alt(f.Title),
				g.Attr("loading", "lazy"),
				Class("absolute inset-0 w-full h-full object-cover group-hover:scale-105 transition-transform duration-300"),
			),
		),
		g.If(f.Icon != "", Div(Class("text-4xl mb-4"), g.Attr("aria-hidden", "true"), g.Text(f.Icon))),
		H3(Class("text-xl font-bold mb-2"), g.Text(f.Title)),
		Div(Class("text-gray-600"), richText(f.Description)),
	)
}

func About(a site.About, opts Options) g.Node {
	return Section(
		ID("about"),
		Class(sectionPad),
		Div(
			Class(container),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-8 items-center"),
				Div(
					Class("relative h-[400px] rounded-lg overflow-hidden"),
					Img(
						Src(opts.asset(a.Image)),
						Alt("About Us"),
						g.Attr("loading", "lazy"),
						Class("absolute inset-0 w-full h-full object-cover"),
					),
				),
				Div(
					H2(Class("text-3xl font-bold mb-4"), g.Text(a.Title)),
					Div(Class("text-gray-600"), richText(a.Description)),
				),
			),
		),
	)
}

func Testimonials(ts []site.Testimonial, opts Options) g.Node {
	if len(ts) == 0 {
		return nil
	}
	return Section(
		ID("testimonials"),
		classes(sectionPad, "bg-gradient-to-br from-gray-50 to-white"),
		Div(
			Class(container),
			H2(Class("text-3xl font-bold text-center mb-12"), g.Text("What Our Clients Say")),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
				g.Group(g.Map(ts, func(t site.Testimonial) g.Node {
					return Figure(
						classes(cardBase, "hover:shadow-xl transition-shadow"),
						Div(
							Class("flex items-center mb-4"),
							Img(
								Src(opts.asset(t.Avatar)),
								Alt(t.Author),
								g.Attr("loading", "lazy"),
								Class("h-16 w-16 mr-4 rounded-full object-cover"),
							),
							FigCaption(
								P(Class("font-bold"), g.Text(t.Author)),
								g.If(t.Position != "", P(Class("text-gray-500"), g.Text(t.Position))),
							),
						),
						BlockQuote(Class("text-gray-600 italic"), g.Textf("“%s”", t.Quote)),
					)
				})),
			),
		),
	)
}

// CTAStyle selects the look of a call-to-action block.
type CTAStyle int

const (
	CTAPrimary CTAStyle = iota
	CTASecondary
)

// CallToAction renders a full-width banner whose button returns the visitor
// to the contact form at the top of the page.
func CallToAction(id string, c site.CTA, style CTAStyle, opts Options) g.Node {
	overlay, button := "bg-blue-600/90", "bg-white text-blue-600 hover:bg-blue-50"
	if style == CTASecondary {
		overlay, button = "bg-black/70", "bg-white text-gray-900 hover:bg-gray-100"
	}

	return Section(
		ID(id),
		classes(sectionPad, "relative overflow-hidden"),
		backdrop(opts.asset(c.BackgroundImage), "", overlay),
		Div(
			classes(container, "text-center relative z-10 text-white"),
			H2(Class("text-3xl font-bold mb-4"), g.Text(c.Title)),
			g.If(c.Subtitle != "", P(Class("mb-8"), g.Text(c.Subtitle))),
			scrollTopButton(c.ButtonText, classes(buttonBase, button)),
		),
	)
}

// ContactSection lists the business details next to the embedded map.
func ContactSection(b site.Business, m site.Map) g.Node {
	return Section(
		ID("contact"),
		classes(sectionPad, "bg-gradient-to-br from-white to-gray-50"),
		Div(
			Class(container),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
				Div(
					Class("bg-white p-8 rounded-lg shadow-lg"),
					H2(Class("text-3xl font-bold mb-4"), g.Text("Get in Touch")),
					Div(
						Class("space-y-4"),
						P(Strong(g.Text("Phone:")), g.Text(" "), A(Href("tel:"+b.Phone), g.Text(b.Phone))),
						P(Strong(g.Text("Address:")), g.Text(" "+b.Address)),
					),
					scrollTopButton("Contact Us", classes(buttonBase,
						"mt-6 bg-gradient-to-r from-blue-600 to-blue-700 text-white hover:from-blue-700 hover:to-blue-800 transition-all")),
				),
				Div(
					Class("h-64 rounded-lg overflow-hidden shadow-lg"),
					g.El("iframe",
						Src(m.EmbedURL),
						Title("Map showing "+b.Address),
						Width("100%"),
						Height("100%"),
						g.Attr("allowfullscreen"),
						g.Attr("loading", "lazy"),
						g.Attr("referrerpolicy", "no-referrer-when-downgrade"),
						Class("w-full h-full border-0"),
					),
				),
			),
		),
	)
}

func PageFooter(b site.Business) g.Node {
	return Footer(
		Class("bg-gradient-to-br from-gray-900 to-blue-900 text-white py-8"),
		Div(
			classes(container, "text-center"),
			H3(Class("text-xl font-bold mb-4"), g.Text(b.Name)),
			P(Class("mb-2"), A(Href("tel:"+b.Phone), g.Text(b.Phone))),
			P(A(Href("mailto:"+b.Email), g.Text(b.Email))),
		),
	)
}

// backdrop is the absolutely positioned background image with a tinted
// overlay used by the hero and the CTA banners.
func backdrop(src, alt, overlay string) g.Node {
	return Div(
		Class(overlayBase+" z-0"),
		Img(
			Src(src),
			Alt(alt),
			g.If(alt == "", g.Attr("role", "presentation")),
			Class("w-full h-full object-cover"),
		),
		Div(classes(overlayBase, overlay)),
	)
}

func scrollTopButton(text string, class g.Node) g.Node {
	return Button(
		Type("button"),
		g.Attr("data-scroll-top", ""),
		class,
		g.Text(text),
	)
}
