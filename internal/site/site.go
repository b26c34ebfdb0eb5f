// Package site defines the marketing content the page is rendered from.
//
// A Config is loaded once at startup (from YAML, or the embedded default)
// and is never mutated afterwards. Rendering and export code receive it by
// value or pointer and only read it.
package site

// Config is the complete content of the single-page site.
type Config struct {
	Business     Business      `yaml:"business" validate:"required"`
	Hero         Hero          `yaml:"hero" validate:"required"`
	Features     Features      `yaml:"features" validate:"required"`
	About        About         `yaml:"about" validate:"required"`
	Testimonials []Testimonial `yaml:"testimonials" validate:"dive"`
	CTA          CTAs          `yaml:"cta" validate:"required"`
	Map          Map           `yaml:"map" validate:"required"`
}

// Business identifies the company behind the site.
type Business struct {
	Name    string `yaml:"name" validate:"required"`
	Phone   string `yaml:"phone" validate:"required"`
	Email   string `yaml:"email" validate:"required,email"`
	Address string `yaml:"address" validate:"required"`
}

// Hero is the full-screen first section holding the contact form.
type Hero struct {
	Title           string `yaml:"title" validate:"required"`
	Subtitle        string `yaml:"subtitle"`
	FormTitle       string `yaml:"formTitle" validate:"required"`
	BackgroundImage string `yaml:"backgroundImage" validate:"required"`
}

// Features groups the two rows of feature cards.
type Features struct {
	Main      []Feature `yaml:"main" validate:"dive"`
	Secondary []Feature `yaml:"secondary" validate:"dive"`
}

// Feature is a single card. Icon is a glyph (usually an emoji).
type Feature struct {
	Image       string `yaml:"image" validate:"required"`
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

type About struct {
	Image       string `yaml:"image" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

type Testimonial struct {
	Avatar   string `yaml:"avatar" validate:"required"`
	Author   string `yaml:"author" validate:"required"`
	Position string `yaml:"position"`
	Quote    string `yaml:"quote" validate:"required"`
}

// CTAs holds the two call-to-action blocks.
type CTAs struct {
	Primary   CTA `yaml:"primary" validate:"required"`
	Secondary CTA `yaml:"secondary" validate:"required"`
}

type CTA struct {
	BackgroundImage string `yaml:"backgroundImage" validate:"required"`
	Title           string `yaml:"title" validate:"required"`
	Subtitle        string `yaml:"subtitle"`
	ButtonText      string `yaml:"buttonText" validate:"required"`
}

type Map struct {
	EmbedURL string `yaml:"embedUrl" validate:"required,url"`
}
