package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/frontdoor/internal/domain"
)

const minimalYAML = `
business:
  name: Acme
  phone: "555"
  email: hi@acme.example
  address: 1 Main St
hero:
  title: Hello
  formTitle: Write us
  backgroundImage: /static/img/hero.jpg
features:
  main:
    - image: /static/img/a.jpg
      icon: "*"
      title: A
about:
  image: /static/img/about.jpg
  title: About
cta:
  primary:
    backgroundImage: /static/img/cta1.jpg
    title: Go
    buttonText: Now
  secondary:
    backgroundImage: /static/img/cta2.jpg
    title: Go again
    buttonText: Later
map:
  embedUrl: https://www.google.com/maps/embed?pb=1
`

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Business.Name)
	assert.Len(t, cfg.Features.Main, 3)
	assert.Len(t, cfg.Features.Secondary, 3)
	assert.Len(t, cfg.Testimonials, 2)
	assert.NotEmpty(t, cfg.CTA.Primary.ButtonText)
	assert.NotEmpty(t, cfg.CTA.Secondary.ButtonText)
}

func TestParse_Minimal(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.Business.Name)
	assert.Equal(t, "Write us", cfg.Hero.FormTitle)
	assert.Empty(t, cfg.Features.Secondary)
	assert.Empty(t, cfg.Testimonials)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte(""))
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte(minimalYAML + "\nfooter:\n  text: hi\n"))
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestParse_ValidationErrorsUseYAMLPaths(t *testing.T) {
	data := []byte(`
business:
  name: Acme
  phone: "555"
  email: not-an-email
  address: 1 Main St
hero:
  title: Hello
  formTitle: Write us
  backgroundImage: /hero.jpg
features:
  main:
    - icon: "*"
      title: Missing image
about:
  image: /about.jpg
  title: About
cta:
  primary:
    backgroundImage: /a.jpg
    title: Go
    buttonText: Now
  secondary:
    backgroundImage: /b.jpg
    title: Go
    buttonText: Now
map:
  embedUrl: not a url
`)

	_, err := Parse(data)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "must be an email address", ve.Fields["business.email"])
	assert.Equal(t, "is required", ve.Fields["features.main[0].image"])
	assert.Equal(t, "must be an absolute URL", ve.Fields["map.embedUrl"])
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Business.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}
