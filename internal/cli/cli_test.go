package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/frontdoor/internal"
	"github.com/DukeRupert/frontdoor/internal/contact"
	"github.com/DukeRupert/frontdoor/internal/site"
	"github.com/DukeRupert/frontdoor/internal/storage"
)

// answerPrompter answers every prompt from a queue; Confirm always declines.
type answerPrompter struct {
	answers []string
}

func (p *answerPrompter) next() (string, error) {
	if len(p.answers) == 0 {
		return "", contact.ErrPromptAborted
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *answerPrompter) Input(context.Context, contact.InputConfig) (string, error) {
	return p.next()
}

func (p *answerPrompter) TextArea(context.Context, contact.TextAreaConfig) (string, error) {
	return p.next()
}

func (p *answerPrompter) Confirm(context.Context, contact.ConfirmConfig) (bool, error) {
	return false, nil
}

func testDeps(t *testing.T, p contact.Prompter, mutate ...func(*internal.Config)) deps {
	t.Helper()
	exportDir := t.TempDir()
	return deps{
		prompter: p,
		newConfig: func() (*internal.Config, error) {
			cfg := &internal.Config{
				Env:               "test",
				LogLevel:          "error",
				BaseURL:           "https://example.com",
				ExportMode:        site.ExportStatic,
				FormDetectionShim: true,
				ExportDir:         exportDir,
				PublishProvider:   storage.ProviderLocal,
				ContactOrigin:     "https://example.com",
			}
			for _, m := range mutate {
				m(cfg)
			}
			return cfg, cfg.Validate()
		},
	}
}

func execute(t *testing.T, d deps, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(d)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"export", "contact", "check", "version"})

	f := cmd.PersistentFlags().Lookup("site-config")
	require.NotNil(t, f)
	assert.Equal(t, "string", f.Value.Type())
}

func TestExportCommand_Local(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, testDeps(t, nil), "export", "--out", dir, "--base-path", "landing/")
	require.NoError(t, err)

	assert.Contains(t, out, "Exported 4 files")
	assert.Contains(t, out, "https://example.com/landing/")

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/landing/static/css/site.css"`)
	assert.Contains(t, string(index), `netlify-honeypot="bot-field" hidden`)

	for _, key := range []string{"404.html", "manifest.json", "static/js/contact.js", "static/css/site.css"} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(key)))
	}
}

func TestExportCommand_NoShim(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, testDeps(t, nil), "export", "--out", dir, "--no-form-shim")
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(index), `netlify-honeypot="bot-field" hidden`)
}

func TestExportCommand_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown provider", []string{"export", "--provider", "ftp"}, "PUBLISH_PROVIDER"},
		{"r2 without credentials", []string{"export", "--provider", "r2"}, "R2_ACCOUNT_ID"},
		{"bad base path", []string{"export", "--base-path", "/a/../b"}, "BASE_PATH"},
		{"stray argument", []string{"export", "now"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, testDeps(t, nil), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("built-in content", func(t *testing.T) {
		out, err := execute(t, testDeps(t, nil), "check")
		require.NoError(t, err)
		assert.Contains(t, out, "built-in content: ok (Harbor Point Roofing")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.yaml")
		require.NoError(t, os.WriteFile(path, []byte("business:\n  name: Acme\n"), 0o644))

		out, err := execute(t, testDeps(t, nil), "check", "--config", path)
		require.Error(t, err)
		assert.Contains(t, out, "problem(s)")
		assert.Contains(t, out, "business.email is required")
		assert.Contains(t, out, "business.phone is required")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, testDeps(t, nil), "check", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("site-config from environment", func(t *testing.T) {
		d := testDeps(t, nil, func(c *internal.Config) { c.SiteConfigPath = "does-not-exist.yaml" })
		_, err := execute(t, d, "check")
		assert.Error(t, err)
	})
}

func TestContactCommand(t *testing.T) {
	var (
		mu   sync.Mutex
		got  url.Values
		hits int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		mu.Lock()
		got = r.PostForm
		hits++
		mu.Unlock()
	}))
	t.Cleanup(srv.Close)

	p := &answerPrompter{answers: []string{"Jo", "jo@x.com", "555", "Hi"}}
	out, err := execute(t, testDeps(t, p), "contact", "--origin", srv.URL+"/some/page")
	require.NoError(t, err)

	assert.Contains(t, out, "Sending to "+srv.URL+"/")
	assert.Contains(t, out, "Thank you for your message! We will get back to you soon.")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hits)
	assert.Equal(t, "contact", got.Get("form-name"))
	assert.Equal(t, "Jo", got.Get("name"))
	assert.Equal(t, "Hi", got.Get("message"))
}

func TestContactCommand_FailureThenGiveUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	p := &answerPrompter{answers: []string{"Jo", "jo@x.com", "555", "Hi"}}
	out, err := execute(t, testDeps(t, p), "contact", "--origin", srv.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "There was an error submitting your message. Please try again.")
	assert.Contains(t, out, "Your message was not sent.")
}

func TestContactCommand_Abort(t *testing.T) {
	p := &answerPrompter{answers: []string{"Jo"}}
	out, err := execute(t, testDeps(t, p), "contact")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, testDeps(t, nil), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sitectl dev")
}
