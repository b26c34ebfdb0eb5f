// Package export pre-renders the site into static files and publishes them
// through a storage.Storage.
//
// An export writes index.html, 404.html, every embedded asset under
// static/, and finally manifest.json describing the build. The manifest is
// written last, so a manifest always describes a complete set of files.
package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"time"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"

	"github.com/DukeRupert/frontdoor/internal/domain"
	"github.com/DukeRupert/frontdoor/internal/metrics"
	"github.com/DukeRupert/frontdoor/internal/site"
	"github.com/DukeRupert/frontdoor/internal/storage"
	"github.com/DukeRupert/frontdoor/internal/view"
)

// Published keys.
const (
	IndexKey    = "index.html"
	NotFoundKey = "404.html"
	ManifestKey = "manifest.json"
	StaticDir   = "static"
)

// Manifest describes one export.
type Manifest struct {
	BuildID     uuid.UUID `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	BasePath    string    `json:"base_path"`
	Files       []File    `json:"files"`
}

// File is one published object.
type File struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	SHA256      string `json:"sha256"`
}

// Keys returns the keys of the published files in manifest order.
func (m *Manifest) Keys() []string {
	keys := make([]string, len(m.Files))
	for i, f := range m.Files {
		keys[i] = f.Key
	}
	return keys
}

// Config configures an Exporter.
type Config struct {
	Site    *site.Config
	Options view.Options // Mode is forced to static
	Assets  fs.FS        // tree copied below static/
	Storage storage.Storage

	// Provider labels metrics and logs ("local", "r2").
	Provider string

	// Prune deletes files listed in the previous manifest that this export
	// no longer produces.
	Prune bool

	Logger *slog.Logger

	Now   func() time.Time
	NewID func() uuid.UUID
}

// Exporter renders and publishes the static site.
type Exporter struct {
	cfg Config
}

// New validates cfg and returns an Exporter.
func New(cfg Config) (*Exporter, error) {
	const op = "export.new"
	if cfg.Site == nil {
		return nil, domain.Invalid(op, "site config is required")
	}
	if cfg.Storage == nil {
		return nil, domain.Invalid(op, "storage is required")
	}
	if cfg.Assets == nil {
		return nil, domain.Invalid(op, "assets are required")
	}
	if cfg.Provider == "" {
		cfg.Provider = storage.ProviderLocal
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.New
	}
	cfg.Options.Mode = site.ExportStatic
	return &Exporter{cfg: cfg}, nil
}

// Export renders and publishes every file, then writes the manifest.
func (e *Exporter) Export(ctx context.Context) (*Manifest, error) {
	start := time.Now()
	m, err := e.export(ctx)
	if err != nil {
		metrics.ExportFailed(e.cfg.Provider)
		e.cfg.Logger.Error("export failed", "provider", e.cfg.Provider, "error", err)
		return nil, err
	}
	duration := time.Since(start)
	metrics.ExportCompleted(e.cfg.Provider, len(m.Files), duration)

	attrs := []any{
		"build_id", m.BuildID,
		"provider", e.cfg.Provider,
		"files", len(m.Files),
		"duration", duration,
	}
	if u, err := e.cfg.Storage.URL(ctx, IndexKey, 0); err == nil {
		attrs = append(attrs, "url", u)
	}
	e.cfg.Logger.Info("export complete", attrs...)
	return m, nil
}

func (e *Exporter) export(ctx context.Context) (*Manifest, error) {
	const op = "export.export"

	previous, err := e.previousManifest(ctx)
	if err != nil {
		return nil, domain.Wrap(err, domain.EINTERNAL, op, "reading previous manifest")
	}

	m := &Manifest{
		BuildID:     e.cfg.NewID(),
		GeneratedAt: e.cfg.Now().UTC(),
		BasePath:    e.cfg.Options.BasePath,
	}

	pages := []struct {
		key  string
		node g.Node
	}{
		{IndexKey, view.Page(e.cfg.Site, e.cfg.Options)},
		{NotFoundKey, view.NotFound(e.cfg.Site, e.cfg.Options)},
	}
	for _, p := range pages {
		var buf bytes.Buffer
		if err := p.node.Render(&buf); err != nil {
			return nil, domain.Wrap(err, domain.EINTERNAL, op, "rendering "+p.key)
		}
		f, err := e.put(ctx, p.key, buf.Bytes())
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, f)
	}

	err = fs.WalkDir(e.cfg.Assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(e.cfg.Assets, name)
		if err != nil {
			return err
		}
		f, err := e.put(ctx, path.Join(StaticDir, name), data)
		if err != nil {
			return err
		}
		m.Files = append(m.Files, f)
		return nil
	})
	if err != nil {
		return nil, domain.Wrap(err, domain.EINTERNAL, op, "publishing assets")
	}

	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Key < m.Files[j].Key })

	if e.cfg.Prune && previous != nil {
		if err := e.prune(ctx, previous, m); err != nil {
			return nil, domain.Wrap(err, domain.EINTERNAL, op, "pruning stale files")
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, domain.Wrap(err, domain.EINTERNAL, op, "encoding manifest")
	}
	if _, err := e.put(ctx, ManifestKey, data); err != nil {
		return nil, err
	}

	return m, nil
}

func (e *Exporter) put(ctx context.Context, key string, data []byte) (File, error) {
	err := e.cfg.Storage.Put(ctx, key, bytes.NewReader(data), storage.PutOptions{
		ContentType:  storage.DetectContentType("", key, nil),
		CacheControl: storage.CacheControlFor(key),
		Overwrite:    true,
	})
	if err != nil {
		return File{}, fmt.Errorf("publish %s: %w", key, err)
	}
	sum := sha256.Sum256(data)
	return File{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: storage.DetectContentType("", key, nil),
		SHA256:      hex.EncodeToString(sum[:]),
	}, nil
}

// previousManifest returns the manifest of the last export, or nil if
// there is none.
func (e *Exporter) previousManifest(ctx context.Context) (*Manifest, error) {
	rc, _, err := e.cfg.Storage.Get(ctx, ManifestKey)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rc.Close()

	var m Manifest
	if err := json.NewDecoder(rc).Decode(&m); err != nil {
		e.cfg.Logger.Warn("ignoring unreadable previous manifest", "error", err)
		return nil, nil
	}
	return &m, nil
}

func (e *Exporter) prune(ctx context.Context, previous, current *Manifest) error {
	keep := make(map[string]bool, len(current.Files)+1)
	for _, f := range current.Files {
		keep[f.Key] = true
	}
	keep[ManifestKey] = true

	var errs []error
	for _, key := range previous.Keys() {
		if keep[key] {
			continue
		}
		if err := e.cfg.Storage.Delete(ctx, key); err != nil {
			errs = append(errs, err)
			continue
		}
		e.cfg.Logger.Debug("pruned stale file", "key", key)
	}
	return errors.Join(errs...)
}
