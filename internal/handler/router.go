package handler

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/frontdoor/internal/metrics"
	"github.com/DukeRupert/frontdoor/internal/middleware"
	"github.com/DukeRupert/frontdoor/internal/site"
	"github.com/DukeRupert/frontdoor/internal/storage"
	"github.com/DukeRupert/frontdoor/internal/view"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Site    *site.Config
	Options view.Options
	Assets  fs.FS // served below BasePath + "/static/"
	Logger  *slog.Logger

	// IsSecure enables HSTS.
	IsSecure bool

	MetricsUsername string
	MetricsPassword string
}

// NewRouter builds the server-mode HTTP handler:
//
//	GET  {base}/          the page
//	GET  {base}           redirect to {base}/
//	GET  {base}/static/*  embedded assets
//	GET  /health          liveness
//	GET  /metrics         prometheus, optionally behind basic auth
//
// HEAD is answered wherever GET is. Other methods on known paths get 405,
// unknown paths get the 404 page.
func NewRouter(cfg RouterConfig) http.Handler {
	basePath := cfg.Options.BasePath
	home := site.PagePath(basePath, "")
	staticPrefix := basePath + "/static/"

	metrics.RegisterPath(home)
	if basePath != "" {
		metrics.RegisterStaticPrefix(staticPrefix)
	}

	pages := NewPageHandler(cfg.Site, cfg.Options, cfg.Logger)
	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword, cfg.Logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewSecurityHeadersMiddleware(cfg.IsSecure).Handler)
	r.Use(middleware.NewRequestLoggingMiddleware(cfg.Logger, basePath).Handler)
	r.Use(metrics.Middleware)
	r.Use(chimw.GetHead)

	r.NotFound(pages.NotFound)
	r.MethodNotAllowed(pages.MethodNotAllowed)

	r.Get("/health", Health)
	r.With(metricsAuth.Handler).Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get(home, pages.Home)
	if basePath != "" {
		r.Get(basePath, pages.RedirectHome)
	}
	r.Get(staticPrefix+"*", staticFiles(cfg.Assets, staticPrefix, pages.NotFound))

	return r
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("OK"))
}

// staticFiles serves assets from fsys. Directory paths fall through to
// notFound instead of listing their contents.
func staticFiles(fsys fs.FS, prefix string, notFound http.HandlerFunc) http.HandlerFunc {
	files := http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			notFound(w, r)
			return
		}
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			notFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", storage.CacheControlFor(name))
		files.ServeHTTP(w, r)
	}
}
