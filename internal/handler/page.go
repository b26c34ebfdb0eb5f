package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/DukeRupert/frontdoor/internal/domain"
	"github.com/DukeRupert/frontdoor/internal/metrics"
	"github.com/DukeRupert/frontdoor/internal/site"
	"github.com/DukeRupert/frontdoor/internal/view"
)

// PageHandler serves the rendered site in server mode.
type PageHandler struct {
	site   *site.Config
	opts   view.Options
	logger *slog.Logger
}

// NewPageHandler creates a page handler. opts.Mode is forced to server.
func NewPageHandler(cfg *site.Config, opts view.Options, logger *slog.Logger) *PageHandler {
	opts.Mode = site.ExportServer
	return &PageHandler{
		site:   cfg,
		opts:   opts,
		logger: logger,
	}
}

// Home renders the single page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", http.StatusOK, view.Page(h.site, h.opts))
}

// NotFound renders the 404 page, or a JSON error for API clients.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if acceptsJSON(r) && !acceptsHTML(r) {
		ErrorResponse(w, r, h.logger, domain.NotFound("handler.not_found", r.URL.Path))
		return
	}
	h.render(w, r, "not_found", http.StatusNotFound, view.NotFound(h.site, h.opts))
}

// MethodNotAllowed answers requests whose path exists but whose method
// does not. The contact form POST lands here: submissions are handled by
// the hosting provider, not by this process.
func (h *PageHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	MethodNotAllowedResponse(w, r, h.logger, http.MethodGet, http.MethodHead)
}

// RedirectHome sends the bare base path to its trailing-slash form.
func (h *PageHandler) RedirectHome(w http.ResponseWriter, r *http.Request) {
	target := site.PagePath(h.opts.BasePath, "")
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

// render writes to a buffer first so a failed render can still answer 500.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string, status int, node g.Node) {
	var buf bytes.Buffer
	if err := view.Component(node).Render(r.Context(), &buf); err != nil {
		metrics.PageRenderErrors.WithLabelValues(page).Inc()
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	metrics.PageRenders.WithLabelValues(page, h.opts.Mode.String()).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}
