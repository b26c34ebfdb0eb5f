package contact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/DukeRupert/frontdoor/internal/metrics"
)

// maxDrainBytes bounds how much of a response body is read before closing,
// so keep-alive connections can be reused without reading huge error pages.
const maxDrainBytes = 64 << 10

// SubmitterConfig configures a Submitter.
type SubmitterConfig struct {
	// Origin is the site origin, e.g. "https://example.com". Submissions go
	// to its root path regardless of any path in Origin.
	Origin string

	// Client performs the request. Defaults to a client with no timeout.
	Client *http.Client

	// Notifier receives exactly one outcome per completed submission.
	Notifier Notifier

	Logger *slog.Logger
}

// Submitter posts drafts to the site origin. It is safe for concurrent use;
// at most one submission is in flight at a time.
type Submitter struct {
	endpoint string
	client   *http.Client
	notifier Notifier
	logger   *slog.Logger

	inFlight atomic.Bool
}

// NewSubmitter validates cfg and returns a Submitter.
func NewSubmitter(cfg SubmitterConfig) (*Submitter, error) {
	endpoint, err := rootEndpoint(cfg.Origin)
	if err != nil {
		return nil, err
	}
	if cfg.Notifier == nil {
		return nil, fmt.Errorf("contact: notifier is required")
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Submitter{
		endpoint: endpoint,
		client:   client,
		notifier: cfg.Notifier,
		logger:   logger,
	}, nil
}

// Endpoint returns the URL submissions are posted to.
func (s *Submitter) Endpoint() string {
	return s.endpoint
}

// Submit posts d once and returns the draft the caller should keep.
//
// On a 2xx response the returned draft is empty. On any other status, or a
// transport failure, the returned draft is d unchanged. Either way the
// notifier is called exactly once and the returned error is nil: failures
// are reported through the Outcome, not the error.
//
// If another submission is still awaiting its response, Submit returns d,
// a zero Outcome and ErrSubmitInFlight without sending anything or
// notifying.
func (s *Submitter) Submit(ctx context.Context, d Draft) (Draft, Outcome, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		metrics.ContactSubmissions.WithLabelValues("in_flight").Inc()
		s.logger.Debug("contact submission rejected, another is in flight")
		return d, Outcome{}, ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	start := time.Now()
	outcome := s.post(ctx, d)
	metrics.ContactSubmitted(outcome.Label(), time.Since(start))

	next := d
	if outcome.Success() {
		next = Draft{}
		s.logger.Info("contact submission accepted", "status", outcome.StatusCode)
	} else {
		s.logger.Warn("contact submission failed",
			"outcome", outcome.Label(),
			"status", outcome.StatusCode,
			"error", outcome.Err,
		)
	}

	s.notifier.Notify(ctx, outcome)
	return next, outcome, nil
}

// post performs the single request. It never returns an error directly.
func (s *Submitter) post(ctx context.Context, d Draft) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(Encode(d)))
	if err != nil {
		return Outcome{Err: fmt.Errorf("contact: build request: %w", err)}
	}
	req.Header.Set("Content-Type", ContentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return Outcome{Err: fmt.Errorf("contact: post: %w", err)}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{StatusCode: resp.StatusCode, Err: &StatusError{StatusCode: resp.StatusCode}}
	}
	return Outcome{StatusCode: resp.StatusCode}
}

// rootEndpoint reduces an origin URL to "<scheme>://<host>/".
func rootEndpoint(origin string) (string, error) {
	if origin == "" {
		return "", fmt.Errorf("contact: origin is required")
	}
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("contact: invalid origin %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("contact: origin %q must use http or https", origin)
	}
	if u.Host == "" {
		return "", fmt.Errorf("contact: origin %q has no host", origin)
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}).String(), nil
}
