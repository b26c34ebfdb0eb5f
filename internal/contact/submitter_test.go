package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test helpers
// =============================================================================

var scenarioDraft = Draft{Name: "Jo", Email: "jo@x.com", Phone: "555", Message: "Hi"}

type recordingNotifier struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (n *recordingNotifier) Notify(_ context.Context, o Outcome) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outcomes = append(n.outcomes, o)
}

func (n *recordingNotifier) all() []Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Outcome(nil), n.outcomes...)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

// statusServer answers every request with status and records what it saw.
func statusServer(t *testing.T, status int) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []capturedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		})
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"ignored"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func newTestSubmitter(t *testing.T, origin string, client *http.Client) (*Submitter, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	s, err := NewSubmitter(SubmitterConfig{Origin: origin, Client: client, Notifier: n})
	require.NoError(t, err)
	return s, n
}

// =============================================================================
// Scenarios
// =============================================================================

func TestSubmit_SuccessResetsDraft(t *testing.T) {
	srv, reqs := statusServer(t, http.StatusOK)
	s, n := newTestSubmitter(t, srv.URL, srv.Client())

	got, outcome, err := s.Submit(context.Background(), scenarioDraft)
	require.NoError(t, err)

	assert.Equal(t, Draft{}, got)
	assert.True(t, outcome.Success())
	assert.Equal(t, http.StatusOK, outcome.StatusCode)

	outcomes := n.all()
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Success())
	assert.Equal(t, SuccessMessage, outcomes[0].Message())

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/", req.path)
	assert.Equal(t, "application/x-www-form-urlencoded", req.contentType)

	values, err := url.ParseQuery(req.body)
	require.NoError(t, err)
	assert.Equal(t, "contact", values.Get("form-name"))
	assert.Equal(t, "Jo", values.Get("name"))
	assert.Equal(t, "jo@x.com", values.Get("email"))
	assert.Equal(t, "555", values.Get("phone"))
	assert.Equal(t, "Hi", values.Get("message"))
}

func TestSubmit_ServerErrorPreservesDraft(t *testing.T) {
	srv, _ := statusServer(t, http.StatusInternalServerError)
	s, n := newTestSubmitter(t, srv.URL, srv.Client())

	got, outcome, err := s.Submit(context.Background(), scenarioDraft)
	require.NoError(t, err)

	if diff := cmp.Diff(scenarioDraft, got); diff != "" {
		t.Errorf("draft changed on failure (-want +got):\n%s", diff)
	}
	assert.False(t, outcome.Success())
	assert.Equal(t, "rejected", outcome.Label())

	var se *StatusError
	require.True(t, errors.As(outcome.Err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.ErrorIs(t, outcome.Err, ErrNonSuccessStatus)

	outcomes := n.all()
	require.Len(t, outcomes, 1)
	assert.Equal(t, FailureMessage, outcomes[0].Message())
}

func TestSubmit_NetworkErrorPreservesDraft(t *testing.T) {
	networkErr := errors.New("dial tcp: connection refused")
	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, networkErr
	})}
	s, n := newTestSubmitter(t, "https://example.com", client)

	got, outcome, err := s.Submit(context.Background(), scenarioDraft)
	require.NoError(t, err)

	assert.Equal(t, scenarioDraft, got)
	assert.False(t, outcome.Success())
	assert.Zero(t, outcome.StatusCode)
	assert.Equal(t, "transport_error", outcome.Label())
	assert.ErrorIs(t, outcome.Err, networkErr)

	outcomes := n.all()
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Success())
}

func TestSubmit_ClosedServerIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	origin := srv.URL
	srv.Close()

	s, n := newTestSubmitter(t, origin, nil)

	got, outcome, err := s.Submit(context.Background(), scenarioDraft)
	require.NoError(t, err)
	assert.Equal(t, scenarioDraft, got)
	assert.Equal(t, "transport_error", outcome.Label())
	assert.Len(t, n.all(), 1)
}

func TestSubmit_StatusRange(t *testing.T) {
	tests := []struct {
		status  int
		success bool
	}{
		{http.StatusOK, true},
		{http.StatusCreated, true},
		{http.StatusAccepted, true},
		{http.StatusNoContent, true},
		{299, true},
		{http.StatusMultipleChoices, false},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusMethodNotAllowed, false},
		{http.StatusTooManyRequests, false},
		{http.StatusBadGateway, false},
		{http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			srv, _ := statusServer(t, tt.status)
			s, n := newTestSubmitter(t, srv.URL, srv.Client())

			got, outcome, err := s.Submit(context.Background(), scenarioDraft)
			require.NoError(t, err)

			assert.Equal(t, tt.success, outcome.Success())
			if tt.success {
				assert.True(t, got.IsEmpty())
			} else {
				assert.Equal(t, scenarioDraft, got)
			}
			assert.Len(t, n.all(), 1)
		})
	}
}

func TestSubmit_CanceledContextPreservesDraft(t *testing.T) {
	srv, _ := statusServer(t, http.StatusOK)
	s, n := newTestSubmitter(t, srv.URL, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, outcome, err := s.Submit(ctx, scenarioDraft)
	require.NoError(t, err)
	assert.Equal(t, scenarioDraft, got)
	assert.ErrorIs(t, outcome.Err, context.Canceled)
	assert.Len(t, n.all(), 1)
}

// =============================================================================
// In-flight guard
// =============================================================================

func TestSubmit_RejectsOverlappingSubmission(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(arrived) })
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, n := newTestSubmitter(t, srv.URL, srv.Client())

	type result struct {
		draft   Draft
		outcome Outcome
		err     error
	}
	first := make(chan result, 1)
	go func() {
		d, o, err := s.Submit(context.Background(), scenarioDraft)
		first <- result{d, o, err}
	}()

	select {
	case <-arrived:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never reached the server")
	}

	edited := scenarioDraft.With(FieldMessage, "Hi again")
	got, outcome, err := s.Submit(context.Background(), edited)
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, edited, got)
	assert.Equal(t, Outcome{}, outcome)
	assert.Empty(t, n.all(), "rejected submission must not notify")

	close(release)
	res := <-first
	require.NoError(t, res.err)
	assert.True(t, res.outcome.Success())
	assert.True(t, res.draft.IsEmpty())
	assert.Len(t, n.all(), 1)

	// guard is released once the first submission completes
	_, outcome, err = s.Submit(context.Background(), edited)
	require.NoError(t, err)
	assert.True(t, outcome.Success())
	assert.Len(t, n.all(), 2)
}

// =============================================================================
// Construction
// =============================================================================

func TestNewSubmitter_Endpoint(t *testing.T) {
	tests := []struct {
		origin string
		want   string
	}{
		{"https://example.com", "https://example.com/"},
		{"https://example.com/", "https://example.com/"},
		{"https://example.com/landing/", "https://example.com/"},
		{"http://localhost:8080", "http://localhost:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			s, err := NewSubmitter(SubmitterConfig{Origin: tt.origin, Notifier: &recordingNotifier{}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Endpoint())
		})
	}
}

func TestNewSubmitter_Errors(t *testing.T) {
	n := &recordingNotifier{}

	_, err := NewSubmitter(SubmitterConfig{Origin: "", Notifier: n})
	assert.Error(t, err)

	_, err = NewSubmitter(SubmitterConfig{Origin: "ftp://example.com", Notifier: n})
	assert.Error(t, err)

	_, err = NewSubmitter(SubmitterConfig{Origin: "https://", Notifier: n})
	assert.Error(t, err)

	_, err = NewSubmitter(SubmitterConfig{Origin: "https://example.com"})
	assert.Error(t, err)
}

func TestTextNotifier(t *testing.T) {
	var buf safeBuffer
	n := TextNotifier{W: &buf}

	n.Notify(context.Background(), Outcome{StatusCode: 200})
	n.Notify(context.Background(), Outcome{Err: errors.New("x")})

	assert.Equal(t, "✓ "+SuccessMessage+"\n✗ "+FailureMessage+"\n", buf.String())
}

func TestNotifierFunc(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	var got []string
	s, err := NewSubmitter(SubmitterConfig{
		Origin: srv.URL,
		Notifier: NotifierFunc(func(_ context.Context, o Outcome) {
			got = append(got, o.Label())
		}),
	})
	require.NoError(t, err)

	_, _, err = s.Submit(context.Background(), scenarioDraft)
	require.NoError(t, err)
	assert.Equal(t, []string{"success"}, got)
}

type safeBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
