package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// knownPaths are recorded verbatim; everything else is bucketed.
var knownPaths = map[string]bool{
	"/":       true,
	"/health": true,
}

// staticPrefixes are reported as a single "/static/*" label.
var staticPrefixes = []string{"/static/"}

// RegisterPath adds a route to the verbatim label set.
// Call during router setup, before serving.
func RegisterPath(path string) {
	knownPaths[path] = true
}

// RegisterStaticPrefix adds an asset prefix such as "/landing/static/".
// Call during router setup, before serving.
func RegisterStaticPrefix(prefix string) {
	staticPrefixes = append(staticPrefixes, prefix)
}

// responseWriter wraps http.ResponseWriter to capture status code and bytes written
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// Unwrap returns the underlying ResponseWriter for middleware compatibility
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// normalizePath maps request paths onto a small label set so random
// probes for unknown URLs don't explode metric cardinality.
func normalizePath(path string) string {
	if knownPaths[path] {
		return path
	}
	for _, prefix := range staticPrefixes {
		if strings.HasPrefix(path, prefix) {
			return "/static/*"
		}
	}
	return "other"
}

// Middleware records HTTP request metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip metrics endpoint to avoid recursion
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)
		method := r.Method
		statusCode := strconv.Itoa(rw.statusCode)

		HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
		HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	})
}
