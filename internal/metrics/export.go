package metrics

import "time"

// ExportCompleted records a finished static export.
func ExportCompleted(provider string, files int, duration time.Duration) {
	ExportsTotal.WithLabelValues(provider, "completed").Inc()
	ExportFiles.WithLabelValues(provider).Add(float64(files))
	ExportDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// ExportFailed records a static export that stopped with an error.
func ExportFailed(provider string) {
	ExportsTotal.WithLabelValues(provider, "failed").Inc()
}

// ContactSubmitted records one completed contact submission.
func ContactSubmitted(outcome string, duration time.Duration) {
	ContactSubmissions.WithLabelValues(outcome).Inc()
	ContactSubmitDuration.Observe(duration.Seconds())
}
