package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// User-facing notification texts.
const (
	SuccessMessage = "Thank you for your message! We will get back to you soon."
	FailureMessage = "There was an error submitting your message. Please try again."
)

var (
	// ErrSubmitInFlight is returned when Submit is called while an earlier
	// submission is still awaiting its response.
	ErrSubmitInFlight = errors.New("contact: a submission is already in flight")

	// ErrNonSuccessStatus is wrapped by StatusError.
	ErrNonSuccessStatus = errors.New("non-success response")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("contact: %s: status %d", ErrNonSuccessStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrNonSuccessStatus
}

// Outcome is the result of one submission attempt. A nil Err means success.
type Outcome struct {
	StatusCode int   // zero when the request never got a response
	Err        error // transport failure or *StatusError
}

// Success reports whether the submission was accepted.
func (o Outcome) Success() bool {
	return o.Err == nil
}

// Message returns the notification text shown to the user.
func (o Outcome) Message() string {
	if o.Success() {
		return SuccessMessage
	}
	return FailureMessage
}

// Label is the outcome name used in logs and metrics.
func (o Outcome) Label() string {
	if o.Success() {
		return "success"
	}
	var se *StatusError
	if errors.As(o.Err, &se) {
		return "rejected"
	}
	return "transport_error"
}

// Notifier surfaces an outcome to the user. Submit calls it exactly once
// per completed submission.
type Notifier interface {
	Notify(ctx context.Context, o Outcome)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, o Outcome)

func (f NotifierFunc) Notify(ctx context.Context, o Outcome) {
	f(ctx, o)
}

// TextNotifier writes the notification text as one line to W.
type TextNotifier struct {
	W io.Writer
}

func (n TextNotifier) Notify(_ context.Context, o Outcome) {
	prefix := "✓"
	if !o.Success() {
		prefix = "✗"
	}
	fmt.Fprintf(n.W, "%s %s\n", prefix, o.Message())
}
