package futures

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrPending is returned by Result when the future has not settled.
var ErrPending = errors.New("future is still pending")

// UnhandledRejectionError wraps a rejection that settled with no failure
// continuation registered. It is delivered to the unhandled-rejection
// handler, never returned from the package API.
type UnhandledRejectionError struct {
	Reason error
}

func (e *UnhandledRejectionError) Error() string {
	return fmt.Sprintf("unhandled rejection: %v", e.Reason)
}

func (e *UnhandledRejectionError) Unwrap() error {
	return e.Reason
}

// IsUnhandledRejection reports whether err is an UnhandledRejectionError.
func IsUnhandledRejection(err error) bool {
	var target *UnhandledRejectionError
	return errors.As(err, &target)
}

// AggregateError is the rejection payload of Any when every input has
// rejected. Reasons is index-aligned with Any's input sequence.
type AggregateError struct {
	Reasons []error
}

func (e *AggregateError) Error() string {
	if len(e.Reasons) == 0 {
		return "all futures rejected"
	}
	msgs := make([]string, len(e.Reasons))
	for i, err := range e.Reasons {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("all %d futures rejected: %s", len(e.Reasons), strings.Join(msgs, "; "))
}

func (e *AggregateError) Unwrap() []error {
	return e.Reasons
}

// IsAggregate reports whether err is an AggregateError.
func IsAggregate(err error) bool {
	var target *AggregateError
	return errors.As(err, &target)
}

var (
	unhandledMu sync.RWMutex
	unhandledFn = logUnhandled
)

func logUnhandled(e *UnhandledRejectionError) {
	log.WithError(e.Reason).Error("unhandled rejection")
}

// SetUnhandledRejectionHandler replaces the function invoked when a
// future transitions to rejected with no failure continuation registered.
// The default handler logs the rejection at error level. Passing nil
// restores the default.
//
// The handler runs on the call stack of whichever call settled the
// future, before that future's (empty) failure queue would have drained.
func SetUnhandledRejectionHandler(fn func(*UnhandledRejectionError)) {
	if fn == nil {
		fn = logUnhandled
	}
	unhandledMu.Lock()
	unhandledFn = fn
	unhandledMu.Unlock()
}

func raiseUnhandled(reason error) {
	unhandledMu.RLock()
	fn := unhandledFn
	unhandledMu.RUnlock()
	fn(&UnhandledRejectionError{Reason: reason})
}
