// Package futures provides a settle-once Future type which can be used
// to model the eventual result of a computation which could fail.
//
// Futures are not the idiomatic way to deal with concurrency in Go.
// Go APIs should be synchronous not asynchronous.
// If your API returns a Future: you are doing it wrong.
// That being said, callback-driven hosts *are* asynchronous; futures,
// especially the Promises, provide a way to build synchronous APIs
// on top of an asynchronous event source.
//
// A Future settles at most once, to either a success value or a failure
// error. Continuations attached with Then, Catch, and Finally run
// synchronously: on the call stack of the settling call if the future is
// still pending, or on the call stack of the attaching call if it has
// already settled. There is no background scheduler.
package futures

import (
	"context"
	"sync"
)

// State is the settlement state of a Future.
type State uint8

const (
	// Pending means the future has not settled yet.
	Pending State = iota
	// Fulfilled means the future settled with a success value.
	Fulfilled
	// Rejected means the future settled with an error.
	Rejected
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Future is the eventual result of a computation: a value of type T on
// success or an error on failure, observed exactly once per settlement.
//
// A Future settles at most once; later settlement attempts are silent
// no-ops. The zero value is not usable; futures are created by New, the
// pre-settled constructors, a Promise, or a combinator.
type Future[T any] struct {
	mu        sync.Mutex
	state     State
	value     T
	err       error
	onSuccess []func(T)
	onFailure []func(error)
	// handled suppresses the unhandled-rejection signal. It is set on
	// futures created by a Then/Catch that supplied a failure handler,
	// and on futures consumed through Await.
	handled bool

	done chan struct{}
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// New creates a Future and invokes resolver synchronously, exactly once,
// with the future's two settlement entry points. An error returned by the
// resolver rejects the future; construction itself never fails.
//
// A resolver that never calls either entry point (and returns nil) leaves
// the future permanently pending.
func New[T any](resolver func(fulfill func(Outcome[T]), reject func(error)) error) *Future[T] {
	f := newFuture[T]()
	fulfill := func(o Outcome[T]) { f.fulfill(o) }
	reject := func(err error) { f.reject(err) }
	if err := resolver(fulfill, reject); err != nil {
		f.reject(err)
	}
	return f
}

// fulfill is the success entry point. Failure outcomes are routed to
// reject; chained outcomes adopt the inner future's settlement instead of
// settling now. Reports whether this call settled the future.
func (f *Future[T]) fulfill(o Outcome[T]) bool {
	switch o.kind {
	case outcomeFailure:
		return f.reject(o.err)
	case outcomeChain:
		// Adopt: the inner future's settlement drives this one through
		// the same entry points, unwrapping nested chains to any depth.
		o.next.subscribe(func(v T) {
			f.fulfill(Success(v))
		}, func(err error) {
			f.reject(err)
		})
		return false
	}
	f.mu.Lock()
	if f.state != Pending {
		f.mu.Unlock()
		return false
	}
	f.state = Fulfilled
	f.value = o.value
	q := f.onSuccess
	f.onSuccess, f.onFailure = nil, nil
	f.mu.Unlock()
	close(f.done)
	for _, fn := range q {
		fn(o.value)
	}
	return true
}

// reject is the failure entry point. Reports whether this call settled
// the future.
func (f *Future[T]) reject(err error) bool {
	f.mu.Lock()
	if f.state != Pending {
		f.mu.Unlock()
		return false
	}
	f.state = Rejected
	f.err = err
	q := f.onFailure
	unhandled := len(q) == 0 && !f.handled
	f.onSuccess, f.onFailure = nil, nil
	f.mu.Unlock()
	if unhandled {
		raiseUnhandled(err)
	}
	close(f.done)
	for _, fn := range q {
		fn(err)
	}
	return true
}

// subscribe registers continuations for both settlement paths. Only the
// one matching the final state ever runs; the other is discarded. If the
// future is already settled the matching continuation runs synchronously
// before subscribe returns. Continuations run in registration order.
func (f *Future[T]) subscribe(onSuccess func(T), onFailure func(error)) {
	f.mu.Lock()
	switch f.state {
	case Pending:
		f.onSuccess = append(f.onSuccess, onSuccess)
		f.onFailure = append(f.onFailure, onFailure)
		f.mu.Unlock()
	case Fulfilled:
		v := f.value
		f.mu.Unlock()
		onSuccess(v)
	default:
		err := f.err
		f.mu.Unlock()
		onFailure(err)
	}
}

func (f *Future[T]) markHandled() {
	f.mu.Lock()
	f.handled = true
	f.mu.Unlock()
}

// Then returns a new Future settled by this one through the given
// handlers. Either handler may be nil: a nil onSuccess forwards the value
// unchanged and a nil onFailure forwards the error unchanged, so
// rejections propagate through value-only links and values through Catch
// links.
//
// A handler's Outcome drives the new future: Success fulfills it, Failure
// rejects it (the explicit rendering of a handler throwing), and ChainTo
// makes it adopt another future's settlement.
func (f *Future[T]) Then(onSuccess func(T) Outcome[T], onFailure func(error) Outcome[T]) *Future[T] {
	next := newFuture[T]()
	next.handled = onFailure != nil
	f.subscribe(func(v T) {
		if onSuccess == nil {
			next.fulfill(Success(v))
			return
		}
		next.fulfill(onSuccess(v))
	}, func(err error) {
		if onFailure == nil {
			next.reject(err)
			return
		}
		next.fulfill(onFailure(err))
	})
	return next
}

// Catch is Then with only a failure handler.
func (f *Future[T]) Catch(onFailure func(error) Outcome[T]) *Future[T] {
	return f.Then(nil, onFailure)
}

// Finally returns a new Future that settles exactly as this one does,
// after running onSettled on either path. onSettled receives nothing and
// substitutes nothing: the original value or error continues to the next
// link unchanged, including an unhandled rejection at the end of a chain.
func (f *Future[T]) Finally(onSettled func()) *Future[T] {
	next := newFuture[T]()
	f.subscribe(func(v T) {
		onSettled()
		next.fulfill(Success(v))
	}, func(err error) {
		onSettled()
		next.reject(err)
	})
	return next
}

// State returns the current settlement state.
func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// IsDone returns whether the future has settled. It does not block.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// IsSuccess returns whether the future has settled with a value.
func (f *Future[T]) IsSuccess() bool {
	return f.State() == Fulfilled
}

// IsFailure returns whether the future has settled with an error.
func (f *Future[T]) IsFailure() bool {
	return f.State() == Rejected
}

// Result returns the settled value or error. If the future is still
// pending it returns ErrPending.
func (f *Future[T]) Result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Pending {
		var zero T
		return zero, ErrPending
	}
	return f.value, f.err
}

// wait blocks until the future settles.
// wait only returns errors from the context; it does NOT return the
// settlement error.
func (f *Future[T]) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.done:
		return nil
	}
}
