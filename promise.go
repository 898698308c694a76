package futures

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Promise is the producer handle for a Future: the consumer side is
// obtained from Future, the producer settles it with Succeed, Fail, or
// Delegate. A Promise may be settled from any goroutine; continuations
// attached to the future run on the settling goroutine's call stack.
type Promise[T any] struct {
	fut *Future[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{fut: newFuture[T]()}
}

// Future returns the consumer side of the promise.
func (p *Promise[T]) Future() *Future[T] {
	return p.fut
}

// Succeed fulfills the promise with x. It reports whether this call
// settled the future; settling an already-settled promise is a no-op.
func (p *Promise[T]) Succeed(x T) bool {
	return p.fut.fulfill(Success(x))
}

// Fail rejects the promise with err. It reports whether this call
// settled the future.
func (p *Promise[T]) Fail(err error) bool {
	return p.fut.reject(err)
}

// Delegate makes the promise adopt however next settles.
func (p *Promise[T]) Delegate(next *Future[T]) {
	p.fut.fulfill(ChainTo(next))
}

func (p *Promise[T]) IsDone() bool {
	return p.fut.IsDone()
}

func (p *Promise[T]) IsSuccess() bool {
	return p.fut.IsSuccess()
}

func (p *Promise[T]) IsFailure() bool {
	return p.fut.IsFailure()
}

// Go spawns fn in a separate goroutine and returns a Future for its
// completion.
func Go[T any](fn func() (T, error)) *Future[T] {
	p := NewPromise[T]()
	go func() {
		x, err := fn()
		if err != nil {
			p.Fail(err)
		} else {
			p.Succeed(x)
		}
	}()
	return p.Future()
}

// Await blocks until the future settles, then returns its result. The
// context bounds the wait only; it does not settle the future. A future
// consumed through Await counts as handled for unhandled-rejection
// signaling, since its error is delivered to the caller.
func Await[T any](ctx context.Context, f *Future[T]) (T, error) {
	f.markHandled()
	if err := f.wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return f.Result()
}

func Await2[A, B any](ctx context.Context, af *Future[A], bf *Future[B]) (retA A, retB B, _ error) {
	af.markHandled()
	bf.markHandled()
	ws := [2]waiter{af, bf}
	if err := waitAll(ctx, ws[:]); err != nil {
		return retA, retB, err
	}
	a, err := af.Result()
	if err != nil {
		return retA, retB, err
	}
	b, err := bf.Result()
	if err != nil {
		return retA, retB, err
	}
	return a, b, nil
}

func Await3[A, B, C any](ctx context.Context, af *Future[A], bf *Future[B], cf *Future[C]) (retA A, retB B, retC C, _ error) {
	af.markHandled()
	bf.markHandled()
	cf.markHandled()
	ws := [3]waiter{af, bf, cf}
	if err := waitAll(ctx, ws[:]); err != nil {
		return retA, retB, retC, err
	}
	a, err := af.Result()
	if err != nil {
		return retA, retB, retC, err
	}
	b, err := bf.Result()
	if err != nil {
		return retA, retB, retC, err
	}
	c, err := cf.Result()
	if err != nil {
		return retA, retB, retC, err
	}
	return a, b, c, nil
}

type waiter interface {
	wait(ctx context.Context) error
}

func waitAll(ctx context.Context, xs []waiter) error {
	eg, ctx := errgroup.WithContext(ctx)
	for i := range xs {
		i := i
		eg.Go(func() error { return xs[i].wait(ctx) })
	}
	return eg.Wait()
}
