package futures

type outcomeKind uint8

const (
	outcomeSuccess outcomeKind = iota
	outcomeFailure
	outcomeChain
)

// Outcome is a tagged settlement value: a success value, a failure error,
// or a delegation to another future. Resolvers and Then/Catch handlers
// produce Outcomes; the fulfill entry point dispatches on the tag, so
// flattening a future-valued result is a structural match rather than a
// runtime type check.
//
// The zero Outcome is Success of the zero value of T.
type Outcome[T any] struct {
	kind  outcomeKind
	value T
	err   error
	next  *Future[T]
}

// Success is an Outcome carrying a settled value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{kind: outcomeSuccess, value: v}
}

// Failure is an Outcome carrying an error. Fulfilling with a Failure
// rejects the future; returning one from a handler is how a handler
// "throws".
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{kind: outcomeFailure, err: err}
}

// ChainTo is an Outcome that delegates settlement to next: the receiving
// future adopts however next eventually settles, on either path, through
// any depth of nesting.
func ChainTo[T any](next *Future[T]) Outcome[T] {
	return Outcome[T]{kind: outcomeChain, next: next}
}
