package futures

// NewSuccess returns a future which has already succeeded with x.
func NewSuccess[T any](x T) *Future[T] {
	f := newFuture[T]()
	f.fulfill(Success(x))
	return f
}

// NewFailure returns a future which has already failed with err.
//
// The future is born rejected: it never transitions, so it does not
// signal an unhandled rejection. Attach handlers with Catch or consume it
// with Await as usual.
func NewFailure[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.handled = true
	f.reject(err)
	return f
}
