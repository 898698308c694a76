package futures

import "sync"

// Race returns a future that settles exactly as the first input to settle
// does, on either path. Every input forwards to the same pair of entry
// points; first-settle-wins falls out of the settle-once rule, so no
// bookkeeping is needed here. Inputs that are already settled win in
// slice order. An empty input stays pending forever.
func Race[T any](futs []*Future[T]) *Future[T] {
	return New(func(fulfill func(Outcome[T]), reject func(error)) error {
		for _, fut := range futs {
			fut.subscribe(func(v T) {
				fulfill(Success(v))
			}, reject)
		}
		return nil
	})
}

// Any returns a future that fulfills with the first input to fulfill.
// Unlike Race it absorbs rejections: it only rejects once every input has
// rejected, with an AggregateError carrying the reasons in input order.
// An empty input rejects immediately with an empty aggregate.
func Any[T any](futs []*Future[T]) *Future[T] {
	return New(func(fulfill func(Outcome[T]), reject func(error)) error {
		if len(futs) == 0 {
			reject(&AggregateError{})
			return nil
		}
		var mu sync.Mutex
		reasons := make([]error, len(futs))
		remaining := len(futs)
		for i, fut := range futs {
			i := i
			fut.subscribe(func(v T) {
				fulfill(Success(v))
			}, func(err error) {
				mu.Lock()
				reasons[i] = err
				remaining--
				fire := remaining == 0
				mu.Unlock()
				if fire {
					reject(&AggregateError{Reasons: reasons})
				}
			})
		}
		return nil
	})
}
