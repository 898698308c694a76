package futures

import "sync"

// All converts a slice of futures into a single future of a slice of
// their values, index-aligned with the input. It fulfills once every
// input has fulfilled and rejects as soon as any input rejects; later
// settlements of the remaining inputs are absorbed by the settle-once
// rule. An empty input fulfills immediately.
func All[T any](futs []*Future[T]) *Future[[]T] {
	return New(func(fulfill func(Outcome[[]T]), reject func(error)) error {
		results := make([]T, len(futs))
		if len(futs) == 0 {
			fulfill(Success(results))
			return nil
		}
		var mu sync.Mutex
		remaining := len(futs)
		for i, fut := range futs {
			i := i
			fut.subscribe(func(v T) {
				mu.Lock()
				results[i] = v
				remaining--
				fire := remaining == 0
				mu.Unlock()
				if fire {
					fulfill(Success(results))
				}
			}, reject)
		}
		return nil
	})
}

// Settlement records how one input of AllSettled settled.
type Settlement[T any] struct {
	// Status is Fulfilled or Rejected.
	Status State
	// Value is set when Status == Fulfilled.
	Value T
	// Err is set when Status == Rejected.
	Err error
}

// AllSettled converts a slice of futures into a single future of their
// settlements, index-aligned with the input. It fulfills once every input
// has settled either way; it never rejects. An empty input fulfills
// immediately.
func AllSettled[T any](futs []*Future[T]) *Future[[]Settlement[T]] {
	return New(func(fulfill func(Outcome[[]Settlement[T]]), reject func(error)) error {
		results := make([]Settlement[T], len(futs))
		if len(futs) == 0 {
			fulfill(Success(results))
			return nil
		}
		var mu sync.Mutex
		remaining := len(futs)
		record := func(i int, s Settlement[T]) {
			mu.Lock()
			results[i] = s
			remaining--
			fire := remaining == 0
			mu.Unlock()
			if fire {
				fulfill(Success(results))
			}
		}
		for i, fut := range futs {
			i := i
			fut.subscribe(func(v T) {
				record(i, Settlement[T]{Status: Fulfilled, Value: v})
			}, func(err error) {
				record(i, Settlement[T]{Status: Rejected, Err: err})
			})
		}
		return nil
	})
}
