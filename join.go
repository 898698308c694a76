package futures

import "sync"

type pair[L, R any] struct {
	Left  L
	Right R
}

func newPair[L, R any](l L, r R) pair[L, R] {
	return pair[L, R]{Left: l, Right: r}
}

// Map returns a future holding fn applied to f's value. A rejection of f
// passes through unchanged.
func Map[A, Z any](f *Future[A], fn func(A) Z) *Future[Z] {
	return New(func(fulfill func(Outcome[Z]), reject func(error)) error {
		f.subscribe(func(a A) {
			fulfill(Success(fn(a)))
		}, reject)
		return nil
	})
}

// Join2 takes 2 futures of different types and a merging function fn.
// Join2 returns a future containing the result of fn(a, b), where a is
// the value in afut and b is the value in bfut. It rejects with the first
// failure of either input.
func Join2[A, B, Z any](afut *Future[A], bfut *Future[B], fn func(A, B) Z) *Future[Z] {
	return New(func(fulfill func(Outcome[Z]), reject func(error)) error {
		var (
			mu        sync.Mutex
			a         A
			b         B
			remaining = 2
		)
		ready := func() bool {
			mu.Lock()
			defer mu.Unlock()
			remaining--
			return remaining == 0
		}
		afut.subscribe(func(v A) {
			mu.Lock()
			a = v
			mu.Unlock()
			if ready() {
				fulfill(Success(fn(a, b)))
			}
		}, reject)
		bfut.subscribe(func(v B) {
			mu.Lock()
			b = v
			mu.Unlock()
			if ready() {
				fulfill(Success(fn(a, b)))
			}
		}, reject)
		return nil
	})
}

func Join3[A, B, C, Z any](a *Future[A], b *Future[B], c *Future[C], fn func(A, B, C) Z) *Future[Z] {
	return Join2(Join2(a, b, newPair[A, B]), c, func(p pair[A, B], c C) Z {
		return fn(p.Left, p.Right, c)
	})
}

func Join4[A, B, C, D, Z any](a *Future[A], b *Future[B], c *Future[C], d *Future[D], fn func(A, B, C, D) Z) *Future[Z] {
	return Join2(Join2(a, b, newPair[A, B]), Join2(c, d, newPair[C, D]), func(l pair[A, B], r pair[C, D]) Z {
		return fn(l.Left, l.Right, r.Left, r.Right)
	})
}
