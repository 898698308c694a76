package futures

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	p1 := NewPromise[int]()
	p2 := NewPromise[int]()
	p3 := NewPromise[int]()
	f := All([]*Future[int]{p1.Future(), p2.Future(), p3.Future()})

	// settle out of order; results stay index-aligned
	p3.Succeed(30)
	p1.Succeed(10)
	require.Equal(t, Pending, f.State())
	p2.Succeed(20)

	xs, err := f.Result()
	require.NoError(t, err)
	require.Equal(t, []int{10, 20, 30}, xs)
}

func TestAllAlreadySettled(t *testing.T) {
	f := All([]*Future[int]{NewSuccess(1), NewSuccess(2)})
	xs, err := f.Result()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, xs)
}

func TestAllRejectShortCircuits(t *testing.T) {
	captureUnhandled(t)
	boom := errors.New("boom")
	p1 := NewPromise[int]()
	p2 := NewPromise[int]()
	p3 := NewPromise[int]()
	f := All([]*Future[int]{p1.Future(), p2.Future(), p3.Future()})

	p2.Fail(boom)
	require.True(t, f.IsFailure())
	_, err := f.Result()
	require.Equal(t, boom, err)

	// stragglers settle into an already-rejected future: no-ops
	p1.Succeed(10)
	p3.Fail(errors.New("other"))
	_, err = f.Result()
	require.Equal(t, boom, err)
}

func TestAllEmpty(t *testing.T) {
	f := All([]*Future[int]{})
	xs, err := f.Result()
	require.NoError(t, err)
	require.Empty(t, xs)
}

func TestAllSettled(t *testing.T) {
	boom := errors.New("boom")
	p1 := NewPromise[int]()
	p2 := NewPromise[int]()
	p3 := NewPromise[int]()
	f := AllSettled([]*Future[int]{p1.Future(), p2.Future(), p3.Future()})

	p2.Fail(boom)
	// a rejection does not short-circuit AllSettled
	require.Equal(t, Pending, f.State())
	p1.Succeed(10)
	p3.Succeed(30)

	xs, err := f.Result()
	require.NoError(t, err)
	require.Equal(t, []Settlement[int]{
		{Status: Fulfilled, Value: 10},
		{Status: Rejected, Err: boom},
		{Status: Fulfilled, Value: 30},
	}, xs)
}

func TestAllSettledAllRejected(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")
	f := AllSettled([]*Future[int]{NewFailure[int](e1), NewFailure[int](e2)})
	xs, err := f.Result()
	require.NoError(t, err)
	require.Equal(t, []Settlement[int]{
		{Status: Rejected, Err: e1},
		{Status: Rejected, Err: e2},
	}, xs)
}

func TestAllSettledEmpty(t *testing.T) {
	f := AllSettled([]*Future[int]{})
	xs, err := f.Result()
	require.NoError(t, err)
	require.Empty(t, xs)
}
