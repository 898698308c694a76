package futures

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRaceFirstSettlementWins(t *testing.T) {
	slow := NewPromise[int]()
	fast := NewPromise[int]()
	f := Race([]*Future[int]{slow.Future(), fast.Future()})

	fast.Succeed(5)
	x, err := f.Result()
	require.NoError(t, err)
	require.Equal(t, 5, x)

	slow.Succeed(10)
	x, _ = f.Result()
	require.Equal(t, 5, x)
}

func TestRaceAlreadySettledInputs(t *testing.T) {
	f := Race([]*Future[int]{NewSuccess(1), NewSuccess(2)})
	x, err := f.Result()
	require.NoError(t, err)
	require.Equal(t, 1, x)
}

func TestRaceRejection(t *testing.T) {
	captureUnhandled(t)
	boom := errors.New("boom")
	p1 := NewPromise[int]()
	p2 := NewPromise[int]()
	f := Race([]*Future[int]{p1.Future(), p2.Future()})

	p1.Fail(boom)
	require.True(t, f.IsFailure())
	_, err := f.Result()
	require.Equal(t, boom, err)

	p2.Succeed(7)
	_, err = f.Result()
	require.Equal(t, boom, err)
}

func TestRaceEmptyStaysPending(t *testing.T) {
	f := Race([]*Future[int]{})
	require.Equal(t, Pending, f.State())
}

func TestAnyFirstFulfillmentWins(t *testing.T) {
	p1 := NewPromise[int]()
	p2 := NewPromise[int]()
	f := Any([]*Future[int]{p1.Future(), p2.Future()})

	p1.Fail(errors.New("boom"))
	// a single rejection does not settle Any
	require.Equal(t, Pending, f.State())

	p2.Succeed(42)
	x, err := f.Result()
	require.NoError(t, err)
	require.Equal(t, 42, x)
}

func TestAnyAllRejected(t *testing.T) {
	captureUnhandled(t)
	e1 := errors.New("one")
	e2 := errors.New("two")
	p1 := NewPromise[int]()
	p2 := NewPromise[int]()
	f := Any([]*Future[int]{p1.Future(), p2.Future()})

	p2.Fail(e2)
	require.Equal(t, Pending, f.State())
	p1.Fail(e1)

	require.True(t, f.IsFailure())
	_, err := f.Result()
	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	require.Equal(t, []error{e1, e2}, agg.Reasons)
	require.ErrorIs(t, err, e1)
	require.ErrorIs(t, err, e2)
}

func TestAnyEmptyRejects(t *testing.T) {
	captureUnhandled(t)
	f := Any([]*Future[int]{})
	require.True(t, f.IsFailure())
	_, err := f.Result()
	require.True(t, IsAggregate(err))
}
