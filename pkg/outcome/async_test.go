package outcome

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardAsync_ResolvesAfterDelay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := GuardAsync(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return "ok", nil
	})

	res := Await(ctx, future)
	require.True(t, res.IsSuccess())
	v, _ := res.Value()
	assert.Equal(t, "ok", v)
}

func TestGuardAsync_EvaluatesExactlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls atomic.Int32
	future := GuardAsync(ctx, func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 1, nil
	})

	res := Await(ctx, future)
	require.True(t, res.IsSuccess())
	assert.Equal(t, int32(1), calls.Load())

	// the channel is one-shot: a second receive sees it closed
	res = Await(ctx, future)
	err, ok := res.Err()
	require.True(t, ok)
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGuardAsync_ContainsFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := GuardAsync(ctx, func(ctx context.Context) (int, error) {
		panic("async blew up")
	})

	res := Await(ctx, future)
	require.True(t, res.IsFailure())
	err, _ := res.Err()
	var pe *PanicError
	assert.ErrorAs(t, err, &pe)
}

func TestAwait_CallerBound(t *testing.T) {
	t.Parallel()

	slow := GuardAsync(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(time.Second)
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := Await(ctx, slow)
	require.True(t, res.IsFailure())
	err, _ := res.Err()
	assert.True(t, IsCancellation(err))
}

func TestGuardAsyncWith_MapsFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	future := GuardAsyncWith(ctx, func(ctx context.Context) (string, error) {
		return "", errors.New("gone")
	}, func(f Fault) int { return 410 })

	res := AwaitWith(ctx, future, func(f Fault) int { return -1 })
	code, ok := res.Err()
	require.True(t, ok)
	assert.Equal(t, 410, code)
}
