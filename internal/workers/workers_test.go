// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_SplitsIntoBatchesOfLimit(t *testing.T) {
	b := NewBatch(context.Background(), 16)

	var ran atomic.Int32
	for i := 0; i < 20; i++ {
		require.NoError(t, b.Go(strconv.Itoa(i), func() error {
			ran.Add(1)
			return nil
		}))
	}
	require.NoError(t, b.Wait())

	assert.Equal(t, int32(20), ran.Load())
	assert.Equal(t, []int{16, 4}, b.Settled())
}

// TestBatch_NextBatchWaitsForPreviousToSettle verifies the barrier: no task
// of the second batch starts before every task of the first batch returned.
func TestBatch_NextBatchWaitsForPreviousToSettle(t *testing.T) {
	b := NewBatch(context.Background(), 4)

	var finishedFirst atomic.Int32
	release := make(chan struct{})
	for i := 0; i < 4; i++ {
		require.NoError(t, b.Go("", func() error {
			<-release
			time.Sleep(time.Millisecond)
			finishedFirst.Add(1)
			return nil
		}))
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()

	seenAtStart := make(chan int32, 2)
	for i := 0; i < 2; i++ {
		require.NoError(t, b.Go("", func() error {
			seenAtStart <- finishedFirst.Load()
			return nil
		}))
	}
	require.NoError(t, b.Wait())
	close(seenAtStart)

	for seen := range seenAtStart {
		assert.Equal(t, int32(4), seen)
	}
	assert.Equal(t, []int{4, 2}, b.Settled())
}

func TestBatch_InFlightNeverExceedsLimit(t *testing.T) {
	const limit = 3
	b := NewBatch(context.Background(), limit)

	var inFlight, maxInFlight atomic.Int32
	for i := 0; i < 25; i++ {
		require.NoError(t, b.Go("", func() error {
			n := inFlight.Add(1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inFlight.Add(-1)
			return nil
		}))
	}
	require.NoError(t, b.Wait())

	assert.LessOrEqual(t, maxInFlight.Load(), int32(limit))
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3, 3, 3, 1}, b.Settled())
}

func TestBatch_PendingTracksCurrentBatchOnly(t *testing.T) {
	b := NewBatch(context.Background(), 16)

	require.NoError(t, b.Go("a", func() error { return nil }))
	assert.True(t, b.Pending("a"))
	assert.False(t, b.Pending("b"))
	assert.Equal(t, 1, b.Len())

	require.NoError(t, b.Flush())
	assert.False(t, b.Pending("a"))
	assert.Equal(t, 0, b.Len())
}

func TestBatch_FlushOnEmptyBatchIsNoop(t *testing.T) {
	var hooks int
	b := NewBatch(context.Background(), 2, WithSettleHook(func(int) { hooks++ }))

	require.NoError(t, b.Flush())
	require.NoError(t, b.Flush())

	assert.Empty(t, b.Settled())
	assert.Zero(t, hooks)
}

func TestBatch_SettleHookReceivesSizes(t *testing.T) {
	var sizes []int
	b := NewBatch(context.Background(), 2, WithSettleHook(func(n int) { sizes = append(sizes, n) }))

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Go("", func() error { return nil }))
	}
	require.NoError(t, b.Wait())

	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestBatch_TaskErrorIsReturnedOnFlush(t *testing.T) {
	boom := errors.New("boom")
	b := NewBatch(context.Background(), 2)

	require.NoError(t, b.Go("", func() error { return boom }))
	require.NoError(t, b.Go("", func() error { return nil }))

	err := b.Go("", func() error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestBatch_CancelledContextStopsLaunching(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := NewBatch(ctx, 2)

	require.NoError(t, b.Go("", func() error { return nil }))
	cancel()

	err := b.Go("", func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, b.Wait(), context.Canceled)
}

func TestBatch_GoAfterWait(t *testing.T) {
	b := NewBatch(context.Background(), 2)
	require.NoError(t, b.Wait())

	assert.ErrorIs(t, b.Go("", func() error { return nil }), ErrBatchClosed)
}

func TestNewBatch_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NewBatch(context.Background(), 0).Limit())
	assert.Equal(t, DefaultLimit, NewBatch(context.Background(), -3).Limit())
	assert.Equal(t, 5, NewBatch(context.Background(), 5).Limit())
}
