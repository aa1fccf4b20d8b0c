// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrBatchClosed is returned when Go is called after Wait.
var ErrBatchClosed = errors.New("batch is closed")

// Batch runs tasks in bounded, barrier-separated batches.
//
// Batch is meant to be driven from a single goroutine: Go, Flush and Wait
// must not be called concurrently. The tasks themselves run concurrently.
type Batch struct {
	ctx   context.Context
	limit int

	group   *errgroup.Group
	pending map[string]struct{}
	size    int
	closed  bool

	mu      sync.Mutex
	settled []int

	onSettle func(size int)
}

// Option configures a Batch.
type Option func(*Batch)

// WithSettleHook registers fn to be called after every non-empty batch has
// settled, with the number of tasks the batch held.
func WithSettleHook(fn func(size int)) Option {
	return func(b *Batch) { b.onSettle = fn }
}

// NewBatch returns a Batch running at most limit tasks per batch.
// A non-positive limit falls back to [DefaultLimit].
func NewBatch(ctx context.Context, limit int, opts ...Option) *Batch {
	if limit <= 0 {
		limit = DefaultLimit
	}

	b := &Batch{
		ctx:     ctx,
		limit:   limit,
		group:   new(errgroup.Group),
		pending: make(map[string]struct{}, limit),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Limit returns the maximum number of tasks per batch.
func (b *Batch) Limit() int { return b.limit }

// Len returns the number of tasks launched in the current batch.
func (b *Batch) Len() int { return b.size }

// Pending reports whether a task launched with key belongs to the current,
// not yet settled batch.
func (b *Batch) Pending(key string) bool {
	_, ok := b.pending[key]
	return ok
}

// Go launches task in the current batch. When the batch already holds Limit
// tasks it is flushed first. key identifies the task for [Batch.Pending] and
// may be empty.
func (b *Batch) Go(key string, task Task) error {
	if b.closed {
		return ErrBatchClosed
	}
	if b.size >= b.limit {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	if err := b.ctx.Err(); err != nil {
		return err
	}

	if key != "" {
		b.pending[key] = struct{}{}
	}
	b.size++
	b.group.Go(task)

	return nil
}

// Flush waits for every task of the current batch and starts a new, empty
// batch. It returns the first task error or the context error, if any.
func (b *Batch) Flush() error {
	if b.size == 0 {
		return b.ctx.Err()
	}

	err := b.group.Wait()
	size := b.size

	b.group = new(errgroup.Group)
	b.pending = make(map[string]struct{}, b.limit)
	b.size = 0

	b.mu.Lock()
	b.settled = append(b.settled, size)
	b.mu.Unlock()
	if b.onSettle != nil {
		b.onSettle(size)
	}

	if err != nil {
		return fmt.Errorf("batch of %d tasks failed: %w", size, err)
	}
	return b.ctx.Err()
}

// Wait flushes the last batch and closes b for further tasks.
func (b *Batch) Wait() error {
	err := b.Flush()
	b.closed = true
	return err
}

// Settled returns the sizes of all batches settled so far, in order.
func (b *Batch) Settled() []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]int, len(b.settled))
	copy(out, b.settled)
	return out
}
