// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs import operations concurrently under a fixed ceiling.
//
// A [Batch] launches tasks as goroutines and groups them into batches of at
// most Limit tasks. Once a batch is full, launching the next task first waits
// for every task of the current batch to finish. A new batch therefore never
// starts before the previous one has fully settled, which keeps the number of
// in-flight requests against the vault bounded and lets callers express
// ordering constraints with explicit flushes.
package workers

// Task is a unit of work run by a [Batch].
//
// A non-nil error is treated as a failure of the whole batch run and is
// returned by the next Flush or Wait. Per-item failures that must not stop
// the run have to be handled inside the task.
type Task func() error

// DefaultLimit is the default number of tasks per batch.
const DefaultLimit = 16
