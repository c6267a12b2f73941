// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny and
// https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go

// Package queue provides an unbounded, lock-free, multi-producer
// single-consumer FIFO queue. Senders never block.
package queue

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based queue.
// It must be created with [New].
type Queue[T any] struct {
	head atomic.Pointer[item[T]]
	tail atomic.Pointer[item[T]]
	len  atomic.Uint64

	closed atomic.Bool

	// ready receives a value (without blocking the sender) whenever
	// an item is sent, so that a consumer can wait in a select.
	ready chan struct{}

	pool sync.Pool
}

type item[T any] struct {
	next atomic.Pointer[item[T]]
	v    T
}

// New returns a new empty queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{ready: make(chan struct{}, 1)}
	q.pool.New = func() any { return &item[T]{} }
	head := &item[T]{}
	q.head.Store(head)
	q.tail.Store(head)
	return q
}

// Send adds v to the end of the queue. Sending on a closed queue
// panics: the receiver is gone, which is a fatal condition.
func (q *Queue[T]) Send(v T) {
	if q.closed.Load() {
		panic("queue: send on closed queue")
	}
	i := q.pool.Get().(*item[T])
	i.next.Store(nil)
	i.v = v

	var last, lastnext *item[T]
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, i) {
					q.tail.CompareAndSwap(last, i)
					q.len.Add(1)
					q.signal()
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

func (q *Queue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// TryReceive removes and returns the next item in the queue.
// It returns false if the queue is empty.
func (q *Queue[T]) TryReceive() (T, bool) {
	var zero T
	var first, last, firstnext *item[T]
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return zero, false
				}
				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(^uint64(0))
					// firstnext is the new sentinel: drop its reference to v.
					firstnext.v = zero
					first.v = zero
					q.pool.Put(first)
					return v, true
				}
			}
		}
	}
}

// Drain removes and returns every item currently in the queue, in order.
func (q *Queue[T]) Drain() []T {
	var out []T
	for {
		v, ok := q.TryReceive()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Ready returns a channel that receives a value after items have been
// sent. A receive on it does not guarantee that the queue is non-empty,
// so consumers should follow it with [Queue.TryReceive] or [Queue.Drain].
func (q *Queue[T]) Ready() <-chan struct{} {
	return q.ready
}

// Len returns the length of the queue.
func (q *Queue[T]) Len() int {
	return int(q.len.Load())
}

// Close marks the queue as closed: further sends panic, while the
// remaining items can still be received. Close wakes any waiting consumer.
func (q *Queue[T]) Close() {
	if q.closed.Swap(true) {
		return
	}
	q.signal()
}

// Closed returns whether [Queue.Close] has been called.
func (q *Queue[T]) Closed() bool {
	return q.closed.Load()
}
