package fetchkit

import (
	"context"
	"sync"
)

// Future is a single-resolution asynchronous result. It resolves
// exactly once, with either a value of T or an error, and is safe for
// concurrent use. There is no cancellation: a context given to Wait
// bounds the wait itself, never the underlying request.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// newFuture creates an unresolved future.
func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// FailedFuture returns a future that has already failed with err.
func FailedFuture[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.reject(err)
	return f
}

// resolve completes the future with a value. Later calls are no-ops.
func (f *Future[T]) resolve(v T) {
	f.once.Do(func() {
		f.val = v
		close(f.done)
	})
}

// reject completes the future with an error. Later calls are no-ops.
func (f *Future[T]) reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done returns a channel that is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future resolves or ctx is done. A ctx error
// stops the wait only; the request keeps running to completion.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
