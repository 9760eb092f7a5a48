package syncx

import (
	"context"
	"sync"
	"time"
)

// Future is a value that is resolved asynchronously at a later time.
// Once Await returns, the value is cached for other calls to Await.
type Future[T any] interface {
	// Resolve sets the value of the [Future] so it can be resolved by consumers.
	// Only the first call to Resolve will set the result. Subsequent calls do nothing.
	Resolve(T)
	// Await blocks until the value is made available with [Future.Resolve], or until the timeout elapses if specified.
	// If the timeout limit is reached, then the [Future] type's zero value is returned.
	// If no timeout is given, then the function will wait indefinitely.
	Await(...time.Duration) T
}

func NewFuture[T any]() Future[T] {
	return newFuture[T]()
}

// FutureErr is the same as [Future], but it returns a value and an error.
// A FutureErr resolved with a non-nil error is the equivalent of a rejected promise.
type FutureErr[T any] interface {
	// ResolveErr sets the value (and possibly an error) of the [Future] so it can be resolved by consumers.
	// Only the first call to ResolveErr will set the result. Subsequent calls do nothing.
	ResolveErr(T, error)
	// AwaitErr blocks until the value is made available with [FutureErr.ResolveErr], or until the timeout elapses if specified.
	// If the timeout limit is reached, then the [Future] type's zero value is returned along with the error returned from the context being cancelled.
	// If no timeout is given, then the function will wait indefinitely.
	AwaitErr(...time.Duration) (T, error)
	// AwaitContext is the same as AwaitErr, but waiting stops when ctx is done.
	AwaitContext(ctx context.Context) (T, error)
	// Done returns a channel that's closed once the value is resolved.
	Done() <-chan struct{}
}

func NewFutureErr[T any]() FutureErr[T] {
	return newFuture[T]()
}

// Resolved returns a [FutureErr] that has already been resolved with val and err.
func Resolved[T any](val T, err error) FutureErr[T] {
	f := newFuture[T]()
	f.ResolveErr(val, err)
	return f
}

type future[T any] struct {
	resolve sync.Once
	done    chan struct{}
	val     T
	err     error
}

func newFuture[T any]() *future[T] {
	return &future[T]{
		done: make(chan struct{}),
	}
}

func (f *future[T]) Resolve(val T) {
	f.ResolveErr(val, nil)
}

func (f *future[T]) Await(timeout ...time.Duration) T {
	val, _ := f.AwaitErr(timeout...)
	return val
}

func (f *future[T]) ResolveErr(val T, err error) {
	f.resolve.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

func (f *future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *future[T]) AwaitErr(timeout ...time.Duration) (T, error) {
	var (
		ctx    = context.Background()
		cancel = func() {}
	)
	if len(timeout) > 0 && timeout[0] > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout[0])
	}
	defer cancel()
	return f.AwaitContext(ctx)
}

func (f *future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
