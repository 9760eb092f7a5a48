// Package syncx provides small concurrency helpers, including the futures used to model asynchronous soft blocks.
package syncx

import "sync"

func LockFunc(mux sync.Locker, fn func()) {
	mux.Lock()
	defer mux.Unlock()
	fn()
}

func LockFuncT[T any](mux sync.Locker, fn func() T) T {
	mux.Lock()
	defer mux.Unlock()
	return fn()
}
