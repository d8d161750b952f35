package models

import (
	"context"
	"sync"
)

// Future holds a value that is produced once by a background producer.
type Future[T any] struct {
	input    chan T
	output   chan T
	done     chan struct{}
	resolved bool
	value    T
	cancel   context.CancelFunc
	lock     sync.Mutex
}

// NewFuture resolves with the first value sent on input. cancel may be nil.
func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	f := &Future[T]{
		input:  input,
		output: make(chan T, 1),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		v := <-f.input
		f.lock.Lock()
		f.value = v
		f.resolved = true
		f.lock.Unlock()

		close(f.done)
		f.output <- v
		if f.cancel != nil {
			f.cancel()
		}
	}()

	return f
}

// C delivers the value exactly once.
func (f *Future[T]) C() <-chan T {
	return f.output
}

// Done is closed when the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Poll() (value T, isResolved bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.resolved {
		return f.value, true
	}

	var none T
	return none, false
}

// Wait blocks until the future is resolved or ctx is done.
// Abandoning a future does not stop the producer.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		v, _ := f.Poll()
		return v, nil
	case <-ctx.Done():
		var none T
		return none, ctx.Err()
	}
}

func (f *Future[T]) Stop() {
	if f.cancel != nil {
		f.cancel()
	}
}
