package models

import "context"

type Work[T any] func(ctx context.Context) (T, error)

// Queue is a FIFO. Pop returns the oldest element.
type Queue[T any] []T

func (wq *Queue[T]) Len() int { return len(*wq) }

func (wq *Queue[T]) Pop() T {
	old := *wq
	x := old[0]
	var zero T
	old[0] = zero
	*wq = old[1:]
	return x
}

func (wq *Queue[T]) Peek() (T, bool) {
	if len(*wq) == 0 {
		var zero T
		return zero, false
	}
	return (*wq)[0], true
}

func (wq *Queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

// Drain empties the queue and returns its elements in order.
func (wq *Queue[T]) Drain() []T {
	items := []T(*wq)
	*wq = nil
	return items
}

type Result[T any] struct {
	Data T
	Err  error
}
