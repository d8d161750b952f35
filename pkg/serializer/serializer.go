package serializer

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/zhakazx/animeinfo/internal/models"
)

// DefaultMinInterval keeps dispatches at roughly 3 per second.
const DefaultMinInterval = 334 * time.Millisecond

// ErrSerializerClosed resolves work submitted after Close or still queued when it runs.
var ErrSerializerClosed = errors.New("request serializer closed")

type workRequest struct {
	fn          models.Work[any]
	c           chan models.Result[any]
	ctx         context.Context
	submittedAt time.Time
}

// Option configures a Serializer built by New.
type Option func(*Serializer)

// WithMinInterval sets the minimum spacing between two dispatch starts.
// A value <= 0 disables pacing.
func WithMinInterval(d time.Duration) Option {
	return func(s *Serializer) {
		s.minInterval = d
	}
}

// WithRequestsPerMinute adds a rolling per-minute budget on top of the
// minimum interval. A value <= 0 disables it.
func WithRequestsPerMinute(n int) Option {
	return func(s *Serializer) {
		if n <= 0 {
			s.budget = nil
			return
		}
		s.budget = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
	}
}

// Serializer runs submitted work one item at a time, in submission order,
// and never starts two items closer together than the minimum interval.
type Serializer struct {
	mu           sync.Mutex
	queue        *models.Queue[workRequest]
	draining     bool
	closed       bool
	lastDispatch time.Time

	minInterval time.Duration
	budget      *rate.Limiter

	dispatched atomic.Uint64
	failed     atomic.Uint64

	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	logger     *zap.SugaredLogger
}

// New returns an idle serializer paced at DefaultMinInterval unless opts say otherwise.
func New(opts ...Option) *Serializer {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Serializer{
		queue:       &models.Queue[workRequest]{},
		minInterval: DefaultMinInterval,
		mainCtx:     ctx,
		mainCancel:  cancel,
		logger:      zap.S().Named("serializer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit enqueues w and returns immediately. The future resolves with
// exactly what w returned. ctx is handed to w; the queue itself never
// withdraws a submitted item.
func (s *Serializer) Submit(ctx context.Context, w models.Work[any]) *models.Future[models.Result[any]] {
	c := make(chan models.Result[any], 1)
	future := models.NewFuture(c, nil)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		c <- models.Result[any]{Err: ErrSerializerClosed}
		return future
	}

	s.queue.Push(workRequest{fn: w, c: c, ctx: ctx, submittedAt: time.Now()})
	if !s.draining {
		s.draining = true
		s.wg.Add(1)
		go s.drain()
	}
	s.mu.Unlock()

	return future
}

// Do submits w and waits for its result.
func Do[T any](ctx context.Context, s *Serializer, w models.Work[T]) (T, error) {
	var zero T

	future := s.Submit(ctx, func(ctx context.Context) (any, error) {
		return w(ctx)
	})

	result, err := future.Wait(ctx)
	if err != nil {
		return zero, err
	}
	if result.Err != nil {
		return zero, result.Err
	}
	if result.Data == nil {
		return zero, nil
	}

	v, ok := result.Data.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected result type %T", result.Data)
	}
	return v, nil
}

// Status returns a snapshot of the queue.
func (s *Serializer) Status() models.SerializerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.SerializerIdle
	switch {
	case s.closed:
		state = models.SerializerClosed
	case s.draining:
		state = models.SerializerDraining
	}

	return models.SerializerStatus{
		State:        state,
		Pending:      s.queue.Len(),
		LastDispatch: s.lastDispatch,
		Dispatched:   s.dispatched.Load(),
		Failed:       s.failed.Load(),
		MinInterval:  s.minInterval,
	}
}

// Close stops the drain loop. Items still queued resolve with
// ErrSerializerClosed; an item already running is allowed to finish.
func (s *Serializer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	pending := s.queue.Drain()
	s.mu.Unlock()

	s.mainCancel()
	for _, r := range pending {
		r.c <- models.Result[any]{Err: ErrSerializerClosed}
	}

	s.wg.Wait()
	s.logger.Infow("request serializer closed", "dropped", len(pending))
}

func (s *Serializer) drain() {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		if s.closed || s.queue.Len() == 0 {
			s.draining = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		if err := s.wait(s.mainCtx); err != nil {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
			return
		}

		s.mu.Lock()
		if s.closed {
			s.draining = false
			s.mu.Unlock()
			return
		}
		r := s.queue.Pop()
		s.lastDispatch = time.Now()
		pending := s.queue.Len()
		s.mu.Unlock()

		s.logger.Debugw("dispatching work", "queued_for", time.Since(r.submittedAt), "pending", pending)
		s.dispatch(r)
	}
}

// wait blocks only while less than minInterval has passed since the last
// dispatch started.
func (s *Serializer) wait(ctx context.Context) error {
	if s.budget != nil {
		if err := s.budget.Wait(ctx); err != nil {
			return err
		}
	}

	s.mu.Lock()
	last := s.lastDispatch
	s.mu.Unlock()

	if last.IsZero() {
		return nil
	}
	remaining := s.minInterval - time.Since(last)
	if remaining <= 0 {
		return nil
	}

	t := time.NewTimer(remaining)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Serializer) dispatch(r workRequest) {
	v, err := s.run(r)

	s.dispatched.Add(1)
	if err != nil {
		s.failed.Add(1)
	}

	r.c <- models.Result[any]{Data: v, Err: err}
}

func (s *Serializer) run(r workRequest) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Errorw("work panicked", "panic", p, "stack", string(debug.Stack()))
			err = fmt.Errorf("work panicked: %v", p)
		}
	}()

	return r.fn(r.ctx)
}
