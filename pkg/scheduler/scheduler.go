package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/internal/models"
)

type Result[T any] = models.Result[T]

type Future = models.Future[models.Result[any]]

type workRequest struct {
	fn  models.Work[any]
	c   chan models.Result[any]
	ctx context.Context
}

type worker struct {
	id     int
	done   chan int
	closed <-chan struct{}
	wg     *sync.WaitGroup
	logger *zap.SugaredLogger
}

func (w worker) Work(r workRequest) {
	defer w.wg.Done()

	v, err := w.run(r)
	r.c <- models.Result[any]{Data: v, Err: err}

	select {
	case w.done <- w.id:
	case <-w.closed:
	}
}

func (w worker) run(r workRequest) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			w.logger.Errorw("worker panicked", "worker", w.id, "panic", p, "stack", string(debug.Stack()))
			err = fmt.Errorf("worker panicked: %v", p)
		}
	}()

	if err := r.ctx.Err(); err != nil {
		return nil, err
	}
	return r.fn(r.ctx)
}

// Scheduler runs work on a bounded pool of workers. Work waiting for a free
// worker is started in FIFO order.
type Scheduler struct {
	workers    *models.Queue[int]
	workQueue  *models.Queue[workRequest]
	closed     chan struct{}
	closeOnce  sync.Once
	loopDone   chan struct{}
	done       chan int
	work       chan workRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	logger     *zap.SugaredLogger
}

func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}

	wq := &models.Queue[int]{}
	for i := range nbWorkers {
		wq.Push(i)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workers:    wq,
		workQueue:  &models.Queue[workRequest]{},
		closed:     make(chan struct{}),
		loopDone:   make(chan struct{}),
		done:       make(chan int),
		work:       make(chan workRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
		logger:     zap.S().Named("scheduler"),
	}
	go s.run()
	return s
}

// AddWork queues w. The context handed to w is cancelled when ctx is done,
// when the future is stopped, or when the scheduler closes.
func (s *Scheduler) AddWork(ctx context.Context, w models.Work[any]) *Future {
	c := make(chan models.Result[any], 1)

	workCtx, cancel := context.WithCancel(s.mainCtx)
	stop := context.AfterFunc(ctx, cancel)
	future := models.NewFuture(c, func() {
		stop()
		cancel()
	})

	select {
	case s.work <- workRequest{fn: w, c: c, ctx: workCtx}:
	case <-s.closed:
		c <- models.Result[any]{Err: context.Canceled}
	}

	return future
}

// Close cancels queued and running work and waits for running workers to return.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		s.mainCancel()
		close(s.closed)
		<-s.loopDone
		s.wg.Wait()
	})
}

func (s *Scheduler) run() {
	defer close(s.loopDone)

	for {
		select {
		case w := <-s.work:
			s.workQueue.Push(w)
			if s.workers.Len() == 0 {
				continue
			}
			s.dispatch(s.workQueue.Pop())
		case id := <-s.done:
			s.workers.Push(id)

			if s.workQueue.Len() == 0 {
				continue
			}
			s.dispatch(s.workQueue.Pop())
		case <-s.closed:
			for _, r := range s.workQueue.Drain() {
				r.c <- models.Result[any]{Err: context.Canceled}
			}
			return
		}
	}
}

func (s *Scheduler) dispatch(r workRequest) {
	w := worker{
		id:     s.workers.Pop(),
		done:   s.done,
		closed: s.closed,
		wg:     &s.wg,
		logger: s.logger,
	}
	s.wg.Add(1)
	go w.Work(r)
}
