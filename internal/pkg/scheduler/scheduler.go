// Package scheduler runs named tasks at a fixed interval on top of a cron
// runner. A task never overlaps with itself: ticks that fire while a run is
// in progress are skipped.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gabapcia/blockgate/internal/pkg/logger"
)

var (
	// ErrInvalidInterval is returned by Schedule for non-positive intervals.
	ErrInvalidInterval = errors.New("interval must be positive")

	// ErrDuplicateTask is returned by Schedule when the name is taken.
	ErrDuplicateTask = errors.New("task already scheduled")

	// ErrStopped is returned by Schedule after Stop.
	ErrStopped = errors.New("scheduler stopped")
)

// Task is one unit of periodic work. Returned errors are logged.
type Task func(ctx context.Context) error

// every is a cron.Schedule with a fixed delay. cron.Every truncates to whole
// seconds, engine intervals may be shorter.
type every time.Duration

func (e every) Next(t time.Time) time.Time {
	return t.Add(time.Duration(e))
}

// cronLogger writes cron runner messages through the context logger.
type cronLogger struct {
	ctx context.Context
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(l.ctx, msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Error(l.ctx, msg, append(keysAndValues, "error", err)...)
}

type entry struct {
	name     string
	interval time.Duration
	task     Task
}

type Scheduler struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	cron    *cron.Cron
	entries map[string]entry
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// New returns a Scheduler that is not running yet.
func New() *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger{ctx: context.Background()})),
		entries: make(map[string]entry),
	}
}

// Schedule registers task under name. If the scheduler is running the task
// starts right away, otherwise on Start.
func (s *Scheduler) Schedule(name string, interval time.Duration, task Task) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}

	if _, ok := s.entries[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, name)
	}

	e := entry{name: name, interval: interval, task: task}
	s.entries[name] = e

	if s.ctx != nil {
		s.launch(s.ctx, e)
	}

	return nil
}

// Start launches every registered task. Each task runs once immediately and
// then every interval until ctx is done or Stop is called. Calling Start on
// a running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil || s.stopped {
		return
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	for _, e := range s.entries {
		s.launch(s.ctx, e)
	}

	s.cron.Start()
}

// Stop cancels every task and waits for in-flight runs to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.wg.Wait()
}

// launch adds e to the cron runner and fires its first run. Both share the
// same wrapped job so the first run also counts against overlap.
func (s *Scheduler) launch(ctx context.Context, e entry) {
	ctx = logger.Derive(ctx, "task.name", e.name)

	l := cronLogger{ctx: ctx}
	job := cron.NewChain(cron.Recover(l), cron.SkipIfStillRunning(l)).
		Then(cron.FuncJob(func() { run(ctx, e) }))

	s.cron.Schedule(every(e.interval), job)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		job.Run()
	}()
}

func run(ctx context.Context, e entry) {
	if ctx.Err() != nil {
		return
	}

	started := time.Now()
	if err := e.task(ctx); err != nil && ctx.Err() == nil {
		logger.Error(ctx, "task failed", "error", err, "task.duration", time.Since(started))
		return
	}

	logger.Debug(ctx, "task finished", "task.duration", time.Since(started))
}
