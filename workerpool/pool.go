// Package workerpool is a supplemental feature built purely as a
// client of package channel: a fixed-size pool of goroutines draining
// two channel.Channel[*Task] queues (priority and normal) via
// channel.Select, with panic recovery and bounded retry on task
// failure — adapted from the donor's gopool/pool.go (worker-count
// bookkeeping, panic handler) and task/worker.go, task/task.go
// (retry-on-error, bucketed workers), but driven by this module's own
// MPMC channel rather than a native Go channel or an intrusive
// mutex-guarded queue.
package workerpool

import (
	"fmt"
	"runtime/debug"
	"sync"

	"bchan/channel"
	"bchan/log"
)

// Pool runs a fixed number of worker goroutines, each blocked in
// channel.Select across the pool's priority and normal work queues.
type Pool struct {
	priority *channel.Channel[*Task]
	work     *channel.Channel[*Task]

	wg           sync.WaitGroup
	logger       log.Logger
	panicHandler func(*Task, interface{})
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithLogger attaches a logger for task lifecycle diagnostics.
func WithLogger(l log.Logger) Option {
	return func(p *Pool) { p.logger = l }
}

// WithPanicHandler installs a handler invoked when a task's F panics,
// after the worker has recovered and before the worker resumes
// draining its queues.
func WithPanicHandler(f func(*Task, interface{})) Option {
	return func(p *Pool) { p.panicHandler = f }
}

// New starts a Pool with the given number of worker goroutines and
// per-queue buffer capacity, and returns it ready to accept Submit
// calls.
func New(workers, capacity int, opts ...Option) *Pool {
	p := &Pool{
		priority: channel.New[*Task](capacity),
		work:     channel.New[*Task](capacity),
	}
	for _, opt := range opts {
		opt(p)
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	return p
}

// Submit enqueues t on the normal-priority queue, blocking if it is
// full. Returns the channel.Status of the underlying Send (Closed if
// the Pool has already been stopped).
func (p *Pool) Submit(t *Task) channel.Status {
	return p.work.Send(t)
}

// SubmitPriority enqueues t on the priority queue, drained ahead of
// the normal queue whenever both have work ready.
func (p *Pool) SubmitPriority(t *Task) channel.Status {
	t.Priority = true
	return p.priority.Send(t)
}

// Stop closes both queues. Workers finish the task they are currently
// running, observe Closed on their next Select, and exit; any task
// still buffered in either queue is discarded, matching the
// discard-on-close semantics of channel.Channel.Receive. Stop blocks
// until every worker has exited.
func (p *Pool) Stop() {
	p.priority.Close()
	p.work.Close()
	p.wg.Wait()
}

func (p *Pool) runWorker(index int) {
	defer p.wg.Done()
	for {
		var t *Task
		idx, status := channel.Select([]channel.SelectEntry[*Task]{
			{Channel: p.priority, Dir: channel.RecvDir, Result: &t},
			{Channel: p.work, Dir: channel.RecvDir, Result: &t},
		})
		if status != channel.Success {
			if p.logger != nil {
				p.logger.Debug("worker %d stopping: select status %v", index, status)
			}
			return
		}
		if p.logger != nil {
			p.logger.Debug("worker %d running task %s from queue %d", index, t.ID, idx)
		}
		p.runTask(index, t)
	}
}

func (p *Pool) runTask(index int, t *Task) {
	defer func() {
		if r := recover(); r != nil {
			if p.logger != nil {
				p.logger.Error("worker %d task %s panicked: %v\n%s", index, t.ID, r, debug.Stack())
			}
			if p.panicHandler != nil {
				p.panicHandler(t, r)
			}
		}
	}()
	err := t.F(t.Data)
	if err == nil {
		return
	}
	if !t.NeedRetry || t.RetryTimes >= t.RetryLimit {
		if p.logger != nil {
			p.logger.Warn("worker %d task %s failed permanently: %v", index, t.ID, err)
		}
		return
	}
	t.RetryTimes++
	var status channel.Status
	if t.Priority {
		status = p.priority.Send(t)
	} else {
		status = p.work.Send(t)
	}
	if status != channel.Success && p.logger != nil {
		p.logger.Warn("worker %d could not requeue task %s for retry: %v", index, t.ID, status)
	}
}

// String returns a human-readable summary, primarily useful in tests
// and log lines.
func (p *Pool) String() string {
	return fmt.Sprintf("workerpool(priority_len=%d work_len=%d)", p.priority.Len(), p.work.Len())
}
