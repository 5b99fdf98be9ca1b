package workerpool

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bchan/log"
)

func TestSubmitRunsTask(t *testing.T) {
	p := New(4, 8)
	defer p.Stop()

	var ran int32
	done := make(chan struct{})
	status := p.Submit(NewTask(func(data interface{}) error {
		atomic.StoreInt32(&ran, 1)
		close(done)
		return nil
	}, nil))
	if status != 0 {
		t.Fatalf("Submit: want Success, got %v", status)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
	if atomic.LoadInt32(&ran) != 1 {
		t.Fatal("task body did not execute")
	}
}

func TestPriorityQueuePreferred(t *testing.T) {
	p := New(1, 8)
	defer p.Stop()

	var order []string
	var mu sync.Mutex
	record := func(name string) func(interface{}) error {
		return func(interface{}) error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return nil
		}
	}

	// Block the single worker on a normal task first so both queues
	// fill before it looks again.
	blocker := make(chan struct{})
	p.Submit(NewTask(func(interface{}) error {
		<-blocker
		return nil
	}, nil))
	p.Submit(NewTask(record("normal"), nil))
	p.SubmitPriority(NewTask(record("priority"), nil))
	close(blocker)

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "priority" {
		t.Fatalf("want priority task drained first, got %v", order)
	}
}

func TestTaskRetryOnFailure(t *testing.T) {
	p := New(1, 8)
	defer p.Stop()

	var attempts int32
	done := make(chan struct{})
	task := NewTask(func(interface{}) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return errors.New("not yet")
		}
		close(done)
		return nil
	}, nil)
	task.NeedRetry = true
	task.RetryLimit = 5

	p.Submit(task)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was not retried to success")
	}
	if atomic.LoadInt32(&attempts) != 3 {
		t.Fatalf("want 3 attempts, got %d", attempts)
	}
}

func TestWorkerSurvivesPanic(t *testing.T) {
	var caught int32
	p := New(1, 8, WithPanicHandler(func(tsk *Task, r interface{}) {
		atomic.StoreInt32(&caught, 1)
	}))
	defer p.Stop()

	p.Submit(NewTask(func(interface{}) error {
		panic("boom")
	}, nil))

	var ran int32
	done := make(chan struct{})
	p.Submit(NewTask(func(interface{}) error {
		atomic.StoreInt32(&ran, 1)
		close(done)
		return nil
	}, nil))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not recover from panic and continue processing")
	}
	if atomic.LoadInt32(&ran) != 1 {
		t.Fatal("second task did not run after panic")
	}
	if atomic.LoadInt32(&caught) != 1 {
		t.Fatal("panic handler was not invoked")
	}
}

func TestWithLoggerLogsTaskDispatch(t *testing.T) {
	l := log.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	p := New(1, 4, WithLogger(l))
	defer p.Stop()

	done := make(chan struct{})
	p.Submit(NewTask(func(interface{}) error {
		close(done)
		return nil
	}, nil))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
	if !strings.Contains(buf.String(), "running task") {
		t.Fatalf("want a task-dispatch debug line, got %q", buf.String())
	}
}

func TestWithLoggerLogsStopOnStop(t *testing.T) {
	l := log.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	p := New(1, 4, WithLogger(l))
	p.Stop()

	if !strings.Contains(buf.String(), "stopping") {
		t.Fatalf("want a worker-stopping debug line, got %q", buf.String())
	}
}

func TestStopAfterAllWorkCompletes(t *testing.T) {
	p := New(4, 8)
	var completed int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		p.Submit(NewTask(func(interface{}) error {
			defer wg.Done()
			atomic.AddInt32(&completed, 1)
			return nil
		}, nil))
	}
	wg.Wait()
	p.Stop()
	if atomic.LoadInt32(&completed) != 10 {
		t.Fatalf("want 10 completed tasks, got %d", completed)
	}
}
