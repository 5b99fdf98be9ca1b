// Package channel implements a bounded, typed, multi-producer
// multi-consumer channel with blocking, non-blocking, and multi-channel
// select operations, modeled on CSP-style message passing.
//
// A Channel serializes all access through a single mutex guarding its
// ring buffer, its closed flag, and its list of registered select
// notifiers (waiter.List of *chansem.Notifier). Blocked senders and
// receivers wait on one of two condition variables; blocked select
// invocations sleep on their own chansem.Notifier, posted by every
// channel they are registered on whenever that channel makes progress
// or closes. See Select for the multi-channel coordinator.
package channel

import (
	"sync"

	"bchan/chansem"
	"bchan/ring"
	"bchan/waiter"
)

// Channel is a bounded FIFO of T, safe for concurrent use by any
// number of senders, receivers, and select participants.
type Channel[T any] struct {
	mu   sync.Mutex
	send *sync.Cond // signaled after a successful dequeue; wakes senders
	recv *sync.Cond // signaled after a successful enqueue; wakes receivers

	buffer *ring.Buffer[T]
	closed bool

	waiters waiter.List

	cfg *Config
}

// New creates an open Channel with the given capacity. Capacity 0 is
// permitted and denotes a buffered channel of size 0: Send always
// observes it full, Receive always observes it empty (no rendezvous
// variant is provided).
func New[T any](capacity int, opts ...Option) *Channel[T] {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	c := &Channel[T]{
		buffer: ring.New[T](capacity),
		cfg:    cfg,
	}
	c.send = sync.NewCond(&c.mu)
	c.recv = sync.NewCond(&c.mu)
	return c
}

// postWaiters notifies every select invocation currently registered
// on this channel. Must be called with mu held.
func (c *Channel[T]) postWaiters() {
	c.waiters.ForEach(func(n *chansem.Notifier) { n.Post() })
}

func (c *Channel[T]) recordOp(op string, status Status) {
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.IncOp(op, status.String())
	}
}

// Send blocks until v has been enqueued or the channel closes.
// Ownership of v is considered transferred to the channel on Success:
// the caller should not continue to mutate a v that holds shared state.
func (c *Channel[T]) Send(v T) Status {
	c.mu.Lock()
	for {
		if c.closed {
			c.mu.Unlock()
			c.recordOp("send", Closed)
			return Closed
		}
		if err := c.buffer.Add(v); err == nil {
			c.recv.Signal()
			c.postWaiters()
			c.reportBufferLocked()
			c.mu.Unlock()
			c.recordOp("send", Success)
			return Success
		}
		c.send.Wait()
	}
}

// Receive blocks until a value is available or the channel closes.
//
// Receive on a closed channel returns Closed even if the buffer still
// holds values — buffered data is discarded rather than drained. This
// preserves the channel.c source's behavior (spec open question 2)
// rather than the more common drain-then-close semantics.
func (c *Channel[T]) Receive() (T, Status) {
	c.mu.Lock()
	for {
		if c.closed {
			c.mu.Unlock()
			c.recordOp("receive", Closed)
			var zero T
			return zero, Closed
		}
		v, err := c.buffer.Remove()
		if err == nil {
			c.send.Signal()
			c.postWaiters()
			c.reportBufferLocked()
			c.mu.Unlock()
			c.recordOp("receive", Success)
			return v, Success
		}
		c.recv.Wait()
	}
}

// NonBlockingSend attempts to enqueue v without waiting. Returns Full
// if the buffer has no room, Closed if the channel is closed.
func (c *Channel[T]) NonBlockingSend(v T) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.recordOp("non_blocking_send", Closed)
		return Closed
	}
	if err := c.buffer.Add(v); err != nil {
		c.recordOp("non_blocking_send", Full)
		return Full
	}
	c.recv.Signal()
	c.postWaiters()
	c.reportBufferLocked()
	c.recordOp("non_blocking_send", Success)
	return Success
}

// NonBlockingReceive attempts to dequeue a value without waiting.
// Returns Empty if the buffer has nothing, Closed if the channel is
// closed (even if the buffer is non-empty, per Receive's doc comment).
func (c *Channel[T]) NonBlockingReceive() (T, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.recordOp("non_blocking_receive", Closed)
		var zero T
		return zero, Closed
	}
	v, err := c.buffer.Remove()
	if err != nil {
		c.recordOp("non_blocking_receive", Empty)
		var zero T
		return zero, Empty
	}
	c.send.Signal()
	c.postWaiters()
	c.reportBufferLocked()
	c.recordOp("non_blocking_receive", Success)
	return v, Success
}

// Close transitions the channel to closed exactly once. Every blocked
// Send, Receive, and Select registered on this channel wakes and
// observes Closed. Calling Close again returns Closed.
func (c *Channel[T]) Close() Status {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.recordOp("close", Closed)
		return Closed
	}
	c.closed = true
	c.send.Broadcast()
	c.recv.Broadcast()
	c.postWaiters()
	c.mu.Unlock()
	if c.cfg.Logger != nil {
		c.cfg.Logger.Info("channel %q closed", c.cfg.name)
	}
	c.recordOp("close", Success)
	return Success
}

// Destroy releases the channel's resources. The caller must have
// already closed the channel and ensured no other goroutine is
// operating on it; calling Destroy on an open channel is a caller
// error and is refused rather than risking cleanup mid-use.
func (c *Channel[T]) Destroy() Status {
	c.mu.Lock()
	if !c.closed {
		c.mu.Unlock()
		if c.cfg.Logger != nil {
			c.cfg.Logger.Warn("destroy called on open channel %q", c.cfg.name)
		}
		c.recordOp("destroy", DestroyErr)
		return DestroyErr
	}
	c.buffer = ring.New[T](0)
	c.mu.Unlock()
	c.recordOp("destroy", Success)
	return Success
}

// reportBufferLocked pushes the current occupancy to the attached
// metrics.Recorder, if any. Must be called with mu held.
func (c *Channel[T]) reportBufferLocked() {
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.SetBufferLen(c.buffer.Len())
	}
}

// Len returns the number of values currently buffered.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Len()
}

// Cap returns the channel's fixed capacity.
func (c *Channel[T]) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Cap()
}
