package channel

import "bchan/chansem"

// Direction is the operation a SelectEntry performs on its Channel.
type Direction int

const (
	// SendDir performs a send of Value.
	SendDir Direction = iota
	// RecvDir performs a receive, writing the result into *Result.
	RecvDir
)

// SelectEntry binds one (channel, direction, payload) triple for a
// single Select invocation. All entries in one call share the same
// payload type T.
type SelectEntry[T any] struct {
	Channel *Channel[T]
	Dir     Direction

	// Value is sent when Dir is SendDir. Ignored for RecvDir.
	Value T

	// Result receives the value on a successful RecvDir entry.
	// Ignored for SendDir. May be nil if the caller doesn't need the
	// value (e.g. a pure synchronization rendezvous).
	Result *T
}

// registerNotifier attempts to register n on c's select_waiters.
// Returns true if the channel was already closed (in which case n was
// not registered). index identifies this entry's position in the
// caller's Select call, for logging only.
func (c *Channel[T]) registerNotifier(n *chansem.Notifier, index int) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		if c.cfg.Logger != nil {
			c.cfg.Logger.Debug("select registration on closed channel %q, entry index %d", c.cfg.name, index)
		}
		return true
	}
	c.waiters.Insert(n)
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.SetSelectWaiters(c.waiters.Len())
	}
	c.mu.Unlock()
	return false
}

// unregisterNotifier removes n from c's select_waiters, if present.
func (c *Channel[T]) unregisterNotifier(n *chansem.Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waiters.Remove(n)
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.SetSelectWaiters(c.waiters.Len())
	}
}

// Select atomically registers a shared notifier on every entry's
// channel, then repeatedly attempts each entry's non-blocking
// operation in index order until one succeeds or terminally fails.
// It returns the index of the entry that completed and its status.
//
// Multiple entries simultaneously ready: the lowest index wins, by
// virtue of in-order polling (spec §4.4 tie-break).
//
// Registration on a channel already closed fails fast with Closed and
// that entry's index; any notifier already registered on
// earlier-indexed channels is removed before returning (spec §9 open
// question 3 — the source leaks these, this implementation does not).
func Select[T any](entries []SelectEntry[T]) (int, Status) {
	n := chansem.New()

	for i, e := range entries {
		if alreadyClosed := e.Channel.registerNotifier(n, i); alreadyClosed {
			for j := 0; j < i; j++ {
				entries[j].Channel.unregisterNotifier(n)
			}
			return i, Closed
		}
	}

	for {
		for i, e := range entries {
			var status Status
			switch e.Dir {
			case SendDir:
				status = e.Channel.NonBlockingSend(e.Value)
			case RecvDir:
				v, s := e.Channel.NonBlockingReceive()
				status = s
				if s == Success && e.Result != nil {
					*e.Result = v
				}
			}
			if isTerminal(status) {
				for _, other := range entries {
					other.Channel.unregisterNotifier(n)
				}
				return i, status
			}
		}
		n.Wait()
	}
}

// isTerminal reports whether status ends a Select call: Success and
// every error status are terminal, while Empty/Full mean "try the
// next entry, or sleep if none are ready".
func isTerminal(status Status) bool {
	switch status {
	case Success, Closed, DestroyErr, GenErr:
		return true
	default:
		return false
	}
}
