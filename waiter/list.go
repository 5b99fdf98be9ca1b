// Package waiter holds the select_waiters collection attached to each
// channel: an unordered set of *chansem.Notifier handles, registered
// and removed by identity as select invocations come and go.
//
// It is a doubly linked list rather than a slice because Remove is
// keyed by handle identity and select registration/unregistration is
// frequent relative to iteration; a slice would need a linear scan on
// every removal too, with the added cost of shifting elements.
package waiter

import "bchan/chansem"

type node struct {
	handle *chansem.Notifier
	prev   *node
	next   *node
}

// List is an unordered collection of notifier handles. The zero value
// is a valid, empty List.
type List struct {
	head  *node
	tail  *node
	count int
}

// Insert adds handle to the list. Duplicate handles are permitted: the
// same notifier may register on several distinct channels, each with
// its own List.
func (l *List) Insert(handle *chansem.Notifier) {
	n := &node{handle: handle}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.count++
}

// Remove deletes the first node holding handle, by identity. A no-op
// if handle is not present.
func (l *List) Remove(handle *chansem.Notifier) {
	for n := l.head; n != nil; n = n.next {
		if n.handle == handle {
			l.removeNode(n)
			return
		}
	}
}

func (l *List) removeNode(n *node) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.count--
}

// ForEach applies f to every handle currently in the list, in
// insertion order. f must not mutate the list.
func (l *List) ForEach(f func(*chansem.Notifier)) {
	for n := l.head; n != nil; n = n.next {
		f(n.handle)
	}
}

// Len returns the true number of handles currently registered.
func (l *List) Len() int {
	return l.count
}
