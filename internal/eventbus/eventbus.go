// Package eventbus provides a small in-process publish/subscribe hub for
// worktree lifecycle events, so the CLI's `events`/`watch` commands can
// observe what create/clean/delete operations do without those operations
// needing to know who, if anyone, is listening.
package eventbus

import (
	"sync"
)

// Kind identifies an event type on the bus. Consumers switch on Kind rather
// than inspecting Payload's dynamic type.
type Kind string

const (
	KindWorktreeCreated  Kind = "worktree.created"
	KindWorktreeRemoved  Kind = "worktree.removed"
	KindBranchClassified Kind = "branch.classified"
	KindDetectionIssue   Kind = "detection.issue"
	KindHookRun          Kind = "hook.run"
)

// Event is one published occurrence. Payload carries kind-specific data
// (e.g. worktree.Info, orphan.Branch, detect.Issue) as an interface{}
// since the bus doesn't know or care about callers' concrete types.
type Event struct {
	Kind    Kind
	Payload any
}

// Bus is a fan-out publisher: every Subscribe call gets its own channel and
// every Publish delivers to all of them. Safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

// New returns an empty, ready-to-use Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a new listener and returns its event channel plus an
// unsubscribe function. buffer sets the channel's capacity; a slow consumer
// with a full channel has its events dropped rather than blocking Publish.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 0 {
		buffer = 0
	}
	b.mu.Lock()
	id := b.next
	b.next++
	ch := make(chan Event, buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
		b.mu.Unlock()
	}
	return ch, unsubscribe
}

// Publish delivers ev to every current subscriber. Delivery is
// non-blocking: a subscriber whose buffer is full misses the event instead
// of stalling the publisher, since a batch clean/watch producer must never
// be slowed down by a lagging consumer.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports how many listeners are currently registered.
// Used by callers deciding whether it's worth computing an event payload.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
