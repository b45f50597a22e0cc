// Package store holds the stateful storefront stores: cart, auth session,
// banners, and language. Each store owns its state behind a mutex, persists
// a JSON snapshot to storage on every mutation, rehydrates from the snapshot
// at construction, and notifies subscribers after each change.
package store

import "sync"

// notifier implements the update/subscribe contract shared by the stores.
// Callbacks run synchronously after a mutation, outside the store lock.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// subscribe registers fn and returns an unsubscribe func.
func (n *notifier) subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
