// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rescache

import (
	"context"
	"sync"
)

// AsyncCache is a keyed cache for resources produced asynchronously on
// worker goroutines. For a given key, at most one producer invocation is
// ever started; all concurrent and later requesters observe the same
// eventual result. Any number of waiters may await the same entry, and
// each waiter can be canceled independently without affecting the others
// or the underlying production. The zero value is ready to use.
type AsyncCache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*Entry[V]
}

// Entry is a pending or resolved production in an [AsyncCache].
type Entry[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Done returns a channel that is closed when the production completes,
// for use in select statements. Use [Entry.Result] after it is closed.
func (e *Entry[V]) Done() <-chan struct{} {
	return e.done
}

// Result returns the production result. It must only be called after
// the [Entry.Done] channel is closed.
func (e *Entry[V]) Result() (V, error) {
	return e.value, e.err
}

// Await blocks until the production completes or the given context is
// done, whichever comes first. Canceling the context abandons only this
// wait: the production itself and any other waiters are unaffected.
func (e *Entry[V]) Await(ctx context.Context) (V, error) {
	select {
	case <-e.done:
		return e.value, e.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Start returns the entry for the given key, starting production on a
// new goroutine if the key has no resolved or in-flight entry yet.
// The producer runs with a background context: there is no way to cancel
// a production once started, only to stop waiting for it.
// If production fails, the entry is removed from the cache before the
// error is delivered, so a later Start for the key produces again.
func (c *AsyncCache[K, V]) Start(key K, producer func(ctx context.Context, key K) (V, error)) *Entry[V] {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return e
	}
	e := &Entry[V]{done: make(chan struct{})}
	if c.entries == nil {
		c.entries = make(map[K]*Entry[V])
	}
	c.entries[key] = e
	c.mu.Unlock()

	go func() {
		v, err := producer(context.Background(), key)
		if err != nil {
			c.mu.Lock()
			if c.entries[key] == e {
				delete(c.entries, key)
			}
			c.mu.Unlock()
			e.err = err
		} else {
			e.value = v
		}
		close(e.done)
	}()
	return e
}

// Get returns the value for the given key, producing it if necessary,
// blocking until the shared production resolves or ctx is done.
// Equivalent to Start followed by [Entry.Await].
func (c *AsyncCache[K, V]) Get(ctx context.Context, key K, producer func(ctx context.Context, key K) (V, error)) (V, error) {
	return c.Start(key, producer).Await(ctx)
}

// Lookup returns the entry for the given key, which may be pending or
// resolved, without starting a production.
func (c *AsyncCache[K, V]) Lookup(key K) (*Entry[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e, ok
}

// Remove removes the entry for the given key, if any. Waiters already
// attached to a pending entry still receive its result; new requests
// for the key start a fresh production.
func (c *AsyncCache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of resolved or in-flight entries in the cache.
func (c *AsyncCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
