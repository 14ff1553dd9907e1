// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rescache provides keyed caches for resources that are expensive
// to produce, with a single-flight guarantee: concurrent requests for the
// same key trigger at most one underlying production. [Cache] is for
// resources produced synchronously (e.g., decoded images); [AsyncCache]
// is for resources produced on worker goroutines (e.g., parsed scenes),
// with any number of waiters per key and per-waiter cancellation.
//
// Successful productions are cached for the lifetime of the cache;
// failures are never cached, so the next request for the same key
// retries. [Cache.Remove] and [AsyncCache.Remove] are the hook for
// callers that need invalidation or eviction on top of that.
package rescache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a keyed cache for synchronously produced resources.
// Production for different keys proceeds concurrently; concurrent
// first requests for the same key share one production.
// The zero value is ready to use.
type Cache[K comparable, V any] struct {
	mu     sync.RWMutex
	values map[K]V
	group  singleflight.Group
}

// Get returns the cached value for the given key, producing it with the
// given producer function if it is not yet cached. A producer error is
// returned to every caller sharing that production and is not cached:
// the next Get for the key invokes the producer again.
func (c *Cache[K, V]) Get(key K, producer func(key K) (V, error)) (V, error) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}
	res, err, _ := c.group.Do(fmt.Sprint(key), func() (any, error) {
		// re-check: another flight may have resolved between RUnlock and Do
		c.mu.RLock()
		v, ok := c.values[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}
		v, err := producer(key)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.values == nil {
			c.values = make(map[K]V)
		}
		c.values[key] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Lookup returns the cached value for the given key, without producing.
func (c *Cache[K, V]) Lookup(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// Remove removes the cached value for the given key, if any.
// In-flight productions are unaffected.
func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
}

// Len returns the number of resolved entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}
