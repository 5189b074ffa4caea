// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package zk

// The registry client's watch-driven, internally synchronized view of the
// ZooKeeper tree. This is deliberately not a response cache: instance
// sets are evicted by ZooKeeper watch events, never by TTL.

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/benley/pdns-backend-zookeeper/msg"
)

type cacheElem struct {
	path      string
	instances []msg.Instance
}

// Cache is an LRU of the most recently resolved paths, bounded by node
// count rather than byte size.
type Cache struct {
	sync.Mutex
	l        *list.List
	m        map[string]*list.Element
	capacity uint
	size     uint

	hits   int64
	misses int64
}

// NewCache returns an empty cache holding up to capacity paths.
func NewCache(capacity int) *Cache {
	c := new(Cache)
	c.l = list.New()
	c.m = make(map[string]*list.Element)
	c.capacity = uint(capacity)
	return c
}

// Get returns the cached instance set for path, if present.
func (c *Cache) Get(path string) ([]msg.Instance, bool) {
	if c.capacity == 0 {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	c.Lock()
	defer c.Unlock()
	e, ok := c.m[path]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	c.l.MoveToFront(e)
	return e.Value.(*cacheElem).instances, true
}

// Stats returns the cumulative hit/miss counts and the current number of
// cached paths.
func (c *Cache) Stats() (hits, misses int64, size int) {
	c.Lock()
	defer c.Unlock()
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses), int(c.size)
}

// Put stores the instance set last observed for path.
func (c *Cache) Put(path string, instances []msg.Instance) {
	if c.capacity == 0 {
		return
	}
	c.Lock()
	defer c.Unlock()
	if e, ok := c.m[path]; ok {
		e.Value.(*cacheElem).instances = instances
		c.l.MoveToFront(e)
		return
	}
	e := c.l.PushFront(&cacheElem{path: path, instances: instances})
	c.m[path] = e
	c.size++
	c.shrink()
}

// Invalidate drops path from the cache. Called when a ZooKeeper watch
// fires for that path, forcing the next List to re-read from the
// ensemble.
func (c *Cache) Invalidate(path string) {
	c.Lock()
	defer c.Unlock()
	e, ok := c.m[path]
	if !ok {
		return
	}
	c.l.Remove(e)
	delete(c.m, path)
	c.size--
}

func (c *Cache) shrink() {
	for c.size > c.capacity {
		e := c.l.Back()
		if e == nil {
			break
		}
		c.l.Remove(e)
		delete(c.m, e.Value.(*cacheElem).path)
		c.size--
	}
}
