// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package zk

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/benley/pdns-backend-zookeeper/msg"
	zkgo "github.com/samuel/go-zookeeper/zk"
)

// Client is the registry client consumed by backend.Registry: an
// ensemble connection plus the watch-driven path cache (comma-separated
// server list, a long-lived connection shared by every List call, session
// lifecycle on Start/Close).
type Client struct {
	servers []string
	chroot  string
	timeout time.Duration

	conn  *zkgo.Conn
	cache *Cache
}

// ParseEnsemble splits a "host1:2181,host2:2181/chroot/path" ensemble
// string into its server list and chroot, mirroring the chroot-suffix
// syntax original_source/pdns_zkns.py inherits from
// kazoo_client.TwitterKazooClient.
func ParseEnsemble(ensemble string) (servers []string, chroot string) {
	hosts := ensemble
	if idx := strings.Index(ensemble, "/"); idx >= 0 {
		hosts = ensemble[:idx]
		chroot = strings.TrimRight(ensemble[idx:], "/")
	}
	for _, h := range strings.Split(hosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			servers = append(servers, h)
		}
	}
	return servers, chroot
}

// NewClient builds a Client for the given ensemble string. cacheSize
// bounds the number of distinct registry paths kept in the watch-driven
// cache; 0 disables caching entirely.
func NewClient(ensemble string, cacheSize int) *Client {
	servers, chroot := ParseEnsemble(ensemble)
	return &Client{
		servers: servers,
		chroot:  chroot,
		timeout: 15 * time.Second,
		cache:   NewCache(cacheSize),
	}
}

// Start connects to the ensemble. It must be called before List. It does
// not wait for a TCP session or for SyncConnected: zkgo.Connect dials in
// the background, so Start returns an error only when the ensemble string
// yields no usable server list.
func (c *Client) Start(ctx context.Context) error {
	conn, events, err := zkgo.Connect(c.servers, c.timeout)
	if err != nil {
		return fmt.Errorf("zk: connecting to %v: %w", c.servers, err)
	}
	c.conn = conn
	go c.drainSessionEvents(events)
	return nil
}

// drainSessionEvents exists only so the session-event channel doesn't
// block the zk library internals; this package does not otherwise act
// on session state changes.
func (c *Client) drainSessionEvents(events <-chan zkgo.Event) {
	for range events {
	}
}

// Close releases the ensemble session. Safe to call on every exit path,
// including ones where Start never ran.
func (c *Client) Close() error {
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

// List implements backend.Registry: it returns the ServerSet instances
// registered under path (rooted at the configured chroot), decoding each
// child znode and skipping any that fail to parse. A missing parent path
// is an empty set, not an error.
func (c *Client) List(ctx context.Context, relPath string) ([]msg.Instance, error) {
	full := path.Join("/", c.chroot, relPath)

	if cached, ok := c.cache.Get(full); ok {
		return cached, nil
	}

	children, _, watch, err := c.conn.ChildrenW(full)
	if err == zkgo.ErrNoNode {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("zk: listing %s: %w", full, err)
	}

	instances := make([]msg.Instance, 0, len(children))
	for _, child := range children {
		data, _, err := c.conn.Get(path.Join(full, child))
		if err == zkgo.ErrNoNode {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("zk: reading %s/%s: %w", full, child, err)
		}
		inst, err := DecodeInstance(data)
		if err != nil {
			continue
		}
		instances = append(instances, inst)
	}

	c.cache.Put(full, instances)
	go c.invalidateOnWatch(full, watch)
	return instances, nil
}

// Stats exposes the watch-driven cache's hit/miss/size counters,
// satisfying server.CacheStatter.
func (c *Client) Stats() (hits, misses int64, size int) {
	return c.cache.Stats()
}

func (c *Client) invalidateOnWatch(path string, watch <-chan zkgo.Event) {
	<-watch
	c.cache.Invalidate(path)
}
