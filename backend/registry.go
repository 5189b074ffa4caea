// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package backend

import (
	"context"

	"github.com/benley/pdns-backend-zookeeper/msg"
)

// Registry is the capability the core depends on: a watch-driven,
// internally synchronized view of the hierarchical instance store. A
// missing path is not an error, it is an empty instance set.
type Registry interface {
	// List returns the current set of instances registered at path.
	// Missing path returns a nil/empty slice and a nil error.
	List(ctx context.Context, path string) ([]msg.Instance, error)
}

// Resolve walks Candidates(qname, domain) against registry, returning the
// first non-empty (and, where a shard was specified, shard-matching)
// instance set. It returns an empty slice, not an error, when every
// candidate is exhausted; registry transport errors propagate.
func Resolve(ctx context.Context, registry Registry, domain, qname string) ([]msg.Instance, error) {
	for _, c := range Candidates(qname, domain) {
		instances, err := registry.List(ctx, c.Path)
		if err != nil {
			return nil, err
		}
		if len(instances) == 0 {
			continue
		}
		if c.Shard == nil {
			return instances, nil
		}
		var matched []msg.Instance
		for _, inst := range instances {
			if inst.HasShard() && *inst.Shard == *c.Shard {
				matched = append(matched, inst)
			}
		}
		if len(matched) == 0 {
			continue
		}
		return matched, nil
	}
	return nil, nil
}
