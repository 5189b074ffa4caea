// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package backend

import (
	"context"

	"github.com/benley/pdns-backend-zookeeper/msg"
)

// fakeRegistry is an in-memory Registry used by backend tests.
type fakeRegistry struct {
	paths map[string][]msg.Instance
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{paths: map[string][]msg.Instance{}}
}

func (f *fakeRegistry) set(path string, instances ...msg.Instance) {
	f.paths[path] = instances
}

func (f *fakeRegistry) List(ctx context.Context, path string) ([]msg.Instance, error) {
	return f.paths[path], nil
}

type erroringRegistry struct{ err error }

func (e erroringRegistry) List(ctx context.Context, path string) ([]msg.Instance, error) {
	return nil, e.err
}
