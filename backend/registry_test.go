// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/benley/pdns-backend-zookeeper/msg"
)

const testDomain = "basedomain.example.com"

func TestResolveShardedRoundTrip(t *testing.T) {
	reg := newFakeRegistry()
	reg.set("buz/bas/bar/foo/job",
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.1"}, Shard: intp(0)},
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.2"}, Shard: intp(1)},
	)

	got, err := Resolve(context.Background(), reg, testDomain, "0.job.foo.bar.bas.buz."+testDomain)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ServiceEndpoint.Host != "10.0.0.1" {
		t.Fatalf("Resolve = %+v, want single instance 10.0.0.1", got)
	}
}

func TestResolveUnshardedFallback(t *testing.T) {
	reg := newFakeRegistry()
	reg.set("buz/bas/bar/foo/job",
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.1"}, Shard: intp(0)},
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.2"}, Shard: intp(1)},
	)

	got, err := Resolve(context.Background(), reg, testDomain, "job.foo.bar.bas.buz."+testDomain)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Resolve = %+v, want both instances", got)
	}
}

func TestResolveRejectsShardMissThenContinues(t *testing.T) {
	reg := newFakeRegistry()
	// The first (deepest) candidate path has instances, but none carrying the requested shard.
	reg.set("buz/bas/bar/foo/job",
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.9"}, Shard: intp(9)},
	)
	// The next candidate in the walk carries the requested shard and should win.
	reg.set("buz/bas/bar/job.foo",
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.1"}, Shard: intp(0)},
	)

	got, err := Resolve(context.Background(), reg, testDomain, "0.job.foo.bar.bas.buz."+testDomain)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ServiceEndpoint.Host != "10.0.0.1" {
		t.Fatalf("Resolve = %+v, want fallback candidate", got)
	}
}

func TestResolveNotFound(t *testing.T) {
	reg := newFakeRegistry()
	got, err := Resolve(context.Background(), reg, testDomain, "nope.nothing."+testDomain)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("Resolve = %+v, want empty", got)
	}
}

func TestResolvePropagatesTransportError(t *testing.T) {
	wantErr := errors.New("zk: session expired")
	_, err := Resolve(context.Background(), erroringRegistry{err: wantErr}, testDomain, "job.foo."+testDomain)
	if err != wantErr {
		t.Fatalf("Resolve err = %v, want %v", err, wantErr)
	}
}
