// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package zk

import "testing"

func TestParseEnsemble(t *testing.T) {
	tests := []struct {
		ensemble    string
		wantServers []string
		wantChroot  string
	}{
		{"localhost:2181/", []string{"localhost:2181"}, ""},
		{"localhost:2181", []string{"localhost:2181"}, ""},
		{"a:2181,b:2181/skydns", []string{"a:2181", "b:2181"}, "/skydns"},
		{"a:2181,b:2181/skydns/", []string{"a:2181", "b:2181"}, "/skydns"},
	}
	for _, tc := range tests {
		servers, chroot := ParseEnsemble(tc.ensemble)
		if len(servers) != len(tc.wantServers) {
			t.Fatalf("ParseEnsemble(%q) servers = %v, want %v", tc.ensemble, servers, tc.wantServers)
		}
		for i := range servers {
			if servers[i] != tc.wantServers[i] {
				t.Errorf("ParseEnsemble(%q) servers[%d] = %q, want %q", tc.ensemble, i, servers[i], tc.wantServers[i])
			}
		}
		if chroot != tc.wantChroot {
			t.Errorf("ParseEnsemble(%q) chroot = %q, want %q", tc.ensemble, chroot, tc.wantChroot)
		}
	}
}

func TestDecodeInstance(t *testing.T) {
	data := []byte(`{"service_endpoint":{"host":"10.0.0.1","port":8080},"additional_endpoints":{"http":{"host":"10.0.0.1","port":8080}},"shard":3}`)
	inst, err := DecodeInstance(data)
	if err != nil {
		t.Fatal(err)
	}
	if inst.ServiceEndpoint.Host != "10.0.0.1" || inst.ServiceEndpoint.Port != 8080 {
		t.Fatalf("ServiceEndpoint = %+v", inst.ServiceEndpoint)
	}
	if !inst.HasShard() || *inst.Shard != 3 {
		t.Fatalf("Shard = %v, want 3", inst.Shard)
	}
	if ep := inst.AdditionalEndpoints["http"]; ep.Port != 8080 {
		t.Fatalf("AdditionalEndpoints[http] = %+v", ep)
	}
}

func TestDecodeInstanceNoShard(t *testing.T) {
	inst, err := DecodeInstance([]byte(`{"service_endpoint":{"host":"10.0.0.1","port":80}}`))
	if err != nil {
		t.Fatal(err)
	}
	if inst.HasShard() {
		t.Fatalf("HasShard() = true, want false for absent shard")
	}
}

func TestDecodeInstanceMalformed(t *testing.T) {
	if _, err := DecodeInstance([]byte(`not json`)); err == nil {
		t.Fatal("want error for malformed znode payload")
	}
}
