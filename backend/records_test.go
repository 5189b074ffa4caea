// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package backend

import (
	"context"
	"testing"

	"github.com/benley/pdns-backend-zookeeper/msg"
)

func testSOA() SOA {
	return SOA{
		TTL:         300,
		NS1:         "ns1",
		Email:       "root.basedomain.example.com",
		Refresh:     1200,
		Retry:       180,
		Expire:      86400,
		NxdomainTTL: 60,
	}
}

func TestALookupSharded(t *testing.T) {
	reg := newFakeRegistry()
	reg.set("buz/bas/bar/foo/job",
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.1"}, Shard: intp(0)},
		msg.Instance{ServiceEndpoint: msg.Endpoint{Host: "10.0.0.2"}, Shard: intp(1)},
	)
	qname := "0.job.foo.bar.bas.buz." + testDomain + "."
	got, err := ALookup(context.Background(), reg, testDomain, qname, 60)
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{{Qtype: "A", Qname: qname, TTL: 60, Content: "10.0.0.1"}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("ALookup = %+v, want %+v", got, want)
	}
}

func TestNSLookupApexOnly(t *testing.T) {
	soa := testSOA()
	if got := NSLookup(testDomain, testDomain+".", soa, 60); len(got) != 1 || got[0].Content != "ns1" {
		t.Fatalf("NSLookup at apex = %+v", got)
	}
	if got := NSLookup(testDomain, "sub."+testDomain+".", soa, 60); got != nil {
		t.Fatalf("NSLookup below apex = %+v, want nil", got)
	}
}

func TestSOALookupSerialization(t *testing.T) {
	soa := testSOA()
	got := SOALookup(testDomain, testDomain+".", soa)
	if len(got) != 1 {
		t.Fatalf("SOALookup = %+v", got)
	}
	want := "ns1 root.basedomain.example.com 1200 1 180 86400 60"
	if got[0].Content != want {
		t.Errorf("SOA content = %q, want %q", got[0].Content, want)
	}
}

func TestSOALookupRequiresSuffix(t *testing.T) {
	if got := SOALookup(testDomain, "example.com.", testSOA()); got != nil {
		t.Fatalf("SOALookup off-domain = %+v, want nil", got)
	}
}

// TestSOALookupIsLiteralStringSuffix pins the suffix test to a plain
// string comparison, not a label-aligned one: "example.com." does end
// with "ample.com" as a string, even though the two don't share a DNS
// label boundary.
func TestSOALookupIsLiteralStringSuffix(t *testing.T) {
	got := SOALookup("ample.com", "example.com.", testSOA())
	if len(got) != 1 {
		t.Fatalf("SOALookup(%q, %q) = %+v, want one record", "ample.com", "example.com.", got)
	}
}

func TestSRVLookupRequiresShardAndEndpoint(t *testing.T) {
	reg := newFakeRegistry()
	reg.set("buz/bas/bar/foo/job",
		msg.Instance{
			ServiceEndpoint:     msg.Endpoint{Host: "10.0.0.1"},
			Shard:               intp(0),
			AdditionalEndpoints: map[string]msg.Endpoint{"http": {Host: "10.0.0.1", Port: 8080}},
		},
		msg.Instance{
			// no shard: must be skipped entirely
			ServiceEndpoint: msg.Endpoint{Host: "10.0.0.2"},
		},
		msg.Instance{
			// shard present but no "http" endpoint: must be skipped
			ServiceEndpoint: msg.Endpoint{Host: "10.0.0.3"},
			Shard:           intp(2),
		},
	)

	qname := "_http._tcp.job.foo.bar.bas.buz." + testDomain + "."
	got, err := SRVLookup(context.Background(), reg, testDomain, qname, 60)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("SRVLookup = %+v, want exactly one record", got)
	}
	want := Record{Qtype: "SRV", Qname: qname, TTL: 60, Content: "0 0 8080 0.job.foo.bar.bas.buz." + testDomain + "."}
	if got[0] != want {
		t.Errorf("SRVLookup = %+v, want %+v", got[0], want)
	}
}

func TestSRVLookupRejectsBadQname(t *testing.T) {
	reg := newFakeRegistry()
	for _, qname := range []string{
		"job.foo.bar.bas.buz." + testDomain + ".",             // no _service/_proto labels
		"_http._sctp.job.foo.bar.bas.buz." + testDomain + ".", // unsupported proto
		"http._tcp.job.foo.bar.bas.buz." + testDomain + ".",   // service missing leading _
	} {
		got, err := SRVLookup(context.Background(), reg, testDomain, qname, 60)
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("SRVLookup(%q) = %+v, want nil", qname, got)
		}
	}
}
