// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package backend

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/miekg/dns"
)

// Record is one synthesized DNS answer: an A, NS, SOA, or SRV tuple in
// the PowerDNS remote-backend reply shape.
type Record struct {
	Qtype   string `json:"qtype"`
	Qname   string `json:"qname"`
	TTL     uint32 `json:"ttl"`
	Content string `json:"content"`
}

// ALookup resolves qname against registry and emits one A record per
// matched instance, content set to the instance's service-endpoint host.
func ALookup(ctx context.Context, registry Registry, domain, qname string, ttl uint32) ([]Record, error) {
	instances, err := Resolve(ctx, registry, domain, qname)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(instances))
	for _, inst := range instances {
		records = append(records, Record{
			Qtype:   "A",
			Qname:   qname,
			TTL:     ttl,
			Content: inst.ServiceEndpoint.Host,
		})
	}
	return records, nil
}

// NSLookup emits a single NS record naming soa.NS1 when qname is exactly
// the apex domain, case-insensitively and FQDN-normalized.
func NSLookup(domain, qname string, soa SOA, ttl uint32) []Record {
	if !strings.EqualFold(dns.Fqdn(qname), dns.Fqdn(domain)) {
		return nil
	}
	return []Record{{Qtype: "NS", Qname: qname, TTL: ttl, Content: soa.NS1}}
}

// SOALookup emits the configured SOA record whenever the dot-stripped,
// lowercased qname has domain as a plain string suffix (the apex itself
// included). This is a literal suffix test, not a label-aligned one: a
// domain of "ample.com" matches a qname of "example.com." exactly as
// Python's "qname.lower().strip('.').endswith(domain)" would.
func SOALookup(domain, qname string, soa SOA) []Record {
	if !strings.HasSuffix(strings.ToLower(strings.Trim(qname, ".")), domain) {
		return nil
	}
	return []Record{{Qtype: "SOA", Qname: domain, TTL: soa.TTL, Content: soa.String()}}
}

// SRVLookup handles SRV lookups of the form _service._proto.a-name. It
// requires _proto to be _tcp or _udp and emits one record per resolved
// instance that carries a shard and an additional_endpoints[service]
// entry; instances lacking either are skipped.
func SRVLookup(ctx context.Context, registry Registry, domain, qname string, ttl uint32) ([]Record, error) {
	parts := strings.SplitN(strings.ToLower(qname), ".", 3)
	if len(parts) != 3 {
		return nil, nil
	}
	service, proto, aName := parts[0], parts[1], parts[2]
	if !strings.HasPrefix(service, "_") || (proto != "_tcp" && proto != "_udp") {
		return nil, nil
	}
	serviceName := service[1:]

	instances, err := Resolve(ctx, registry, domain, aName)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, inst := range instances {
		if !inst.HasShard() {
			continue
		}
		endpoint, ok := inst.AdditionalEndpoints[serviceName]
		if !ok {
			continue
		}
		target := strconv.Itoa(*inst.Shard) + "." + aName
		records = append(records, Record{
			Qtype:   "SRV",
			Qname:   qname,
			TTL:     ttl,
			Content: fmt.Sprintf("0 0 %d %s", endpoint.Port, target),
		})
	}
	return records, nil
}
