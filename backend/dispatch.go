// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package backend

import (
	"context"
	"strings"
)

// Dispatch routes a (qname, qtype) query to the right synthesizer. ANY
// concatenates A, NS, SOA, then SRV output, in that order. An unknown
// qtype returns a nil, nil "no answer" — not an error.
func Dispatch(ctx context.Context, registry Registry, domain string, soa SOA, ttl uint32, qname, qtype string) ([]Record, error) {
	switch strings.ToUpper(qtype) {
	case "A":
		return ALookup(ctx, registry, domain, qname, ttl)
	case "NS":
		return NSLookup(domain, qname, soa, ttl), nil
	case "SOA":
		return SOALookup(domain, qname, soa), nil
	case "SRV":
		return SRVLookup(ctx, registry, domain, qname, ttl)
	case "ANY":
		var records []Record
		a, err := ALookup(ctx, registry, domain, qname, ttl)
		if err != nil {
			return nil, err
		}
		records = append(records, a...)
		records = append(records, NSLookup(domain, qname, soa, ttl)...)
		records = append(records, SOALookup(domain, qname, soa)...)
		srv, err := SRVLookup(ctx, registry, domain, qname, ttl)
		if err != nil {
			return nil, err
		}
		records = append(records, srv...)
		return records, nil
	default:
		return nil, nil
	}
}
