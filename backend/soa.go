// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package backend

import "fmt"

// SOA holds the immutable SOA record fields configured at startup. The
// serial field is deliberately not part of this struct: it is hardcoded
// to 1 in String, relying on PowerDNS's SOA-EDIT=EPOCH to substitute the
// real serial on the way out.
type SOA struct {
	TTL         uint32
	NS1         string
	Email       string
	Refresh     uint32
	Retry       uint32
	Expire      uint32
	NxdomainTTL uint32
}

// String renders the SOA content field: "ns1 email refresh 1 retry expire
// nxdomain_ttl".
func (s SOA) String() string {
	return fmt.Sprintf("%s %s %d 1 %d %d %d",
		s.NS1, s.Email, s.Refresh, s.Retry, s.Expire, s.NxdomainTTL)
}
