// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

// Package backend implements the name-resolution engine: turning a
// query name into candidate registry paths, resolving those candidates
// against a Registry, and synthesizing DNS answer records from whatever
// is found.
package backend

import (
	"strconv"
	"strings"
)

// Candidate is a registry path to probe, plus the shard discriminator
// extracted from the query name, if any.
type Candidate struct {
	Path  string
	Shard *int
}

// Candidates decomposes hostname into the ordered list of registry paths
// to probe, given the authoritative basedomain. The returned slice is
// finite and already fully materialized; callers consume it in order and
// stop at the first usable match.
//
// For example, "0.job.foo.bar.bas.buz.basedomain.example.com" under
// "basedomain.example.com" yields, in order, buz/bas/bar/foo/job,
// buz/bas/bar/job.foo, buz/bas/job.foo.bar, buz/job.foo.bar.bas,
// job.foo.bar.bas.buz (all shard 0).
func Candidates(hostname, basedomain string) []Candidate {
	qrec := strings.Trim(hostname, ".")
	if basedomain != "" && strings.HasSuffix(qrec, basedomain) {
		qrec = qrec[:len(qrec)-len(basedomain)]
	}
	qrec = strings.Trim(qrec, ".")
	if qrec == "" {
		return nil
	}

	labels := strings.Split(qrec, ".")
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[len(labels)-1-i] = l
	}

	var shard *int
	if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil && n >= 0 {
		shard = &n
		parts = parts[:len(parts)-1]
	}

	if len(parts) == 0 {
		return nil
	}

	var out []Candidate
	for {
		out = append(out, Candidate{Path: strings.Join(parts, "/"), Shard: shard})
		if len(parts) == 1 {
			return out
		}
		x := parts[len(parts)-1]
		parts = parts[:len(parts)-1]
		y := parts[len(parts)-1]
		parts = parts[:len(parts)-1]
		parts = append(parts, x+"."+y)
	}
}
