// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is the metric interface used by this package.
type Counter interface {
	Inc(i int64)
}

// StatsLookupCount and StatsNoDataCount are wired to real Prometheus
// counters in metrics.go's init. They're declared here as package vars,
// rather than called directly as prometheus.Counter, so handler code
// doesn't need to import prometheus itself.
var (
	StatsLookupCount Counter
	StatsNoDataCount Counter
)

// CacheStatter is satisfied by zk.Cache. Declared here, rather than
// imported from zk, so this package doesn't need to know about ZooKeeper
// to expose cache occupancy as a gauge.
type CacheStatter interface {
	Stats() (hits, misses int64, size int)
}

// registerCacheStats wires a CacheStatter's counters into three gauges,
// each read on every scrape.
func registerCacheStats(stats CacheStatter) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "zkns_cache_size",
			Help: "Number of registry paths currently held in the watch-driven cache.",
		},
		func() float64 {
			_, _, size := stats.Stats()
			return float64(size)
		},
	))
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "zkns_cache_hits_total",
			Help: "Cumulative number of registry cache hits.",
		},
		func() float64 {
			hits, _, _ := stats.Stats()
			return float64(hits)
		},
	))
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "zkns_cache_misses_total",
			Help: "Cumulative number of registry cache misses.",
		},
		func() float64 {
			_, misses, _ := stats.Stats()
			return float64(misses)
		},
	))
}
