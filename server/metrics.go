// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus counters and histograms for the HTTP surface, one
// prometheus.NewCounter/CounterOpts (or Vec/Histogram) per concern.
var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zkns_request_count",
		Help: "Counter of backend HTTP requests received.",
	}, []string{"method", "scheme"})

	responseCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zkns_response_count",
		Help: "Counter of backend HTTP responses sent.",
	}, []string{"status"})

	lookupCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "zkns_lookup_count",
		Help: "Counter of dnsapi/lookup requests handled.",
	})

	noDataCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "zkns_nodata_count",
		Help: "Counter of dnsapi/lookup requests answered with no records.",
	})

	// Bucket scheme: base 2, 30 bucket bounds (an explicit 0 floor, then
	// 29 powers of 2 starting at 1ms), with a +Inf ceiling.
	requestLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "zkns_request_duration_seconds",
		Help:    "Backend HTTP request latency in seconds.",
		Buckets: latencyBuckets(),
	})

	requestBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "zkns_request_body_bytes",
		Help:    "Backend HTTP request body size in bytes.",
		Buckets: sizeBuckets(),
	})

	responseBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "zkns_response_body_bytes",
		Help:    "Backend HTTP response body size in bytes.",
		Buckets: sizeBuckets(),
	})
)

// counterAdapter satisfies server.Counter (Inc(int64)) over a plain
// prometheus.Counter (Add(float64)).
type counterAdapter struct{ c prometheus.Counter }

func (a counterAdapter) Inc(i int64) { a.c.Add(float64(i)) }

func latencyBuckets() []float64 {
	buckets := append([]float64{0}, prometheus.ExponentialBuckets(0.001, 2, 29)...)
	return buckets
}

func sizeBuckets() []float64 {
	buckets := append([]float64{0}, prometheus.ExponentialBuckets(1, 2, 29)...)
	return buckets
}

func init() {
	prometheus.MustRegister(requestCount, responseCount, requestLatency, requestBytes, responseBytes,
		lookupCount, noDataCount)
	StatsLookupCount = counterAdapter{lookupCount}
	StatsNoDataCount = counterAdapter{noDataCount}
}

// metricsHandler exposes the scrape endpoint.
func metricsHandler() http.Handler {
	return promhttp.Handler()
}

// instrumentedResponseWriter tracks the status code and byte count
// written, so the outer middleware can observe both after the handler
// returns.
type instrumentedResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *instrumentedResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *instrumentedResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// metricsMiddleware observes request/response counts, latency, and sizes
// for every request, regardless of route.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestCount.WithLabelValues(r.Method, schemeOf(r)).Inc()
		requestBytes.Observe(float64(r.ContentLength))

		iw := &instrumentedResponseWriter{ResponseWriter: w}
		next.ServeHTTP(iw, r)

		requestLatency.Observe(time.Since(start).Seconds())
		responseBytes.Observe(float64(iw.bytes))
		status := iw.status
		if status == 0 {
			status = http.StatusOK
		}
		responseCount.WithLabelValues(http.StatusText(status)).Inc()
	})
}

func schemeOf(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
