// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/coreos/go-systemd/v22/activation"
	"github.com/gorilla/mux"

	"github.com/benley/pdns-backend-zookeeper/backend"
)

// Server is the PowerDNS remote-backend HTTP adapter: it parses
// (qname, qtype) off the request path, dispatches through backend.Dispatch,
// and frames the reply into the {"result": ...} envelope PowerDNS expects.
type Server struct {
	registry backend.Registry
	domain   string
	soa      backend.SOA
	ttl      uint32

	httpServer *http.Server
}

// New returns a Server ready to ListenAndServe. domain must already be
// lowercased and dot-stripped, as setDefaults in package main does.
func New(registry backend.Registry, domain string, soa backend.SOA, ttl uint32) *Server {
	return &Server{
		registry: registry,
		domain:   domain,
		soa:      soa,
		ttl:      ttl,
	}
}

// RegisterCacheStats wires a cache's hit/miss/size counters into the
// /metrics surface. Called from main once the registry's cache is
// constructed. It registers with prometheus.MustRegister, so a second call
// panics on the duplicate gauges.
func (s *Server) RegisterCacheStats(stats CacheStatter) {
	registerCacheStats(stats)
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/dnsapi/lookup/{qname}/{qtype}", s.handleLookup).Methods(http.MethodGet)
	r.HandleFunc("/dnsapi/getDomainMetadata/{qname}/{qkind}", s.handleGetDomainMetadata).Methods(http.MethodGet)
	r.Handle("/metrics", metricsHandler())
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return metricsMiddleware(recoverMiddleware(r))
}

// ListenAndServe blocks serving HTTP on listen:port until Shutdown is
// called, at which point it returns http.ErrServerClosed. If the process
// was started under systemd socket activation (LISTEN_FDS set), the first
// activated listener is used instead of binding listen:port directly.
func (s *Server) ListenAndServe(listen string, port int) error {
	addr := net.JoinHostPort(listen, fmt.Sprintf("%d", port))
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	listeners, err := activation.Listeners()
	if err != nil {
		return fmt.Errorf("server: checking for systemd-activated listeners: %w", err)
	}
	if len(listeners) > 0 {
		printf("ready for queries on %s via systemd socket activation", s.domain)
		return s.httpServer.Serve(listeners[0])
	}

	printf("ready for queries on %s for http://%s", s.domain, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests, bounded by ctx, then closes the
// listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

type envelope struct {
	Result interface{} `json:"result"`
}

func writeEnvelope(w http.ResponseWriter, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(envelope{Result: result})
}

func writeNoAnswer(w http.ResponseWriter) {
	writeEnvelope(w, false)
}

// handleLookup implements GET /dnsapi/lookup/{qname}/{qtype}.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	qname, qtype := vars["qname"], vars["qtype"]

	StatsLookupCount.Inc(1)

	records, err := backend.Dispatch(r.Context(), s.registry, s.domain, s.soa, s.ttl, qname, qtype)
	if err != nil {
		printf("lookup %q/%s failed: %s", qname, qtype, err)
		http.Error(w, "registry error", http.StatusBadGateway)
		return
	}
	if len(records) == 0 {
		StatsNoDataCount.Inc(1)
		writeNoAnswer(w)
		return
	}
	writeEnvelope(w, records)
}

// handleGetDomainMetadata implements GET
// /dnsapi/getDomainMetadata/{qname}/{qkind}. The only metadata kind zkns
// answers is SOA-EDIT, which tells PowerDNS to substitute a real serial for
// the hardcoded one in backend.SOA.String.
func (s *Server) handleGetDomainMetadata(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if vars["qkind"] == "SOA-EDIT" {
		writeEnvelope(w, []string{"EPOCH"})
		return
	}
	writeNoAnswer(w)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// recoverMiddleware turns a handler panic into a 500 instead of taking down
// the process, logging the stack before answering.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				printf("panic handling %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
