// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benley/pdns-backend-zookeeper/server"
	"github.com/benley/pdns-backend-zookeeper/zk"
)

func envOrDefault(env, def string) string {
	if x := os.Getenv(env); x != "" {
		return x
	}
	return def
}

var (
	zkFlag     string
	domainFlag string
	portFlag   int
	listenFlag string

	ttlFlag uint

	soaTTLFlag         uint
	soaNameserverFlag  string
	soaEmailFlag       string
	soaRefreshFlag     uint
	soaRetryFlag       uint
	soaExpireFlag      uint
	soaNxdomainTTLFlag uint
)

func init() {
	flag.StringVar(&zkFlag, "zk", envOrDefault("ZKNS_ZK", "localhost:2181/"),
		"ZooKeeper ensemble (comma-delimited, optionally followed by /chroot path) or env. var ZKNS_ZK")
	flag.StringVar(&domainFlag, "domain", envOrDefault("ZKNS_DOMAIN", "zk.example.com"),
		"Domain to serve records for, or env. var ZKNS_DOMAIN")
	flag.IntVar(&portFlag, "port", 8080, "HTTP listen port")
	flag.StringVar(&listenFlag, "listen", "0.0.0.0", "IP address to listen for HTTP connections")

	flag.UintVar(&ttlFlag, "ttl", 60, "TTL for A/NS/SRV records")

	flag.UintVar(&soaTTLFlag, "soa_ttl", 300, "TTL for the SOA record itself")
	flag.StringVar(&soaNameserverFlag, "soa_nameserver", "",
		"Authoritative nameserver for the SOA record. Uses the system hostname if left blank.")
	flag.StringVar(&soaEmailFlag, "soa_email", "",
		"Email address field for the SOA record. Autogenerated if left blank.")
	flag.UintVar(&soaRefreshFlag, "soa_refresh", 1200, "Refresh field for the SOA record")
	flag.UintVar(&soaRetryFlag, "soa_retry", 180, "Retry field for the SOA record")
	flag.UintVar(&soaExpireFlag, "soa_expire", 86400, "Expire field for the SOA record")
	flag.UintVar(&soaNxdomainTTLFlag, "soa_nxdomain_ttl", 60, "Negative caching TTL for the SOA record")
}

func main() {
	flag.Parse()

	cfg := &Config{
		ZK:     zkFlag,
		Domain: domainFlag,
		Port:   portFlag,
		Listen: listenFlag,
		TTL:    uint32(ttlFlag),
	}
	cfg.SOA.TTL = uint32(soaTTLFlag)
	cfg.SOA.NS1 = soaNameserverFlag
	cfg.SOA.Email = soaEmailFlag
	cfg.SOA.Refresh = uint32(soaRefreshFlag)
	cfg.SOA.Retry = uint32(soaRetryFlag)
	cfg.SOA.Expire = uint32(soaExpireFlag)
	cfg.SOA.NxdomainTTL = uint32(soaNxdomainTTLFlag)

	if err := setDefaults(cfg); err != nil {
		log.Fatalf("zkns: bad configuration: %s", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("zkns: %s", err)
	}
}

// run owns the registry session end to end so that its Close is invoked
// on every exit path of run, including a ListenAndServe that returns an
// error, not just a clean shutdown signal.
func run(cfg *Config) error {
	registry := zk.NewClient(cfg.ZK, 4096)
	if err := registry.Start(context.Background()); err != nil {
		return fmt.Errorf("could not connect to ZooKeeper ensemble %q: %w", cfg.ZK, err)
	}
	defer registry.Close()

	srv := server.New(registry, cfg.Domain, cfg.SOA, cfg.TTL)
	srv.RegisterCacheStats(registry)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(cfg.Listen, cfg.Port)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server exited: %w", err)
	case sig := <-sigCh:
		cfg.log.Infof("received %s, draining", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			cfg.log.Errorf("error during shutdown: %s", err)
		}
		return nil
	}
}
