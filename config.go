// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	golog "github.com/coreos/go-log/log"

	"github.com/benley/pdns-backend-zookeeper/backend"
)

// Config holds the options parsed once at startup: built by flag.Parse
// in main and passed explicitly into the server's constructor. There is
// no write path, so there is nothing to reload afterward.
type Config struct {
	ZK     string
	Domain string
	Port   int
	Listen string
	TTL    uint32

	SOA backend.SOA

	log *golog.Logger
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultUint32(v, def uint32) uint32 {
	if v == 0 {
		return def
	}
	return v
}

// setDefaults fills in any flag left at its zero value and normalizes
// the domain.
func setDefaults(cfg *Config) error {
	cfg.ZK = defaultString(cfg.ZK, "localhost:2181/")
	cfg.Domain = strings.ToLower(strings.Trim(defaultString(cfg.Domain, "zk.example.com"), "."))
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	cfg.Listen = defaultString(cfg.Listen, "0.0.0.0")
	cfg.TTL = defaultUint32(cfg.TTL, 60)

	cfg.SOA.TTL = defaultUint32(cfg.SOA.TTL, 300)
	if cfg.SOA.NS1 == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("config: determining system hostname for SOA nameserver: %w", err)
		}
		cfg.SOA.NS1 = hostname
	}
	if cfg.SOA.Email == "" {
		cfg.SOA.Email = "root." + cfg.Domain
	}
	cfg.SOA.Refresh = defaultUint32(cfg.SOA.Refresh, 1200)
	cfg.SOA.Retry = defaultUint32(cfg.SOA.Retry, 180)
	cfg.SOA.Expire = defaultUint32(cfg.SOA.Expire, 86400)
	cfg.SOA.NxdomainTTL = defaultUint32(cfg.SOA.NxdomainTTL, 60)

	cfg.log = golog.New("zkns", false,
		golog.CombinedSink(os.Stderr, "[%s] %s %-9s | %s\n", []string{"prefix", "time", "priority", "message"}))

	return nil
}
