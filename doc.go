// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

/*
ZKNS

zkns is a PowerDNS remote-backend daemon that answers DNS queries by
resolving them against ServerSet entries registered under a ZooKeeper
ensemble. It speaks PowerDNS's HTTP "remote backend" protocol, not the
DNS wire protocol directly: PowerDNS itself terminates client queries and
calls out to zkns's lookup/getDomainMetadata endpoints for answers.

There are no flags stored in ZooKeeper: all configuration is passed on
the command line or through environment variables, once, at startup.

    zkns -zk=zk1:2181,zk2:2181/prod -domain=services.example.com -port=8080

The following flags may be set. Only `zk` and `domain` also read an
environment variable (ZKNS_ZK and ZKNS_DOMAIN); the other flags are set
on the command line only:

* `zk`: ZooKeeper ensemble, comma-delimited, optionally followed by a
  chroot path, defaults to `localhost:2181/`.

* `domain`: domain zkns is authoritative for, defaults to `zk.example.com`.

* `port`/`listen`: HTTP listen address, defaults to `8080`/`0.0.0.0`.

* `ttl`: default TTL in seconds for A/NS/SRV records, defaults to 60.

* `soa_ttl`, `soa_nameserver`, `soa_email`, `soa_refresh`, `soa_retry`,
  `soa_expire`, `soa_nxdomain_ttl`: SOA record fields, see backend.SOA.

Services register themselves under the ZooKeeper ensemble using the
standard ServerSet layout: reverse the domain name and replace dots with
slashes to get the znode path. E.g. to register
"rails.production.east.services.example.com", create ephemeral children
under "/east/production/rails" with a JSON payload:

    {"service_endpoint":{"host":"10.0.1.12","port":8080},"shard":4}

Querying zkns (through PowerDNS) for A records on
"4.rails.production.east.services.example.com" returns the host from
that instance's service_endpoint. Omitting the leading shard label
("rails.production.east.services.example.com") returns every registered
instance instead of a single one.

SRV records are synthesized from additional_endpoints: querying
"_http._tcp.rails.production.east.services.example.com" returns one SRV
record per instance that both carries a shard and has an
"http" entry in its additional_endpoints, targeting
"<shard>.rails.production.east.services.example.com".

zkns does not implement zone transfers, DNSSEC, a write path, recursion,
or authority over any domain but the one configured.
*/
package main
