// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

// Package msg defines the registry value types the backend resolves
// queries against: a ServerSet instance and its endpoints.
package msg

// Endpoint is a single host:port pair, as found either in an instance's
// primary service_endpoint or in one of its additional_endpoints.
type Endpoint struct {
	Host string `json:"host"`
	Port uint16 `json:"port"`
}

// Instance is a single registered service endpoint, as decoded from a
// ServerSet ephemeral znode. Shard is nil when the instance carries no
// shard discriminator ("any shard").
type Instance struct {
	ServiceEndpoint     Endpoint            `json:"service_endpoint"`
	AdditionalEndpoints map[string]Endpoint `json:"additional_endpoints,omitempty"`
	Shard               *int                `json:"shard,omitempty"`
}

// HasShard reports whether the instance carries a shard discriminator.
func (i Instance) HasShard() bool {
	return i.Shard != nil
}
