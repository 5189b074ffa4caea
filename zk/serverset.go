// Copyright (c) 2014 The SkyDNS Authors. All rights reserved.
// Use of this source code is governed by The MIT License (MIT) that can be
// found in the LICENSE file.

package zk

import (
	"encoding/json"
	"fmt"

	"github.com/benley/pdns-backend-zookeeper/msg"
)

// DecodeInstance decodes a ServerSet ephemeral znode's payload into an
// Instance. The wire shape mirrors what the Python original consumed from
// twitter.common.zookeeper.serverset.serverset.ServerSet.
func DecodeInstance(data []byte) (msg.Instance, error) {
	var inst msg.Instance
	if err := json.Unmarshal(data, &inst); err != nil {
		return msg.Instance{}, fmt.Errorf("zk: decoding serverset instance: %w", err)
	}
	return inst, nil
}
