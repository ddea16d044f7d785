// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/recordd/rpc/node"
)

// GetInfo - request status from recordd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	_ = client.printJson("Info Reply", reply)

	return &reply, nil
}
