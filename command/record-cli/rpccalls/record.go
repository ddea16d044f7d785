// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/attestation"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/record"
	rpcrecord "github.com/bitmark-inc/recordd/rpc/record"
)

// CreateData - parameters for a new record
type CreateData struct {
	Base     *account.PrivateKey
	Seed     string
	Capacity int
	Balance  uint64
}

// WriteData - parameters for a record write
//
// a nil Signer sends an unsigned write
type WriteData struct {
	Address record.Address
	Signer  *account.PrivateKey
	Payload []byte
}

// CreateRecord - allocate a record derived from the base account and seed
func (client *Client) CreateRecord(createConfig *CreateData) (*rpcrecord.Reply, error) {

	if nil == createConfig.Base {
		return nil, fault.MissingParameters
	}

	base := createConfig.Base.Account()
	if base.IsTesting() != client.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}

	arguments := rpcrecord.CreateArguments{
		Base:     base,
		Seed:     createConfig.Seed,
		Capacity: createConfig.Capacity,
		Balance:  createConfig.Balance,
	}

	_ = client.printJson("Create Request", arguments)

	var reply rpcrecord.Reply
	if err := client.client.Call("Record.Create", &arguments, &reply); err != nil {
		return nil, err
	}

	_ = client.printJson("Create Reply", reply)

	return &reply, nil
}

// WriteRecord - replace the data of a record
func (client *Client) WriteRecord(writeConfig *WriteData) (*rpcrecord.Reply, error) {

	arguments := rpcrecord.WriteArguments{
		Address: writeConfig.Address,
		Payload: writeConfig.Payload,
	}

	if nil != writeConfig.Signer {
		if writeConfig.Signer.Test != client.testnet {
			return nil, fault.WrongNetworkForPublicKey
		}
		message := attestation.Message(writeConfig.Address, writeConfig.Payload)
		arguments.Signer = writeConfig.Signer.Account()
		arguments.Signature = writeConfig.Signer.Sign(message)
	}

	_ = client.printJson("Write Request", arguments)

	var reply rpcrecord.Reply
	if err := client.client.Call("Record.Write", &arguments, &reply); err != nil {
		return nil, err
	}

	_ = client.printJson("Write Reply", reply)

	return &reply, nil
}

// GetRecord - read a record
func (client *Client) GetRecord(address record.Address) (*rpcrecord.Reply, error) {

	arguments := rpcrecord.GetArguments{
		Address: address,
	}

	var reply rpcrecord.Reply
	if err := client.client.Call("Record.Get", &arguments, &reply); err != nil {
		return nil, err
	}

	_ = client.printJson("Get Reply", reply)

	return &reply, nil
}
