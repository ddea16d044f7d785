// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/record"
	"github.com/bitmark-inc/recordd/zmqutil"
)

type watchReply struct {
	Address record.Address `json:"address"`
	Balance uint64         `json:"balance,string"`
	Text    string         `json:"text"`
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publisher := c.String("publisher")
	if "" == publisher {
		return fmt.Errorf("publisher is required")
	}

	var serverKey []byte
	if fileName := c.String("server-key"); "" != fileName {
		key, err := zmqutil.ReadPublicKeyFile(fileName)
		if nil != err {
			return err
		}
		serverKey = key
	}

	filter := false
	var only record.Address
	if s := c.String("address"); "" != s {
		address, err := parseAddress(s)
		if nil != err {
			return err
		}
		only = address
		filter = true
	}

	timeout := time.Duration(-1)
	if seconds := c.Int("timeout"); seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	subscriber, err := zmqutil.NewSubscriber(publisher, serverKey, ledger.UpdateCommand, timeout)
	if nil != err {
		return err
	}
	defer subscriber.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "watching: %s\n", publisher)
	}

	limit := c.Int("count")
	for n := 0; 0 == limit || n < limit; {
		frames, err := subscriber.Receive()
		if nil != err {
			return fmt.Errorf("receive error: %s", err)
		}

		r, err := decodeUpdate(frames)
		if nil != err {
			fmt.Fprintf(m.e, "invalid update: %s\n", err)
			continue
		}
		if filter && r.Address != only {
			continue
		}

		err = printJson(m.w, watchReply{
			Address: r.Address,
			Balance: r.Balance,
			Text:    string(r.Text()),
		})
		if nil != err {
			return err
		}
		n += 1
	}
	return nil
}

// frames are: command, address, packed record
func decodeUpdate(frames [][]byte) (*record.Record, error) {
	if 3 != len(frames) || ledger.UpdateCommand != string(frames[0]) {
		return nil, fmt.Errorf("unexpected message of %d parts", len(frames))
	}
	address, err := record.AddressFromBytes(frames[1])
	if nil != err {
		return nil, err
	}
	return record.Unpack(address, frames[2])
}
