// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/record"
)

type addressReply struct {
	Address record.Address   `json:"address"`
	Base    *account.Account `json:"base"`
	Seed    string           `json:"seed"`
	Program *account.Account `json:"program"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := checkSeed(c.String("seed"))
	if nil != err {
		return err
	}

	var base *account.Account
	if s := c.String("base"); "" != s {
		base, err = parseAccount(m, s)
	} else {
		var privateKey *account.PrivateKey
		privateKey, err = loadKey(m)
		if nil == err {
			base = privateKey.Account()
		}
	}
	if nil != err {
		return err
	}

	var program *account.Account
	if s := c.String("program"); "" != s {
		program, err = parseAccount(m, s)
		if nil != err {
			return err
		}
	} else {
		client, err := connect(m)
		if nil != err {
			return err
		}
		defer client.Close()

		info, err := client.GetInfo()
		if nil != err {
			return err
		}
		program = info.Identity
	}

	address, err := record.DeriveAddress(base, seed, program)
	if nil != err {
		return err
	}

	return printJson(m.w, addressReply{
		Address: address,
		Base:    base,
		Seed:    seed,
		Program: program,
	})
}
