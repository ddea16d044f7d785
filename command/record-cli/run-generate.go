// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
)

type generateReply struct {
	Account    *account.Account `json:"account"`
	PrivateKey string           `json:"private_key"`
	File       string           `json:"file,omitempty"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewKeyPair(m.testnet, nil)
	if nil != err {
		return err
	}

	reply := generateReply{
		Account:    privateKey.Account(),
		PrivateKey: privateKey.String(),
	}

	if fileName := c.String("private-key"); "" != fileName {
		if err := account.WritePrivateKeyFile(fileName, privateKey); nil != err {
			return err
		}
		reply.File = fileName
	}

	return printJson(m.w, reply)
}
