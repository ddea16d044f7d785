// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := checkSeed(c.String("seed"))
	if nil != err {
		return err
	}

	capacity := c.Int("capacity")
	if capacity <= 0 {
		return fmt.Errorf("capacity: %d must be positive", capacity)
	}

	privateKey, err := loadKey(m)
	if nil != err {
		return err
	}

	createConfig := &rpccalls.CreateData{
		Base:     privateKey,
		Seed:     seed,
		Capacity: capacity,
		Balance:  c.Uint64("balance"),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "base: %s\n", privateKey.Account())
		fmt.Fprintf(m.e, "seed: %q\n", seed)
		fmt.Fprintf(m.e, "capacity: %d\n", capacity)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateRecord(createConfig)
	if nil != err {
		return fmt.Errorf("create error: %s", err)
	}

	return printJson(m.w, response)
}
