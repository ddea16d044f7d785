// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/record"
)

func runRead(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := parseAddress(c.String("address"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetRecord(address)
	if nil != err {
		return fmt.Errorf("read error: %s", err)
	}

	r := &record.Record{
		Address: response.Address,
		Data:    response.Data,
	}
	fmt.Fprintf(m.w, "%s\n", r.Text())

	return nil
}
