// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return fmt.Errorf("get info error: %s", err)
	}

	return printJson(m.w, info)
}
