// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
)

func runWrite(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := parseAddress(c.String("address"))
	if nil != err {
		return err
	}

	data := c.String("data")
	fileName := c.String("file")

	var payload []byte
	switch {
	case "" != data && "" != fileName:
		return fmt.Errorf("only one of data or file is allowed")
	case "" != fileName:
		payload, err = os.ReadFile(fileName)
		if nil != err {
			return err
		}
	default:
		payload = []byte(data)
	}

	writeConfig := &rpccalls.WriteData{
		Address: address,
		Payload: payload,
	}

	if !c.Bool("unsigned") {
		writeConfig.Signer, err = loadKey(m)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", address)
		fmt.Fprintf(m.e, "payload: %d bytes\n", len(payload))
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.WriteRecord(writeConfig)
	if nil != err {
		return fmt.Errorf("write error: %s", err)
	}

	return printJson(m.w, response)
}
