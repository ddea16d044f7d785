// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/chain"
)

type metadata struct {
	network string
	connect string
	keyFile string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "record-cli"
	app.Usage = "create, write and read recordd data records"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " connect to recordd `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: " recordd host/IP and port, `HOST:PORT` [default for network]",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " private key `FILE` for signing",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "private-key, p",
					Value: "",
					Usage: " save the private key to `FILE`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "compute the address of a record from its seed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "*record seed `STRING`",
				},
				cli.StringFlag{
					Name:  "base, b",
					Value: "",
					Usage: " base `ACCOUNT` [default: account of the key]",
				},
				cli.StringFlag{
					Name:  "program, P",
					Value: "",
					Usage: " program `ACCOUNT` [default: ask recordd]",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "create",
			Usage:     "create a new record owned by the key's account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "*record seed `STRING`",
				},
				cli.IntFlag{
					Name:  "capacity, C",
					Value: 0,
					Usage: "*data capacity in `BYTES`",
				},
				cli.Uint64Flag{
					Name:  "balance, B",
					Value: 0,
					Usage: " initial balance `AMOUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "write",
			Usage:     "replace the data of a record",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*record `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "+UTF-8 `TEXT` to store",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+read data from `FILE`",
				},
				cli.BoolFlag{
					Name:  "unsigned, u",
					Usage: " send without a signature",
				},
			},
			Action: runWrite,
		},
		{
			Name:      "read",
			Usage:     "read the text of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*record `ADDRESS`",
				},
			},
			Action: runRead,
		},
		{
			Name:      "watch",
			Usage:     "print record updates as they are published",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, s",
					Value: "",
					Usage: "*recordd publish `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key, K",
					Value: "",
					Usage: " publisher public key `FILE` for encrypted connections",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " only show this record `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "count, N",
					Value: 0,
					Usage: " stop after `COUNT` updates [0: no limit]",
				},
				cli.IntFlag{
					Name:  "timeout, t",
					Value: 0,
					Usage: " give up after `SECONDS` without an update [0: wait forever]",
				},
			},
			Action: runWatch,
		},
		{
			Name:   "info",
			Usage:  "display recordd info",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display record-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// resolve the network and connection
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = chain.Bitmark
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be bitmark/testing/local", network)
		}

		connect := c.GlobalString("connect")
		if "" == connect {
			connect = chain.DefaultConnect(network)
		}

		if verbose {
			fmt.Fprintf(e, "network: %s  connect: %s\n", network, connect)
		}

		c.App.Metadata["config"] = &metadata{
			network: network,
			connect: connect,
			keyFile: c.GlobalString("key"),
			testnet: chain.IsTesting(network),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	return app
}
