// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/rpc/certificate"
	"github.com/bitmark-inc/recordd/zmqutil"
)

const (
	identityPublicKeyFilename  = "recordd.public"
	identityPrivateKeyFilename = "recordd.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-identity", "id":
		publicKeyFilename := getFilenameWithDirectory(arguments, identityPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, identityPrivateKeyFilename)

		chainName := chain.Bitmark
		if len(arguments) >= 2 {
			chainName = arguments[1]
		}
		if !chain.Valid(chainName) {
			fmt.Printf("generate identity: chain: %q is not supported\n", chainName)
			exitwithstatus.Exit(1)
		}

		err := makeIdentity(chain.IsTesting(chainName), publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "generate-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "generate-publish-keys", "pub":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "identity", "dump-conf", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                            (h)    - display this message\n\n")
		fmt.Printf("  version                         (v)    - display version sting\n\n")

		fmt.Printf("  generate-identity [DIR [CHAIN]] (id)   - create private key in: %q\n", "DIR/"+identityPrivateKeyFilename)
		fmt.Printf("                                           and the public key in: %q\n", "DIR/"+identityPublicKeyFilename)
		fmt.Printf("                                           CHAIN is one of: %s, %s, %s\n", chain.Bitmark, chain.Testing, chain.Local)
		fmt.Printf("\n")

		fmt.Printf("  generate-rpc-cert [DIR [IPs...]] (rpc) - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                           and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  generate-publish-keys [DIR]     (pub)  - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                           and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                           (run)  - just run the program, same as no arguments\n")
		fmt.Printf("                                           for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  identity                               - display the program administrator account\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-conf                       (cfg)  - just check the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "identity":
		identity, err := account.ReadPublicKeyFile(options.Identity.PublicKey)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("%s\n", identity)

	case "dump-conf", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to normal start
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// create a new program identity, removing both files on any failure
func makeIdentity(test bool, publicKeyFilename string, privateKeyFilename string) error {
	privateKey, err := account.NewKeyPair(test, nil)
	if nil != err {
		return err
	}

	if err := account.WritePrivateKeyFile(privateKeyFilename, privateKey); nil != err {
		return err
	}
	if err := account.WritePublicKeyFile(publicKeyFilename, privateKey.Account()); nil != err {
		_ = os.Remove(privateKeyFilename)
		return err
	}
	return nil
}

// first argument is the directory, default is current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) > 0 && "" != arguments[0] {
		directory = arguments[0]
	}
	return filepath.Join(directory, name)
}
