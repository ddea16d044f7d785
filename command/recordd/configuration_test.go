// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/chain"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "recordd.conf")
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "Testing"
M.publish = {
    broadcast = { "127.0.0.1:2135" },
}
M.metrics = {
    listen = "127.0.0.1:9130",
}
M.logging = {
    size = 4096,
    levels = {
        ledger = "debug",
    },
}
return M
`)

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	assert.Equal(t, chain.Testing, options.Chain, "chain not lower cased")
	assert.Equal(t, filepath.Join(dir, "data", "testing"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "recordd.public"), options.Identity.PublicKey, "wrong identity")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.ClientRPC.PrivateKey, "wrong key")
	assert.Equal(t, []string{"127.0.0.1:12130"}, options.ClientRPC.Listen, "wrong default listen")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "wrong connection limit")
	assert.Equal(t, []string{"127.0.0.1:2135"}, options.Publishing.Broadcast, "wrong broadcast")
	assert.Equal(t, "", options.Publishing.PrivateKey, "blank key expanded")
	assert.Equal(t, "127.0.0.1:9130", options.Metrics.Listen, "wrong metrics")
	assert.Equal(t, 4096, options.Logging.Size, "wrong log size")
	assert.Equal(t, defaultLogCount, options.Logging.Count, "log count lost")
	assert.Equal(t, "debug", options.Logging.Levels["ledger"], "wrong log level")

	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		info, err := os.Stat(d)
		if assert.Nil(t, err, "directory: %q not created", d) {
			assert.True(t, info.IsDir(), "%q is not a directory", d)
		}
	}
}

func TestConfigurationErrors(t *testing.T) {
	contents := []string{
		`return { data_directory = ".", chain = "mainnet" }`,
		`return { chain = "local" }`,
		`return { data_directory = "/no/such/directory" }`,
		`return { data_directory = ".", database = { name = "sub/records" } }`,
		`return "."`,
	}

	for i, content := range contents {
		_, fileName := writeConfiguration(t, content)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: invalid configuration accepted", i)
	}
}

func TestMakeIdentity(t *testing.T) {
	dir := t.TempDir()
	publicKeyFilename := getFilenameWithDirectory([]string{dir}, identityPublicKeyFilename)
	privateKeyFilename := getFilenameWithDirectory([]string{dir}, identityPrivateKeyFilename)

	err := makeIdentity(true, publicKeyFilename, privateKeyFilename)
	assert.Nil(t, err, "make identity error")

	err = makeIdentity(true, publicKeyFilename, privateKeyFilename)
	assert.NotNil(t, err, "existing identity overwritten")

	options := &Configuration{Identity: IdentityType{PublicKey: publicKeyFilename}}
	assert.True(t, processConfigCommand([]string{"identity"}, options), "identity command not processed")
	assert.False(t, processConfigCommand([]string{"start"}, options), "start processed as config command")

	assert.Equal(t, "recordd.public", filepath.Base(getFilenameWithDirectory(nil, identityPublicKeyFilename)), "wrong default")
}
