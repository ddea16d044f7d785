// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := os.MkdirTemp("", "zmqutil")
	assert.Nil(t, err, "temporary directory error")
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "publish.public")
	privateFile := filepath.Join(dir, "publish.private")

	assert.Nil(t, zmqutil.MakeKeyPair(publicFile, privateFile), "make key pair error")
	assert.NotNil(t, zmqutil.MakeKeyPair(publicFile, privateFile), "existing files overwritten")

	publicKey, err := zmqutil.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "read public error")
	assert.Equal(t, 32, len(publicKey), "wrong public key length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "read private error")
	assert.Equal(t, 32, len(privateKey), "wrong private key length")

	_, err = zmqutil.ReadPrivateKeyFile(publicFile)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public file read as private")

	_, err = zmqutil.ReadPublicKeyFile(privateFile)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private file read as public")
}

func TestParseKey(t *testing.T) {
	hex32 := strings.Repeat("ab", 32)

	key, private, err := zmqutil.ParseKey("PUBLIC:" + hex32 + "\n")
	assert.Nil(t, err, "parse public error")
	assert.False(t, private, "public key parsed as private")
	assert.Equal(t, 32, len(key), "wrong key length")

	_, private, err = zmqutil.ParseKey("  PRIVATE:" + hex32)
	assert.Nil(t, err, "parse private error")
	assert.True(t, private, "private key parsed as public")

	_, _, err = zmqutil.ParseKey("PUBLIC:" + hex32[2:])
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "short public key accepted")

	_, _, err = zmqutil.ParseKey("PRIVATE:" + hex32[2:])
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "short private key accepted")

	_, _, err = zmqutil.ParseKey(hex32)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged key accepted")
}
