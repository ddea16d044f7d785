// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// valid accounts
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestValidBase58Account(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.FromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58 error", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: wrong network", index)
		assert.Equal(t, account.ED25519, acc.KeyType(), "%d: wrong key type", index)
		assert.True(t, bytes.Equal(test.publicKey, acc.PublicKeyBytes()), "%d: wrong public key: %x", index, acc.PublicKeyBytes())
		assert.Equal(t, test.base58Account, acc.String(), "%d: wrong base58", index)

		fromBytes, err := account.FromBytes(acc.Bytes())
		assert.Nil(t, err, "%d: from bytes error", index)
		assert.True(t, acc.Equal(fromBytes), "%d: bytes round trip mismatch", index)
	}
}

func TestInvalidBase58Account(t *testing.T) {
	valid := testAccount[0].base58Account

	corrupted := []byte(valid)
	if 'a' == corrupted[10] {
		corrupted[10] = 'b'
	} else {
		corrupted[10] = 'a'
	}

	_, err := account.FromBase58(string(corrupted))
	assert.Equal(t, fault.ChecksumMismatch, err, "corrupted account accepted")

	_, err = account.FromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAccount, err, "non base58 accepted")

	_, err = account.FromBase58("")
	assert.Equal(t, fault.CannotDecodeAccount, err, "empty account accepted")
}

func TestFromBytesRejects(t *testing.T) {
	acc := &account.Account{
		Test:      true,
		PublicKey: testAccount[1].publicKey,
	}
	b := acc.Bytes()

	_, err := account.FromBytes(b[:len(b)-1])
	assert.Equal(t, fault.InvalidKeyLength, err, "short key accepted")

	private := append([]byte{b[0] &^ 0x01}, b[1:]...)
	_, err = account.FromBytes(private)
	assert.Equal(t, fault.NotAPublicKey, err, "private variant accepted")

	nothing := append([]byte{0x01}, b[1:]...)
	_, err = account.FromBytes(nothing)
	assert.Equal(t, fault.InvalidKeyType, err, "wrong algorithm accepted")
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		Owner *account.Account `json:"owner"`
	}

	acc, err := account.FromBase58(testAccount[2].base58Account)
	assert.Nil(t, err, "from base58 error")

	b, err := json.Marshal(wrapper{Owner: acc})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"owner":"`+testAccount[2].base58Account+`"}`, string(b), "wrong JSON")

	var w wrapper
	err = json.Unmarshal(b, &w)
	assert.Nil(t, err, "unmarshal error")
	assert.True(t, acc.Equal(w.Owner), "JSON round trip mismatch")
}

func TestSignature(t *testing.T) {
	privateKey, err := account.NewKeyPair(true, nil)
	assert.Nil(t, err, "key pair error")

	message := []byte("the message")
	signature := privateKey.Sign(message)

	acc := privateKey.Account()
	assert.True(t, acc.IsTesting(), "wrong network")
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature rejected")

	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature([]byte("other message"), signature), "wrong message accepted")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[1:]), "short signature accepted")

	other, err := account.NewKeyPair(true, nil)
	assert.Nil(t, err, "key pair error")
	assert.Equal(t, fault.InvalidSignature, other.Account().CheckSignature(message, signature), "other key accepted")
	assert.False(t, acc.Equal(other.Account()), "different accounts are equal")
}

func TestPrivateKeyBase58(t *testing.T) {
	privateKey, err := account.NewKeyPair(false, nil)
	assert.Nil(t, err, "key pair error")

	decoded, err := account.PrivateKeyFromBase58(privateKey.String())
	assert.Nil(t, err, "private key from base58 error")
	assert.False(t, decoded.Test, "wrong network")
	assert.True(t, bytes.Equal(privateKey.PrivateKey, decoded.PrivateKey), "private key mismatch")

	_, err = account.PrivateKeyFromBase58(privateKey.Account().String())
	assert.NotNil(t, err, "public key accepted as private key")
}

func TestKeyFiles(t *testing.T) {
	dir, err := os.MkdirTemp("", "account-test")
	assert.Nil(t, err, "temporary directory error")
	defer os.RemoveAll(dir)

	privateFile := filepath.Join(dir, "test.private")
	publicFile := filepath.Join(dir, "test.public")

	privateKey, err := account.NewKeyPair(true, nil)
	assert.Nil(t, err, "key pair error")

	assert.Nil(t, account.WritePrivateKeyFile(privateFile, privateKey), "write private error")
	assert.Nil(t, account.WritePublicKeyFile(publicFile, privateKey.Account()), "write public error")
	assert.NotNil(t, account.WritePrivateKeyFile(privateFile, privateKey), "existing file overwritten")

	readPrivate, err := account.ReadPrivateKeyFile(privateFile)
	assert.Nil(t, err, "read private error")
	assert.True(t, readPrivate.Test, "wrong network")
	assert.True(t, bytes.Equal(privateKey.PrivateKey, readPrivate.PrivateKey), "private key mismatch")

	readPublic, err := account.ReadPublicKeyFile(publicFile)
	assert.Nil(t, err, "read public error")
	assert.True(t, privateKey.Account().Equal(readPublic), "public key mismatch")

	_, err = account.ReadPrivateKeyFile(publicFile)
	assert.NotNil(t, err, "public key file accepted as private")
}
