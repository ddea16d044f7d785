// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
)

// PrivateKey - an ed25519 private key and its network
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a fresh private key, randomness from reader
// (crypto/rand if nil)
func NewKeyPair(test bool, reader io.Reader) (*PrivateKey, error) {
	if nil == reader {
		reader = rand.Reader
	}
	_, privateKey, err := ed25519.GenerateKey(reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: privateKey,
	}, nil
}

// PrivateKeyFromBase58 - convert a Base58 encoded string to a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(decoded) <= checksumLength+1 {
		return nil, fault.CannotDecodeAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	keyVariant := decoded[0]
	if keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}
	if ED25519 != int(keyVariant>>algorithmShift) {
		return nil, fault.InvalidKeyType
	}

	key := decoded[1:checksumStart]
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}

	privateKey := make([]byte, ed25519.PrivateKeySize)
	copy(privateKey, key)

	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: privateKey,
	}, nil
}

// Account - the public half
func (privateKey *PrivateKey) Account() *Account {
	publicKey := privateKey.PrivateKey.Public().(ed25519.PublicKey)
	return &Account{
		Test:      privateKey.Test,
		PublicKey: publicKey,
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - key variant prefixed private key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - Base58 encoding with checksum
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// key files hold a single line of hex encoded key variant prefixed key

// WritePrivateKeyFile - save a private key, fails if the file exists
func WritePrivateKeyFile(fileName string, privateKey *PrivateKey) error {
	return writeKeyFile(fileName, privateKey.Bytes(), 0600)
}

// WritePublicKeyFile - save the account of a private key, fails if the file exists
func WritePublicKeyFile(fileName string, account *Account) error {
	return writeKeyFile(fileName, account.Bytes(), 0666)
}

// ReadPrivateKeyFile - load a private key written by WritePrivateKeyFile
func ReadPrivateKeyFile(fileName string) (*PrivateKey, error) {
	data, err := readKeyFile(fileName)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize+1 != len(data) {
		return nil, fault.InvalidKeyLength
	}
	keyVariant := data[0]
	if keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}
	if ED25519 != int(keyVariant>>algorithmShift) {
		return nil, fault.InvalidKeyType
	}
	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: data[1:],
	}, nil
}

// ReadPublicKeyFile - load an account written by WritePublicKeyFile
func ReadPublicKeyFile(fileName string) (*Account, error) {
	data, err := readKeyFile(fileName)
	if nil != err {
		return nil, err
	}
	return FromBytes(data)
}

func writeKeyFile(fileName string, data []byte, mode os.FileMode) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if nil != err {
		return err
	}
	_, err = f.WriteString(hex.EncodeToString(data) + "\n")
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	return err
}

func readKeyFile(fileName string) ([]byte, error) {
	text, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return hex.DecodeString(strings.TrimSpace(string(text)))
}
