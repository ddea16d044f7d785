// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 public key and its network
type Account struct {
	Test      bool
	PublicKey ed25519.PublicKey
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert a key variant prefixed public key to an account
func FromBytes(accountBytes []byte) (*Account, error) {
	if 0 == len(accountBytes) {
		return nil, fault.InvalidKeyLength
	}

	keyVariant := accountBytes[0]
	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotAPublicKey
	}

	keyAlgorithm := int(keyVariant >> algorithmShift)
	if ED25519 != keyAlgorithm {
		return nil, fault.InvalidKeyType
	}

	if ed25519.PublicKeySize != len(accountBytes)-1 {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountBytes[1:])

	account := &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}
	return account, nil
}

// KeyType - key type code (see enumeration above)
func (account *Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// IsTesting - whether the account belongs to a test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// Equal - same key on the same network
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// CheckSignature - verify the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.InvalidKeyLength
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - key variant prefixed public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - Base58 encoding with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
