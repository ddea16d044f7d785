// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// MaximumSeedLength - longest seed accepted by DeriveAddress
const MaximumSeedLength = 32

// Address - location of a record
type Address [AddressLength]byte

// DeriveAddress - address of the record a base account allocates for
// a program under a seed
//
//   SHA3-256(base ++ seed ++ program)
func DeriveAddress(base *account.Account, seed string, program *account.Account) (Address, error) {
	if len(seed) > MaximumSeedLength {
		return Address{}, fault.SeedTooLong
	}
	if nil == base || nil == program {
		return Address{}, fault.MissingParameters
	}

	buffer := make([]byte, 0, 2*(1+len(base.PublicKey))+len(seed))
	buffer = append(buffer, base.Bytes()...)
	buffer = append(buffer, seed...)
	buffer = append(buffer, program.Bytes()...)

	return sha3.Sum256(buffer), nil
}

// AddressFromBytes - copy a byte slice into an address
func AddressFromBytes(b []byte) (Address, error) {
	var address Address
	if AddressLength != len(b) {
		return address, fault.InvalidKeyLength
	}
	copy(address[:], b)
	return address, nil
}

// String - hex form for the fmt package (for %s)
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// GoString - for %#v
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// MarshalText - hex text for JSON
func (address Address) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(AddressLength))
	hex.Encode(b, address[:])
	return b, nil
}

// UnmarshalText - hex text to address
func (address *Address) UnmarshalText(s []byte) error {
	if hex.EncodedLen(AddressLength) != len(s) {
		return fault.InvalidKeyLength
	}
	_, err := hex.Decode(address[:], s)
	return err
}
