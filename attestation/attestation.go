// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package attestation - proof that a signer authorised a record write
package attestation

import (
	"encoding/binary"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/record"
)

// prefix of every signed message, keeps these signatures from being
// valid for any other purpose
var messageTag = []byte("record write")

// Attestation - a signer and its signature over an invocation message
type Attestation struct {
	Signer    *account.Account  `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes a signer signs to authorise writing payload to a
// record
//
//   "record write" ++ address ++ uvarint(len(payload)) ++ payload
func Message(address record.Address, payload []byte) []byte {
	message := make([]byte, 0, len(messageTag)+record.AddressLength+binary.MaxVarintLen64+len(payload))
	message = append(message, messageTag...)
	message = append(message, address[:]...)
	message = binary.AppendUvarint(message, uint64(len(payload)))
	return append(message, payload...)
}

// New - sign a message
func New(privateKey *account.PrivateKey, message []byte) *Attestation {
	return &Attestation{
		Signer:    privateKey.Account(),
		Signature: privateKey.Sign(message),
	}
}

// AssertedIdentity - the signer, present only if the signature over
// message verifies
func (a *Attestation) AssertedIdentity(message []byte) *account.Account {
	if nil == a || nil == a.Signer {
		return nil
	}
	if nil != a.Signer.CheckSignature(message, a.Signature) {
		return nil
	}
	return a.Signer
}
