// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ed25519 identities
//
// An account is the public half of a key pair.  Its text form is the
// Base58 encoding of:
//
//   key variant ++ public key ++ SHA3-256(key variant ++ public key)[:4]
//
// where the key variant carries the algorithm (high nibble), a
// public key flag (bit 0) and a test network flag (bit 1).
//
// Private keys use the same layout with bit 0 clear.
package account
