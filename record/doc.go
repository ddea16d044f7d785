// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - fixed capacity data accounts
//
// A record is addressed by a 32 byte digest, administered by a single
// program identity and holds a data region whose capacity is set when
// the record is allocated and never changes afterwards.
//
// The data region has no framing: text is left aligned and the
// remainder is zero bytes.
//
// Packed form (used as the storage value):
//
//   uvarint(len(administrator)) ++ administrator
//   ++ uvarint(balance)
//   ++ uvarint(capacity) ++ data
package record
