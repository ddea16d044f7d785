// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the record write handler
//
// A write is admitted only when all of the following hold, checked in
// this order and stopping at the first failure:
//
//   1. the target record is administered by this program
//   2. the signer attestation verifies
//   3. the payload is valid UTF-8
//
// The payload is then copied to the start of the record data and the
// rest of the data region is zero filled.  A rejected write leaves the
// record untouched.
//
// Process is synchronous and does not lock; callers serialise writes
// to the same record.
package program
