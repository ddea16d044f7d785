// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - host the record program
//
// The ledger owns the record pool. Every write loads the stored
// record, runs the program against a clone while holding a lock on
// the record address and only stores the clone if the program
// accepted the write. Successful changes are broadcast as:
//
//   command: "record"
//   parameters: address ++ packed record
package ledger
