// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk record store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. address = record address as 32 byte SHA3-256(base ++ seed ++ program)
// 4. packed  = uvarint framed administrator, balance and capacity
//              followed by the raw data region
//
// Records:
//
//   R ++ address      - record store
//                       data: packed record
//
// Version:
//
//   0x00 ++ "VERSION" - big endian uint32 database version
package storage
