// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// Record - a persistent fixed capacity data account
type Record struct {
	Address       Address          `json:"address"`
	Administrator *account.Account `json:"administrator"`
	Balance       uint64           `json:"balance"`
	Data          []byte           `json:"data"`
}

// New - allocate a zero filled record
func New(address Address, administrator *account.Account, capacity int) *Record {
	return &Record{
		Address:       address,
		Administrator: administrator,
		Data:          make([]byte, capacity),
	}
}

// Capacity - size of the data region
func (r *Record) Capacity() int {
	return len(r.Data)
}

// Clone - deep copy, so a failed write can be discarded
func (r *Record) Clone() *Record {
	c := &Record{
		Address: r.Address,
		Balance: r.Balance,
		Data:    make([]byte, len(r.Data)),
	}
	copy(c.Data, r.Data)
	if nil != r.Administrator {
		c.Administrator = &account.Account{
			Test:      r.Administrator.Test,
			PublicKey: append([]byte(nil), r.Administrator.PublicKey...),
		}
	}
	return c
}

// Text - the data region with trailing zero padding removed
func (r *Record) Text() []byte {
	return bytes.TrimRight(r.Data, "\x00")
}

// Pack - convert a record to its storage value
func (r *Record) Pack() ([]byte, error) {
	if nil == r.Administrator {
		return nil, fault.MissingParameters
	}
	administrator := r.Administrator.Bytes()

	buffer := make([]byte, 0, 3*binary.MaxVarintLen64+len(administrator)+len(r.Data))
	buffer = binary.AppendUvarint(buffer, uint64(len(administrator)))
	buffer = append(buffer, administrator...)
	buffer = binary.AppendUvarint(buffer, r.Balance)
	buffer = binary.AppendUvarint(buffer, uint64(len(r.Data)))
	buffer = append(buffer, r.Data...)
	return buffer, nil
}

// Unpack - convert a storage value back to a record
func Unpack(address Address, packed []byte) (*Record, error) {
	n := 0

	administratorLength, count := binary.Uvarint(packed[n:])
	if count <= 0 {
		return nil, fault.RecordTruncated
	}
	n += count
	if uint64(len(packed)-n) < administratorLength {
		return nil, fault.RecordTruncated
	}
	administrator, err := account.FromBytes(packed[n : n+int(administratorLength)])
	if nil != err {
		return nil, err
	}
	n += int(administratorLength)

	balance, count := binary.Uvarint(packed[n:])
	if count <= 0 {
		return nil, fault.RecordTruncated
	}
	n += count

	capacity, count := binary.Uvarint(packed[n:])
	if count <= 0 {
		return nil, fault.RecordTruncated
	}
	n += count
	if uint64(len(packed)-n) != capacity {
		return nil, fault.RecordTruncated
	}

	data := make([]byte, capacity)
	copy(data, packed[n:])

	r := &Record{
		Address:       address,
		Administrator: administrator,
		Balance:       balance,
		Data:          data,
	}
	return r, nil
}
