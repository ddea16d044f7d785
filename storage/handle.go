// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/fault"
)

// Handle - the functions exported by a pool
//
// writes are staged between Begin and Commit and become visible
// together, Abort discards them
type Handle interface {
	Begin() error
	Commit() error
	Abort()
	Delete([]byte)
	Get([]byte) []byte
	Has([]byte) bool
	Put([]byte, []byte)
}

// PoolHandle - a single prefixed pool
type PoolHandle struct {
	prefix     byte
	dataAccess Access
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Begin - open a batch, blocks while another batch is open
func (p *PoolHandle) Begin() error {
	poolData.RLock()
	available := nil != p.dataAccess && nil != poolData.db
	poolData.RUnlock()

	if !available {
		return fault.DatabaseIsNotSet
	}
	return p.dataAccess.Begin()
}

// Commit - write all staged changes
func (p *PoolHandle) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess || nil == poolData.db {
		return fault.DatabaseIsNotSet
	}
	return p.dataAccess.Commit()
}

// Abort - discard all staged changes
func (p *PoolHandle) Abort() {
	if nil == p.dataAccess {
		return
	}
	p.dataAccess.Abort()
}

// Put - stage a key/value bytes pair
func (p *PoolHandle) Put(key []byte, value []byte) {
	if nil == p.dataAccess || !p.dataAccess.InUse() {
		logger.Panic("pool.Put outside batch")
		return
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// Delete - stage the removal of a key
func (p *PoolHandle) Delete(key []byte) {
	if nil == p.dataAccess || !p.dataAccess.InUse() {
		logger.Panic("pool.Delete outside batch")
		return
	}
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// returns nil if the key is not present, the result is a copy
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess || nil == poolData.db {
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)

	result := make([]byte, len(value))
	copy(result, value)
	return result
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess || nil == poolData.db {
		return false
	}
	found, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return found
}
