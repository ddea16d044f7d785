// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/recordd/fault"
)

// Access - batched database access shared by the pools of one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte)
}

// AccessData - leveldb batch with a write-through cache
//
// only one batch can be open; Begin blocks until the current batch
// is committed or aborted
type AccessData struct {
	sync.Mutex
	batchLock sync.Mutex
	inUse     bool
	db        *leveldb.DB
	batch     *leveldb.Batch
	pending   map[string]cacheData
	cache     Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &AccessData{
		inUse:   false,
		db:      db,
		batch:   new(leveldb.Batch),
		pending: make(map[string]cacheData),
		cache:   cache,
	}
}

// Begin - open the batch
func (d *AccessData) Begin() error {
	d.batchLock.Lock()

	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.pending = make(map[string]cacheData)
	d.inUse = true
	return nil
}

// Put - stage a key/value write
func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	d.batch.Put(key, value)
	d.pending[string(key)] = cacheData{op: dbPut, value: value}
}

// Delete - stage a key removal
func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	d.batch.Delete(key)
	d.pending[string(key)] = cacheData{op: dbDelete}
}

// Commit - write the batch atomically and close it
func (d *AccessData) Commit() error {
	d.Lock()
	if !d.inUse {
		d.Unlock()
		return fault.TransactionNotStarted
	}

	err := d.db.Write(d.batch, nil)
	if nil == err {
		for key, data := range d.pending {
			d.cache.Set(data.op, key, data.value)
		}
	}
	d.close()
	d.Unlock()

	d.batchLock.Unlock()
	return err
}

// Abort - discard the batch
func (d *AccessData) Abort() {
	d.Lock()
	if !d.inUse {
		d.Unlock()
		return
	}
	d.close()
	d.Unlock()

	d.batchLock.Unlock()
}

// must hold lock
func (d *AccessData) close() {
	d.batch.Reset()
	d.pending = make(map[string]cacheData)
	d.inUse = false
}

// Get - read from cache then database
func (d *AccessData) Get(key []byte) ([]byte, error) {
	if value, found := d.cache.Get(string(key)); found {
		return value, nil
	}
	value, err := d.db.Get(key, nil)
	if nil != err {
		return nil, err
	}
	d.cache.Set(dbPut, string(key), value)
	return value, nil
}

// Has - check cache then database
func (d *AccessData) Has(key []byte) (bool, error) {
	if _, found := d.cache.Get(string(key)); found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true while a batch is open
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
