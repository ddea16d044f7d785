// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Records *PoolHandle `prefix:"R"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentRecordsDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db    *leveldb.DB
	cache Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	recordsDatabase := database + "-records.leveldb"

	db, version, err := getDB(recordsDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.db = db

	// ensure no database downgrade
	if version > currentRecordsDBVersion {
		logger.Criticalf("records database version: %d > current version: %d", version, currentRecordsDBVersion)
		return fmt.Errorf("records database version: %d > current version: %d", version, currentRecordsDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && version != currentRecordsDBVersion {
		logger.Criticalf("database is inconsistent: records: %d  current: %d", version, currentRecordsDBVersion)
		return fmt.Errorf("database is inconsistent: records: %d  current: %d", version, currentRecordsDBVersion)
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(poolData.db, currentRecordsDBVersion)
		if nil != err {
			return err
		}
	}

	poolData.cache = newCache()
	dataAccess := newDA(poolData.db, poolData.cache)

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		p := &PoolHandle{
			prefix:     prefixTag[0],
			dataAccess: dataAccess,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	if nil != poolData.cache {
		poolData.cache.Clear()
		poolData.cache = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
