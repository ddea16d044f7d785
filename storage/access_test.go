// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/storage/mocks"
)

var (
	defaultKey   = []byte("key")
	defaultValue = []byte{'a'}
)

func setupTestDataAccess(t *testing.T) (Access, *mocks.MockCache, func()) {
	dir, err := os.MkdirTemp("", "data-access")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	db, err := leveldb.OpenFile(dir, nil)
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}

	ctl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctl)

	teardown := func() {
		ctl.Finish()
		_ = db.Close()
		_ = os.RemoveAll(dir)
	}
	return newDA(db, mockCache), mockCache, teardown
}

func TestCommitWithoutBegin(t *testing.T) {
	da, _, teardown := setupTestDataAccess(t)
	defer teardown()

	assert.Equal(t, fault.TransactionNotStarted, da.Commit(), "commit without begin")
}

func TestCommitUpdatesCache(t *testing.T) {
	da, mockCache, teardown := setupTestDataAccess(t)
	defer teardown()

	mockCache.EXPECT().Set(dbPut, string(defaultKey), defaultValue).Times(1)

	assert.Nil(t, da.Begin(), "begin error")
	assert.True(t, da.InUse(), "batch not in use after begin")

	da.Put(defaultKey, defaultValue)
	assert.Nil(t, da.Commit(), "commit error")
	assert.False(t, da.InUse(), "batch still in use after commit")

	mockCache.EXPECT().Get(string(defaultKey)).Return(nil, false).Times(1)
	mockCache.EXPECT().Set(dbPut, string(defaultKey), defaultValue).Times(1)

	value, err := da.Get(defaultKey)
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, value, "wrong value")
}

func TestDeleteUpdatesCache(t *testing.T) {
	da, mockCache, teardown := setupTestDataAccess(t)
	defer teardown()

	mockCache.EXPECT().Set(dbPut, string(defaultKey), defaultValue).Times(1)

	_ = da.Begin()
	da.Put(defaultKey, defaultValue)
	_ = da.Commit()

	mockCache.EXPECT().Set(dbDelete, string(defaultKey), gomock.Any()).Times(1)

	_ = da.Begin()
	da.Delete(defaultKey)
	assert.Nil(t, da.Commit(), "commit error")

	mockCache.EXPECT().Get(string(defaultKey)).Return(nil, false).AnyTimes()

	found, err := da.Has(defaultKey)
	assert.Nil(t, err, "has error")
	assert.False(t, found, "deleted key found")
}

func TestAbortDiscardsBatch(t *testing.T) {
	da, mockCache, teardown := setupTestDataAccess(t)
	defer teardown()

	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockCache.EXPECT().Get(string(defaultKey)).Return(nil, false).Times(1)

	assert.Nil(t, da.Begin(), "begin error")
	da.Put(defaultKey, defaultValue)
	da.Abort()
	assert.False(t, da.InUse(), "batch still in use after abort")

	_, err := da.Get(defaultKey)
	assert.Equal(t, leveldb.ErrNotFound, err, "aborted value stored")

	// a second abort is harmless
	da.Abort()
}

func TestGetFromCache(t *testing.T) {
	da, mockCache, teardown := setupTestDataAccess(t)
	defer teardown()

	mockCache.EXPECT().Get(string(defaultKey)).Return(defaultValue, true).Times(2)

	value, err := da.Get(defaultKey)
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, value, "wrong value")

	found, err := da.Has(defaultKey)
	assert.Nil(t, err, "has error")
	assert.True(t, found, "cached key not found")
}
