// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/program"
)

func TestWriteBounded(t *testing.T) {
	items := []struct {
		before   []byte
		payload  []byte
		expected []byte
	}{
		{[]byte{0, 0, 0, 0}, []byte{12, 24, 48}, []byte{12, 24, 48, 0}},
		{[]byte{12, 24, 48, 0}, []byte{22}, []byte{22, 0, 0, 0}},
		{[]byte{1, 2, 3, 4}, []byte{}, []byte{0, 0, 0, 0}},
		{[]byte{1, 2, 3, 4}, []byte{5, 6, 7, 8}, []byte{5, 6, 7, 8}},
		{[]byte{}, []byte{}, []byte{}},
	}

	for i, item := range items {
		data := append([]byte(nil), item.before...)
		err := program.WriteBounded(data, item.payload)
		assert.Nil(t, err, "%d: write error", i)
		assert.Equal(t, item.expected, data, "%d: wrong data", i)
	}
}

func TestWriteBoundedTooLarge(t *testing.T) {
	data := []byte{9, 9}
	err := program.WriteBounded(data, []byte{1, 2, 3})
	assert.Equal(t, fault.PayloadTooLarge, err, "oversize payload accepted")
	assert.Equal(t, []byte{9, 9}, data, "data modified")

	err = program.WriteBounded(nil, []byte{1})
	assert.Equal(t, fault.PayloadTooLarge, err, "write to empty region accepted")
}
