// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/recordd/fault"
)

// WriteBounded - overwrite data with payload followed by zero bytes up
// to the end of data
//
// data is untouched if the payload does not fit
func WriteBounded(data []byte, payload []byte) error {
	if len(payload) > len(data) {
		return fault.PayloadTooLarge
	}

	n := copy(data, payload)

	// erase whatever a longer previous write left behind
	for i := n; i < len(data); i += 1 {
		data[i] = 0
	}
	return nil
}
