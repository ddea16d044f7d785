// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"unicode/utf8"

	"github.com/bitmark-inc/recordd/fault"
)

// ValidatePayload - the whole payload must be valid UTF-8
//
// on failure the error is a *fault.EncodingError holding the offset
// of the first byte that does not begin a valid sequence
func ValidatePayload(payload []byte) error {
	for offset := 0; offset < len(payload); {
		if payload[offset] < utf8.RuneSelf {
			offset += 1
			continue
		}
		r, size := utf8.DecodeRune(payload[offset:])
		if utf8.RuneError == r && 1 == size {
			return &fault.EncodingError{Offset: offset}
		}
		offset += size
	}
	return nil
}
