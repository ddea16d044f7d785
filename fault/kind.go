// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// names of the write rejection kinds
const (
	KindNone                   = "success"
	KindOwnershipMismatch      = "OwnershipMismatch"
	KindMissingAuthorization   = "MissingAuthorization"
	KindInvalidPayloadEncoding = "InvalidPayloadEncoding"
	KindPayloadTooLarge        = "PayloadTooLarge"
	KindOther                  = "other"
)

// Kind - classify an error returned by a record write
func Kind(err error) string {
	switch {
	case nil == err:
		return KindNone
	case errors.Is(err, OwnershipMismatch):
		return KindOwnershipMismatch
	case errors.Is(err, MissingAuthorization):
		return KindMissingAuthorization
	case errors.Is(err, InvalidPayloadEncoding):
		return KindInvalidPayloadEncoding
	case errors.Is(err, PayloadTooLarge):
		return KindPayloadTooLarge
	default:
		return KindOther
	}
}
