// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/record"
)

// CheckOwnership - the record must be administered by identity
func CheckOwnership(target *record.Record, identity *account.Account) error {
	if !identity.Equal(target.Administrator) {
		return fault.OwnershipMismatch
	}
	return nil
}
