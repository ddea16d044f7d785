// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/attestation"
	"github.com/bitmark-inc/recordd/fault"
)

// VerifySigner - the attestation must carry a valid signature over
// message, returns the asserted identity
func VerifySigner(log *logger.L, signer *attestation.Attestation, message []byte) (*account.Account, error) {
	identity := signer.AssertedIdentity(message)
	if nil == identity {
		return nil, fault.MissingAuthorization
	}
	log.Infof("signed by: %s", identity)
	return identity, nil
}
