// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"errors"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/attestation"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/record"
)

// Program - the write handler for records it administers
type Program struct {
	log      *logger.L
	identity *account.Account
}

// Invocation - one write request
type Invocation struct {
	Target  *record.Record
	Signer  *attestation.Attestation
	Payload []byte
}

// New - create a program with its own administrator identity
func New(log *logger.L, identity *account.Account) *Program {
	return &Program{
		log:      log,
		identity: identity,
	}
}

// Identity - the administrator identity of this program
func (p *Program) Identity() *account.Account {
	return p.identity
}

// InvocationFromAccounts - convert a positional account list
//
// the first handle is the target record, the second the signer
// attestation; any further handles are ignored
func InvocationFromAccounts(handles []interface{}, payload []byte) (*Invocation, error) {
	if len(handles) < 2 {
		return nil, fault.NotEnoughAccounts
	}
	target, ok := handles[0].(*record.Record)
	if !ok || nil == target {
		return nil, fault.WrongAccountType
	}
	signer, ok := handles[1].(*attestation.Attestation)
	if !ok {
		return nil, fault.WrongAccountType
	}
	return &Invocation{
		Target:  target,
		Signer:  signer,
		Payload: payload,
	}, nil
}

// Process - admit and perform one write
//
// the target record data is modified only when nil is returned
func (p *Program) Process(invocation *Invocation) error {
	if nil == invocation || nil == invocation.Target {
		return fault.NotEnoughAccounts
	}

	log := p.log
	target := invocation.Target

	if err := CheckOwnership(target, p.identity); nil != err {
		log.Warnf("record: %s  administrator: %s  error: %s", target.Address, target.Administrator, err)
		return err
	}

	message := attestation.Message(target.Address, invocation.Payload)
	if _, err := VerifySigner(log, invocation.Signer, message); nil != err {
		log.Warnf("record: %s  error: %s", target.Address, err)
		return err
	}

	if err := ValidatePayload(invocation.Payload); nil != err {
		var encoding *fault.EncodingError
		if errors.As(err, &encoding) {
			log.Warnf("only UTF-8 text supported, invalid from: %d", encoding.Offset)
		}
		return err
	}

	if err := WriteBounded(target.Data, invocation.Payload); nil != err {
		log.Warnf("record: %s  payload: %d bytes  capacity: %d  error: %s", target.Address, len(invocation.Payload), target.Capacity(), err)
		return err
	}

	log.Debugf("record: %s  wrote: %d bytes", target.Address, len(invocation.Payload))
	return nil
}
