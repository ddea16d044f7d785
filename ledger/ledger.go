// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/attestation"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/messagebus"
	"github.com/bitmark-inc/recordd/metrics"
	"github.com/bitmark-inc/recordd/program"
	"github.com/bitmark-inc/recordd/record"
	"github.com/bitmark-inc/recordd/storage"
)

// capacity limits for new records
const (
	MinimumCapacity = 1
	MaximumCapacity = 10240
)

// UpdateCommand - broadcast command for a changed record
const UpdateCommand = "record"

// Ledger - the record host
type Ledger struct {
	log     *logger.L
	program *program.Program
	pool    storage.Handle
	metrics *metrics.Metrics
	locks   *addressLock
}

// CreateRequest - parameters to allocate a record
type CreateRequest struct {
	Base     *account.Account
	Seed     string
	Capacity int
	Balance  uint64
}

// New - host a program over a record pool
//
// m may be nil
func New(log *logger.L, p *program.Program, pool storage.Handle, m *metrics.Metrics) *Ledger {
	return &Ledger{
		log:     log,
		program: p,
		pool:    pool,
		metrics: m,
		locks:   newAddressLock(),
	}
}

// Identity - the administrator of all records created here
func (l *Ledger) Identity() *account.Account {
	return l.program.Identity()
}

// Create - allocate a zero filled record administered by the program
func (l *Ledger) Create(request *CreateRequest) (*record.Record, error) {
	if nil == request || nil == request.Base {
		return nil, fault.MissingParameters
	}
	if request.Capacity < MinimumCapacity || request.Capacity > MaximumCapacity {
		return nil, fault.CapacityOutOfRange
	}

	address, err := record.DeriveAddress(request.Base, request.Seed, l.program.Identity())
	if nil != err {
		return nil, err
	}

	unlock := l.locks.lock(address)
	defer unlock()

	if l.pool.Has(address[:]) {
		return nil, fault.RecordExists
	}

	r := record.New(address, l.program.Identity(), request.Capacity)
	r.Balance = request.Balance

	packed, err := l.store(r)
	if nil != err {
		return nil, err
	}

	l.log.Infof("created: %s  base: %s  seed: %q  capacity: %d", address, request.Base, request.Seed, request.Capacity)
	l.metrics.IncrementRecordsCreated()
	messagebus.Bus.Broadcast.Send(UpdateCommand, address[:], packed)

	return r, nil
}

// Write - run the program for one write and store the result
//
// the stored record is unchanged unless nil is returned
func (l *Ledger) Write(address record.Address, signer *attestation.Attestation, payload []byte) (r *record.Record, err error) {
	start := time.Now()
	defer func() {
		l.metrics.ObserveWrite(start, err, len(payload))
	}()

	unlock := l.locks.lock(address)
	defer unlock()

	current, err := l.get(address)
	if nil != err {
		return nil, err
	}

	target := current.Clone()
	invocation, err := program.InvocationFromAccounts([]interface{}{target, signer}, payload)
	if nil != err {
		return nil, err
	}

	err = l.program.Process(invocation)
	if nil != err {
		return nil, err
	}

	packed, err := l.store(target)
	if nil != err {
		return nil, err
	}

	messagebus.Bus.Broadcast.Send(UpdateCommand, address[:], packed)

	return target, nil
}

// Get - read a record
func (l *Ledger) Get(address record.Address) (*record.Record, error) {
	unlock := l.locks.lock(address)
	defer unlock()

	return l.get(address)
}

// must hold address lock
func (l *Ledger) get(address record.Address) (*record.Record, error) {
	packed := l.pool.Get(address[:])
	if nil == packed {
		return nil, fault.RecordNotFound
	}

	r, err := record.Unpack(address, packed)
	if nil != err {
		l.log.Errorf("record: %s  unpack error: %s", address, err)
		return nil, err
	}
	return r, nil
}

// must hold address lock
func (l *Ledger) store(r *record.Record) ([]byte, error) {
	packed, err := r.Pack()
	if nil != err {
		return nil, err
	}

	err = l.pool.Begin()
	if nil != err {
		return nil, err
	}
	l.pool.Put(r.Address[:], packed)
	err = l.pool.Commit()
	if nil != err {
		l.log.Errorf("record: %s  commit error: %s", r.Address, err)
		l.pool.Abort()
		return nil, err
	}

	return packed, nil
}
