// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/attestation"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/record"
	"github.com/bitmark-inc/recordd/rpc/ratelimit"
)

// Ledger - the record host operations used by the RPC
type Ledger interface {
	Create(*ledger.CreateRequest) (*record.Record, error)
	Write(record.Address, *attestation.Attestation, []byte) (*record.Record, error)
	Get(record.Address) (*record.Record, error)
	Identity() *account.Account
}

// Record - type for the RPC
type Record struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ledger    Ledger
	IsTesting bool
}

const (
	rateLimitRecord = 200
	rateBurstRecord = 100
)

// New - create the Record RPC service
func New(log *logger.L, l Ledger, isTesting bool) *Record {
	return &Record{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitRecord, rateBurstRecord),
		Ledger:    l,
		IsTesting: isTesting,
	}
}

// Reply - a record as returned by all methods
type Reply struct {
	Address       record.Address   `json:"address"`
	Administrator *account.Account `json:"administrator"`
	Balance       uint64           `json:"balance,string"`
	Capacity      int              `json:"capacity"`
	Data          []byte           `json:"data"`
}

func (reply *Reply) set(r *record.Record) {
	reply.Address = r.Address
	reply.Administrator = r.Administrator
	reply.Balance = r.Balance
	reply.Capacity = r.Capacity()
	reply.Data = r.Data
}

// Record create
// -------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Base     *account.Account `json:"base"`
	Seed     string           `json:"seed"`
	Capacity int              `json:"capacity"`
	Balance  uint64           `json:"balance,string"`
}

// Create - allocate a record administered by this host
func (rec *Record) Create(arguments *CreateArguments, reply *Reply) error {
	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	log := rec.Log

	if nil == arguments || nil == arguments.Base {
		return fault.MissingParameters
	}
	if arguments.Base.IsTesting() != rec.IsTesting {
		return fault.WrongNetworkForPublicKey
	}

	log.Infof("Record.Create: base: %s  seed: %q  capacity: %d", arguments.Base, arguments.Seed, arguments.Capacity)

	r, err := rec.Ledger.Create(&ledger.CreateRequest{
		Base:     arguments.Base,
		Seed:     arguments.Seed,
		Capacity: arguments.Capacity,
		Balance:  arguments.Balance,
	})
	if nil != err {
		return err
	}

	reply.set(r)
	return nil
}

// Record write
// ------------

// WriteArguments - arguments for RPC
//
// Signature is over attestation.Message(Address, Payload)
type WriteArguments struct {
	Address   record.Address    `json:"address"`
	Signer    *account.Account  `json:"signer"`
	Signature account.Signature `json:"signature"`
	Payload   []byte            `json:"payload"`
}

// Write - replace the data of a record
func (rec *Record) Write(arguments *WriteArguments, reply *Reply) error {
	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	log := rec.Log

	if nil == arguments {
		return fault.MissingParameters
	}

	signer := (*attestation.Attestation)(nil)
	if nil != arguments.Signer {
		if arguments.Signer.IsTesting() != rec.IsTesting {
			return fault.WrongNetworkForPublicKey
		}
		signer = &attestation.Attestation{
			Signer:    arguments.Signer,
			Signature: arguments.Signature,
		}
	}

	log.Infof("Record.Write: address: %s  signer: %s  payload: %d bytes", arguments.Address, arguments.Signer, len(arguments.Payload))

	r, err := rec.Ledger.Write(arguments.Address, signer, arguments.Payload)
	if nil != err {
		log.Infof("Record.Write: address: %s  kind: %s  error: %s", arguments.Address, fault.Kind(err), err)
		return err
	}

	reply.set(r)
	return nil
}

// Record get
// ----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Address record.Address `json:"address"`
}

// Get - read a record
func (rec *Record) Get(arguments *GetArguments, reply *Reply) error {
	if err := ratelimit.Limit(rec.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	rec.Log.Debugf("Record.Get: address: %s", arguments.Address)

	r, err := rec.Ledger.Get(arguments.Address)
	if nil != err {
		return err
	}

	reply.set(r)
	return nil
}
