// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	CannotDecodeAccount      = InvalidError("cannot decode account")
	CapacityOutOfRange       = LengthError("capacity out of range")
	ChecksumMismatch         = ProcessError("checksum mismatch")
	ConfigurationNotTable    = InvalidError("configuration is not a table")
	DatabaseIsNotSet         = ProcessError("database is not set")
	InvalidCertificate       = InvalidError("invalid certificate")
	InvalidChain             = InvalidError("invalid chain")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidKeyLength         = InvalidError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidPayloadEncoding   = InvalidError("invalid payload encoding")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidPrivateKeyFile    = InvalidError("invalid private key file")
	InvalidPublicKeyFile     = InvalidError("invalid public key file")
	InvalidSignature         = InvalidError("invalid signature")
	MissingAuthorization     = AuthorisationError("missing authorization")
	MissingParameters        = InvalidError("missing parameters")
	NotAPublicKey            = InvalidError("not a public key")
	NotAvailableInReadOnly   = ProcessError("not available in read-only mode")
	NotEnoughAccounts        = InvalidError("not enough accounts")
	NotInitialised           = NotFoundError("not initialised")
	NotPrivateKey            = InvalidError("not a private key")
	OwnershipMismatch        = AuthorisationError("ownership mismatch")
	PayloadTooLarge          = LengthError("payload too large")
	RateLimiting             = InvalidError("rate limiting")
	RecordExists             = ExistsError("record already exists")
	RecordNotFound           = NotFoundError("record not found")
	RecordTruncated          = RecordError("record truncated")
	SeedTooLong              = LengthError("seed too long")
	TransactionNotStarted    = ProcessError("transaction not started")
	WrongAccountType         = InvalidError("wrong account type")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }

// EncodingError - payload failed strict text validation
//
// Offset is the position of the first byte that does not start a
// valid UTF-8 sequence
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s at offset: %d", InvalidPayloadEncoding, e.Offset)
}

// Is - allow errors.Is(err, fault.InvalidPayloadEncoding)
func (e *EncodingError) Is(target error) bool {
	return target == InvalidPayloadEncoding
}

// Unwrap - expose the underlying class
func (e *EncodingError) Unwrap() error {
	return InvalidPayloadEncoding
}
