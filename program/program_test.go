// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/attestation"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/program"
	"github.com/bitmark-inc/recordd/record"
)

// a write request signed by the fixture signer
func signedInvocation(target *record.Record, payload []byte) *program.Invocation {
	return signedBy(fixtures.SignerKey, target, payload)
}

func signedBy(key *account.PrivateKey, target *record.Record, payload []byte) *program.Invocation {
	message := attestation.Message(target.Address, payload)
	return &program.Invocation{
		Target:  target,
		Signer:  attestation.New(key, message),
		Payload: payload,
	}
}

func newProgram() *program.Program {
	return program.New(logger.New(fixtures.LogCategory), fixtures.Program)
}

func TestHappyPath(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	target := record.New(record.Address{1}, fixtures.Program, 4)

	err := p.Process(signedInvocation(target, []byte{12, 24, 48}))
	assert.Nil(t, err, "first write")
	assert.Equal(t, []byte{12, 24, 48, 0}, target.Data, "wrong data after first write")

	err = p.Process(signedInvocation(target, []byte{22}))
	assert.Nil(t, err, "second write")
	assert.Equal(t, []byte{22, 0, 0, 0}, target.Data, "wrong data after second write")
}

func TestInvalidCharacters(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	target := record.New(record.Address{2}, fixtures.Program, 1024)
	before := append([]byte(nil), target.Data...)

	err := p.Process(signedInvocation(target, []byte{80, 114, 101, 231, 111}))
	assert.True(t, errors.Is(err, fault.InvalidPayloadEncoding), "wrong error: %v", err)

	var encoding *fault.EncodingError
	if assert.True(t, errors.As(err, &encoding), "not an encoding error") {
		assert.Equal(t, 3, encoding.Offset, "wrong offset")
	}
	assert.Equal(t, before, target.Data, "record modified")
}

func TestPostcondition(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()

	payloads := [][]byte{
		{},
		[]byte("a"),
		[]byte("[{\"v\":\"milk\",\"c\":false}]"),
		[]byte("ünïcödé ✓"),
		bytes.Repeat([]byte("x"), 64),
	}

	for i, payload := range payloads {
		target := record.New(record.Address{3}, fixtures.Program, 64)
		for j := range target.Data {
			target.Data[j] = 0xaa
		}

		err := p.Process(signedInvocation(target, payload))
		if !assert.Nil(t, err, "%d: write error", i) {
			continue
		}

		expected := make([]byte, 64)
		copy(expected, payload)
		assert.Equal(t, expected, target.Data, "%d: wrong data", i)
		assert.Equal(t, 64, target.Capacity(), "%d: capacity changed", i)
	}
}

func TestIdempotent(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	once := record.New(record.Address{4}, fixtures.Program, 16)
	twice := record.New(record.Address{4}, fixtures.Program, 16)

	payload := []byte("same payload")

	assert.Nil(t, p.Process(signedInvocation(once, payload)), "write once")
	assert.Nil(t, p.Process(signedInvocation(twice, payload)), "write twice: 1")
	assert.Nil(t, p.Process(signedInvocation(twice, payload)), "write twice: 2")

	assert.Equal(t, once.Data, twice.Data, "repeated write differs")
}

func TestShrinkErasesRemainder(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	target := record.New(record.Address{5}, fixtures.Program, 32)

	long := []byte("a much longer first value")
	short := []byte("short")

	assert.Nil(t, p.Process(signedInvocation(target, long)), "long write")
	assert.Nil(t, p.Process(signedInvocation(target, short)), "short write")

	assert.Equal(t, short, target.Data[:len(short)], "wrong prefix")
	for i, b := range target.Data[len(short):] {
		if 0 != b {
			t.Fatalf("residual byte: 0x%02x at: %d", b, len(short)+i)
		}
	}
}

func TestOwnershipMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()

	// same key on another network is a different identity
	otherNetwork := &account.Account{
		Test:      !fixtures.Program.Test,
		PublicKey: fixtures.Program.PublicKey,
	}

	administrators := []*account.Account{
		fixtures.Other,
		fixtures.Signer,
		otherNetwork,
		nil,
	}

	for i, administrator := range administrators {
		target := record.New(record.Address{6}, administrator, 8)
		copy(target.Data, "keep")
		before := append([]byte(nil), target.Data...)

		err := p.Process(signedInvocation(target, []byte("overwrite")))
		assert.Equal(t, fault.OwnershipMismatch, err, "%d: wrong error", i)
		assert.Equal(t, before, target.Data, "%d: record modified", i)
	}
}

func TestMissingAuthorization(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	payload := []byte("text")

	target := record.New(record.Address{7}, fixtures.Program, 8)
	copy(target.Data, "keep")
	before := append([]byte(nil), target.Data...)

	valid := signedInvocation(target, payload)

	invocations := []*program.Invocation{
		// no attestation at all
		{Target: target, Signer: nil, Payload: payload},

		// signer present but nothing signed
		{Target: target, Signer: &attestation.Attestation{Signer: fixtures.Signer}, Payload: payload},

		// signature by another key
		{Target: target, Signer: &attestation.Attestation{Signer: fixtures.Signer, Signature: fixtures.OtherKey.Sign(attestation.Message(target.Address, payload))}, Payload: payload},

		// signature over a different payload
		{Target: target, Signer: valid.Signer, Payload: []byte("other")},

		// signature for a different record
		{Target: target, Signer: attestation.New(fixtures.SignerKey, attestation.Message(record.Address{8}, payload)), Payload: payload},
	}

	for i, invocation := range invocations {
		err := p.Process(invocation)
		assert.Equal(t, fault.MissingAuthorization, err, "%d: wrong error", i)
		assert.Equal(t, before, target.Data, "%d: record modified", i)
	}
}

func TestPayloadTooLarge(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	target := record.New(record.Address{9}, fixtures.Program, 4)
	copy(target.Data, "abcd")

	err := p.Process(signedInvocation(target, []byte("abcde")))
	assert.Equal(t, fault.PayloadTooLarge, err, "wrong error")
	assert.Equal(t, []byte("abcd"), target.Data, "record modified")

	// exactly full is allowed
	err = p.Process(signedInvocation(target, []byte("wxyz")))
	assert.Nil(t, err, "full capacity write")
	assert.Equal(t, []byte("wxyz"), target.Data, "wrong data")
}

func TestCheckOrder(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	invalid := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

	// every check fails: ownership is reported
	foreign := record.New(record.Address{10}, fixtures.Other, 4)
	err := p.Process(&program.Invocation{Target: foreign, Payload: invalid})
	assert.Equal(t, fault.OwnershipMismatch, err, "ownership not checked first")

	// signature and encoding fail: signature is reported
	owned := record.New(record.Address{10}, fixtures.Program, 4)
	err = p.Process(&program.Invocation{Target: owned, Payload: invalid})
	assert.Equal(t, fault.MissingAuthorization, err, "signature not checked second")

	// encoding and size fail: encoding is reported
	err = p.Process(signedInvocation(owned, invalid))
	assert.True(t, errors.Is(err, fault.InvalidPayloadEncoding), "encoding not checked before size: %v", err)
}

func TestMissingTarget(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	p := newProgram()
	assert.Equal(t, fault.NotEnoughAccounts, p.Process(nil), "nil invocation accepted")
	assert.Equal(t, fault.NotEnoughAccounts, p.Process(&program.Invocation{}), "missing target accepted")
}

func TestInvocationFromAccounts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	target := record.New(record.Address{11}, fixtures.Program, 4)
	payload := []byte{12, 24, 48}
	signer := attestation.New(fixtures.SignerKey, attestation.Message(target.Address, payload))

	// extra handles are ignored
	invocation, err := program.InvocationFromAccounts([]interface{}{target, signer, "extra", 42}, payload)
	assert.Nil(t, err, "conversion error")
	assert.Equal(t, target, invocation.Target, "wrong target")
	assert.Equal(t, signer, invocation.Signer, "wrong signer")

	assert.Nil(t, newProgram().Process(invocation), "process error")
	assert.Equal(t, []byte{12, 24, 48, 0}, target.Data, "wrong data")

	_, err = program.InvocationFromAccounts([]interface{}{target}, payload)
	assert.Equal(t, fault.NotEnoughAccounts, err, "single handle accepted")

	_, err = program.InvocationFromAccounts([]interface{}{signer, target}, payload)
	assert.Equal(t, fault.WrongAccountType, err, "swapped handles accepted")
}

func TestIdentity(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assert.True(t, fixtures.Program.Equal(newProgram().Identity()), "wrong identity")
}
