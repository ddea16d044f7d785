// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/recordd/fault"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	publicLength  = 32
	privateLength = 32
)

// MakeKeyPair - create a new public/private keypair and write them
// to separate files, neither file may already exist
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	// keys are encoded in in Z85 (ZeroMQ Base-85 Encoding) see: http://rfc.zeromq.org/spec:32
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicKey = taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateKey = taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = writeNewFile(publicKeyFileName, publicKey, 0666); nil != err {
		return err
	}

	if err = writeNewFile(privateKeyFileName, privateKey, 0600); nil != err {
		os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

func writeNewFile(fileName string, data string, mode os.FileMode) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if nil != err {
		return err
	}
	_, err = f.WriteString(data)
	if nil != err {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadPublicKeyFile - read a tagged public key file as 32 bytes
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPublicKey(string(data))
}

// ReadPrivateKeyFile - read a tagged private key file as 32 bytes
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPrivateKey(string(data))
}

// ReadPublicKey - read a public key from a string returning it as 32 bytes
func ReadPublicKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.InvalidPublicKeyFile
	}
	return data, nil
}

// ReadPrivateKey - read a private key from a string returning it as 32 bytes
func ReadPrivateKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.InvalidPrivateKeyFile
	}
	return data, nil
}

// ParseKey - decode a tagged key
//
// returns:
//   key bytes
//   true if private
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)
	if strings.HasPrefix(s, taggedPrivate) {
		h, err := hex.DecodeString(s[len(taggedPrivate):])
		if nil != err {
			return nil, false, err
		}
		if len(h) != privateLength {
			return nil, false, fault.InvalidPrivateKeyFile
		}
		return h, true, nil
	} else if strings.HasPrefix(s, taggedPublic) {
		h, err := hex.DecodeString(s[len(taggedPublic):])
		if nil != err {
			return nil, false, err
		}
		if len(h) != publicLength {
			return nil, false, fault.InvalidPublicKeyFile
		}
		return h, false, nil
	}

	return nil, false, fault.InvalidPublicKeyFile
}
