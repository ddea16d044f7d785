// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS material for the RPC listeners
package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// self signed certificates last ten years
const validity = 10 * 365 * 24 * time.Hour

// Get - verify that a set of listener parameters are valid
// and return the certificate
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read PEM files then Get
func Load(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	certificate, err := os.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, fin, err
	}
	key, err := os.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Generate - write a new self signed certificate and key
//
// neither file may already exist
func Generate(name string, certificateFileName string, keyFileName string, extraHosts []string) error {
	org := "recordd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	certificate, key, err := certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
	if nil != err {
		return err
	}

	if err = writeNewFile(certificateFileName, certificate, 0666); nil != err {
		return err
	}

	if err = writeNewFile(keyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

func writeNewFile(fileName string, data []byte, mode os.FileMode) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if nil != err {
		return err
	}
	_, err = f.Write(data)
	if nil != err {
		f.Close()
		return err
	}
	return f.Close()
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in recordd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
