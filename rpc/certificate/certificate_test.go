// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/rpc/certificate"
)

func TestGenerateAndLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := os.MkdirTemp("", "certificate")
	assert.Nil(t, err, "temporary directory error")
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err = certificate.Generate("test", certificateFile, keyFile, []string{"127.0.0.1"})
	assert.Nil(t, err, "generate error")

	err = certificate.Generate("test", certificateFile, keyFile, nil)
	assert.NotNil(t, err, "existing certificate overwritten")

	log := logger.New(fixtures.LogCategory)
	tlsConfig, fingerprint, err := certificate.Load(log, "test", certificateFile, keyFile)
	assert.Nil(t, err, "load error")

	cer, _ := os.ReadFile(certificateFile)
	key, _ := os.ReadFile(keyFile)
	pair, _ := tls.X509KeyPair(cer, key)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")

	_, _, err = certificate.Get(log, "test", string(key), string(cer))
	assert.NotNil(t, err, "swapped certificate and key accepted")

	_, _, err = certificate.Load(log, "test", filepath.Join(dir, "missing.crt"), keyFile)
	assert.NotNil(t, err, "missing certificate accepted")
}
