// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/configuration"
	"github.com/bitmark-inc/recordd/publish"
	"github.com/bitmark-inc/recordd/rpc/listeners"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultIdentityPublicKeyFile = "recordd.public"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultBitmarkDatabase  = chain.Bitmark
	defaultTestingDatabase  = chain.Testing
	defaultLocalDatabase    = chain.Local

	defaultLogDirectory = "log"
	defaultLogFile      = "recordd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// IdentityType - the program administrator account
type IdentityType struct {
	PublicKey string `gluamapper:"public_key" json:"public_key"`
}

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// MetricsType - blank listen disables the metrics server
type MetricsType struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                     `gluamapper:"pidfile" json:"pidfile"`
	Chain         string                     `gluamapper:"chain" json:"chain"`
	Identity      IdentityType               `gluamapper:"identity" json:"identity"`
	Database      DatabaseType               `gluamapper:"database" json:"database"`
	ClientRPC     listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing    publish.Configuration      `gluamapper:"publish" json:"publish"`
	Metrics       MetricsType                `gluamapper:"metrics" json:"metrics"`
	Logging       logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Bitmark,

		Identity: IdentityType{
			PublicKey: defaultIdentityPublicKeyFile,
		},

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultBitmarkDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultBitmarkDatabase {
		switch options.Chain {
		case chain.Bitmark:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	// listen on the chain's well known port if nothing given
	if 0 == len(options.ClientRPC.Listen) {
		options.ClientRPC.Listen = []string{chain.DefaultConnect(options.Chain)}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Identity.PublicKey,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = configuration.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
