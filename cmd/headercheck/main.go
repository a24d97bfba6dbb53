// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// headercheck verifies that a JSON-encoded header chain is a valid
// hash-linked continuation of the canonical genesis header.
//
// The input file holds a JSON array of headers in construction order,
// genesis first. Exit status 0 means the chain verified; 1 means it did not
// or could not be read.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.uber.org/zap"

	"github.com/ava-labs/linearchain/headerchain"
	"github.com/ava-labs/linearchain/utils/logging"
)

const (
	chainFileKey = "chain-file"
	logLevelKey  = "log-level"
)

var (
	errMissingChainFile = errors.New("--chain-file is required")
	errEmptyChain       = errors.New("chain holds no headers")
	errUntrustedGenesis = errors.New("first header is not the canonical genesis header")
	errInvalidChain     = errors.New("chain failed verification")
)

// parseViper returns the viper environment from parsing [args]
func parseViper(args []string) (*viper.Viper, error) {
	fs := pflag.NewFlagSet("headercheck", pflag.ContinueOnError)
	fs.String(chainFileKey, "", "Path of the JSON file holding the header chain to verify")
	fs.String(logLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

func run(v *viper.Viper, log logging.Logger) error {
	path := v.GetString(chainFileKey)
	if path == "" {
		return errMissingChainFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't read chain file: %w", err)
	}

	var headers []*headerchain.Header
	if err := json.Unmarshal(raw, &headers); err != nil {
		return fmt.Errorf("couldn't parse chain file: %w", err)
	}
	if len(headers) == 0 {
		return errEmptyChain
	}

	// Verifying an entire chain from scratch means starting from a header we
	// already trust, not from whatever the file claims its first header is.
	if headers[0] == nil || *headers[0] != *headerchain.Genesis() {
		return errUntrustedGenesis
	}

	verifier, err := headerchain.NewVerifier(headerchain.Config{Log: log})
	if err != nil {
		return err
	}
	if !verifier.VerifySubChain(headers[0], headers[1:]) {
		return errInvalidChain
	}

	log.Info("chain verified",
		zap.Int("headers", len(headers)),
		zap.Uint64("tipHeight", headers[len(headers)-1].Height),
	)
	return nil
}

func main() {
	v, err := parseViper(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse flags: %s\n", err)
		os.Exit(1)
	}

	level, err := logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse log level: %s\n", err)
		os.Exit(1)
	}
	log := logging.NewDefaultLogger("headercheck", level)

	if err := run(v, log); err != nil {
		log.Error("verification failed", zap.Error(err))
		log.Stop()
		os.Exit(1)
	}
	log.Stop()
}
