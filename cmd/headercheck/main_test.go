// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/linearchain/headerchain"
	"github.com/ava-labs/linearchain/headerchain/headerchaintest"
	"github.com/ava-labs/linearchain/utils/logging"
)

func writeChainFile(t *testing.T, chain []*headerchain.Header) string {
	t.Helper()
	require := require.New(t)

	raw, err := json.Marshal(chain)
	require.NoError(err)

	path := filepath.Join(t.TempDir(), "chain.json")
	require.NoError(os.WriteFile(path, raw, 0o600))
	return path
}

func runWithArgs(t *testing.T, args []string) error {
	t.Helper()

	v, err := parseViper(args)
	require.NoError(t, err)
	return run(v, logging.NoLog)
}

func TestRunValidChain(t *testing.T) {
	path := writeChainFile(t, headerchaintest.BuildChain(5))
	require.NoError(t, runWithArgs(t, []string{"--chain-file", path}))
}

func TestRunGenesisOnlyChain(t *testing.T) {
	path := writeChainFile(t, headerchaintest.BuildChain(1))
	require.NoError(t, runWithArgs(t, []string{"--chain-file", path}))
}

func TestRunBrokenChain(t *testing.T) {
	path := writeChainFile(t, headerchaintest.BuildBrokenChain())
	err := runWithArgs(t, []string{"--chain-file", path})
	require.ErrorIs(t, err, errInvalidChain)
}

func TestRunUntrustedGenesis(t *testing.T) {
	chain := headerchaintest.BuildChain(3)
	path := writeChainFile(t, chain[1:])
	err := runWithArgs(t, []string{"--chain-file", path})
	require.ErrorIs(t, err, errUntrustedGenesis)
}

func TestRunEmptyChain(t *testing.T) {
	path := writeChainFile(t, nil)
	err := runWithArgs(t, []string{"--chain-file", path})
	require.ErrorIs(t, err, errEmptyChain)
}

func TestRunMissingFlag(t *testing.T) {
	err := runWithArgs(t, nil)
	require.ErrorIs(t, err, errMissingChainFile)
}

func TestRunMissingFile(t *testing.T) {
	err := runWithArgs(t, []string{"--chain-file", filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
}

func TestRunMalformedFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "chain.json")
	require.NoError(os.WriteFile(path, []byte("{not json"), 0o600))

	err := runWithArgs(t, []string{"--chain-file", path})
	require.Error(err)
}
