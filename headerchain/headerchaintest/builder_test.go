// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchaintest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/linearchain/headerchain"
	"github.com/ava-labs/linearchain/ids"
)

func TestGenesisFixture(t *testing.T) {
	require := require.New(t)

	genesis := Genesis()
	require.Equal(GenesisHeight, genesis.Height)
	require.Equal(ids.Empty, genesis.ParentID)
}

func TestBuildChainLengthFive(t *testing.T) {
	require := require.New(t)

	chain := BuildChain(5)
	require.Len(chain, 5)
	require.Equal(Genesis(), chain[0])
	for i, header := range chain {
		require.Equal(uint64(i), header.Height)
	}
	require.True(headerchain.VerifySubChain(chain[0], chain[1:]))
}

func TestBuildChainLengths(t *testing.T) {
	tests := []struct {
		length   int
		expected int
	}{
		{length: -1, expected: 0},
		{length: 0, expected: 0},
		{length: 1, expected: 1},
		{length: 2, expected: 2},
		{length: 17, expected: 17},
	}
	for _, test := range tests {
		t.Run(strconv.Itoa(test.length), func(t *testing.T) {
			require := require.New(t)

			chain := BuildChain(test.length)
			require.Len(chain, test.expected)
			if len(chain) > 0 {
				require.True(headerchain.VerifySubChain(chain[0], chain[1:]))
			}
		})
	}
}

func TestBuildBrokenChainIsReallyBroken(t *testing.T) {
	require := require.New(t)

	chain := BuildBrokenChain()
	require.GreaterOrEqual(len(chain), 3)
	require.Equal(Genesis(), chain[0])
	require.False(headerchain.VerifySubChain(chain[0], chain[1:]))
}
