// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchaintest

import (
	"github.com/ava-labs/linearchain/headerchain"
)

const GenesisHeight uint64 = 0

// Genesis returns a fresh genesis header fixture.
func Genesis() *headerchain.Header {
	return headerchain.Genesis()
}

// BuildChildHeader returns the valid child of [parent] under the default
// hasher.
func BuildChildHeader(parent *headerchain.Header) *headerchain.Header {
	return parent.Child(nil)
}

// BuildChain returns a valid chain of [length] headers in construction
// order: genesis first, then repeated children of the tail.
func BuildChain(length int) []*headerchain.Header {
	if length <= 0 {
		return nil
	}
	chain := make([]*headerchain.Header, 1, length)
	chain[0] = Genesis()
	for len(chain) < length {
		chain = append(chain, BuildChildHeader(chain[len(chain)-1]))
	}
	return chain
}

// BuildBrokenChain returns a chain of three headers that starts with a
// proper genesis header but does not verify from its first element: every
// entry is an independently built genesis-shaped header, so no parent digest
// matches and no height advances. Any construction breaking linkage or
// height monotonicity at some position would serve equally well as a
// negative fixture.
func BuildBrokenChain() []*headerchain.Header {
	return []*headerchain.Header{
		Genesis(),
		Genesis(),
		Genesis(),
	}
}
