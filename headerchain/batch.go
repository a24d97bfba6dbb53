// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// VerifyChains verifies each chain in [chains] from its own first element,
// returning one result per chain in order. Disjoint chains never alias
// mutable state, so they are verified concurrently; each chain is still
// walked sequentially because every step depends on the digest of the header
// before it.
//
// An empty chain is vacuously valid. If [ctx] is cancelled, chains not yet
// verified report false.
func VerifyChains(ctx context.Context, verifier *Verifier, chains [][]*Header) []bool {
	results := make([]bool, len(chains))

	eg, ctx := errgroup.WithContext(ctx)
	for i, chain := range chains {
		i := i
		chain := chain
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(chain) == 0 {
				results[i] = true
				return nil
			}
			results[i] = verifier.VerifySubChain(chain[0], chain[1:])
			return nil
		})
	}
	// The only error a worker can return is context cancellation, which
	// leaves the unvisited results false.
	_ = eg.Wait()
	return results
}
