// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchain

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/linearchain/utils/logging"
)

// Chain is a single linear sequence of headers held fully in memory, rooted
// at genesis. A chain owns its headers; headers are never shared between
// chains and linkage is by digest value only, so chains never alias mutable
// state.
//
// A chain must only be used from one goroutine at a time. Disjoint chains
// need no coordination between each other.
type Chain struct {
	hasher  Hasher
	log     logging.Logger
	metrics *metrics

	// headers is in construction order, genesis first.
	headers []*Header
}

// NewChain returns a chain seeded with the genesis header, set up according
// to [config].
func NewChain(config Config) (*Chain, error) {
	metrics, err := newMetrics(config.Namespace, config.Registerer)
	if err != nil {
		return nil, err
	}

	hasher := config.Hasher
	if hasher == nil {
		hasher = NewHasher()
	}
	log := config.Log
	if log == nil {
		log = logging.NoLog
	}
	return &Chain{
		hasher:  hasher,
		log:     log,
		metrics: metrics,
		headers: []*Header{Genesis()},
	}, nil
}

// Append builds the child of the current tip, appends it and returns it.
func (c *Chain) Append() *Header {
	child := c.Tip().Child(c.hasher)
	c.headers = append(c.headers, child)
	c.metrics.observeTip(child.Height)
	c.log.Debug("appended header",
		zap.Uint64("height", child.Height),
		zap.Stringer("parentID", child.ParentID),
	)
	return child
}

// AppendHeader admits an externally built header if and only if it is a
// valid child of the current tip, reporting whether it was appended. The
// checks are the same parent-digest and height checks a verifier applies to
// one continuation step.
func (c *Chain) AppendHeader(header *Header) bool {
	if header == nil {
		return false
	}

	tip := c.Tip()
	if parentID := c.hasher.HashHeader(tip); parentID != header.ParentID {
		c.log.Debug("rejected header",
			zap.Uint64("height", header.Height),
			zap.Stringer("expectedParentID", parentID),
			zap.Stringer("parentID", header.ParentID),
		)
		return false
	}
	if expectedHeight := tip.Height + 1; expectedHeight != header.Height {
		c.log.Debug("rejected header",
			zap.Uint64("expectedHeight", expectedHeight),
			zap.Uint64("height", header.Height),
		)
		return false
	}

	c.headers = append(c.headers, header)
	c.metrics.observeTip(header.Height)
	c.log.Debug("appended header",
		zap.Uint64("height", header.Height),
		zap.Stringer("parentID", header.ParentID),
	)
	return true
}

// Tip returns the most recently appended header.
func (c *Chain) Tip() *Header {
	return c.headers[len(c.headers)-1]
}

// Len returns the number of headers in the chain, including genesis.
func (c *Chain) Len() int {
	return len(c.headers)
}

// Headers returns a copy of the chain's headers in construction order,
// genesis first.
func (c *Chain) Headers() []*Header {
	return slices.Clone(c.headers)
}

// Verify re-checks the whole chain from its first element.
func (c *Chain) Verify() bool {
	v := Verifier{
		hasher:  c.hasher,
		log:     c.log,
		metrics: c.metrics,
	}
	return v.VerifySubChain(c.headers[0], c.headers[1:])
}
