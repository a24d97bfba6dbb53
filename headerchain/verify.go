// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchain

import (
	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"

	"github.com/ava-labs/linearchain/utils/logging"
)

// Config configures a Verifier or a Chain. The zero value selects the
// default sha256 hasher, no logging and no metrics.
type Config struct {
	// Hasher produces header digests. Nil selects the default sha256 hasher.
	Hasher Hasher

	// Log receives structured verification events. Nil disables logging.
	Log logging.Logger

	// Namespace prefixes the prometheus metric names.
	Namespace string

	// Registerer receives the verification metrics. Nil disables metrics.
	Registerer prometheus.Registerer
}

// Verifier checks that header sequences are valid, contiguous, hash-linked
// continuations of a trusted header.
type Verifier struct {
	hasher  Hasher
	log     logging.Logger
	metrics *metrics
}

// NewVerifier returns a verifier set up according to [config].
func NewVerifier(config Config) (*Verifier, error) {
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
	return &Verifier{
		hasher:  hasher,
		log:     log,
		metrics: metrics,
	}, nil
}

// VerifySubChain reports whether [chain] is a valid continuation of [start]:
// every header's parent digest must equal the digest of the header before it
// and every height must increase by exactly one. An empty continuation is
// trivially valid; the verification of an entire chain is VerifySubChain of
// a trusted genesis header against the remaining headers.
//
// [start] itself is assumed to already be known valid and is not re-checked.
// The first broken link fails the whole continuation, no matter how
// well-formed the headers after it look.
//
// This is a pure predicate: malformed input, including nil headers, yields
// false rather than an error or a panic.
func (v *Verifier) VerifySubChain(start *Header, chain []*Header) bool {
	if len(chain) == 0 {
		return true
	}
	if start == nil {
		v.metrics.chainInvalid()
		return false
	}

	// The recursive definition (check the head, recurse on the tail) is run
	// as a loop over an explicit expected-predecessor so verifying long
	// chains cannot grow the call stack.
	prev := start
	for i, header := range chain {
		if header == nil {
			v.log.Debug("rejecting sub-chain",
				zap.Int("position", i),
				zap.String("reason", "nil header"),
			)
			v.metrics.chainInvalid()
			return false
		}
		if parentID := v.hasher.HashHeader(prev); parentID != header.ParentID {
			v.log.Debug("rejecting sub-chain",
				zap.Int("position", i),
				zap.Uint64("height", header.Height),
				zap.Stringer("expectedParentID", parentID),
				zap.Stringer("parentID", header.ParentID),
			)
			v.metrics.chainInvalid()
			return false
		}
		if expectedHeight := prev.Height + 1; expectedHeight != header.Height {
			v.log.Debug("rejecting sub-chain",
				zap.Int("position", i),
				zap.Uint64("expectedHeight", expectedHeight),
				zap.Uint64("height", header.Height),
			)
			v.metrics.chainInvalid()
			return false
		}
		v.metrics.linkVerified()
		prev = header
	}

	v.log.Verbo("verified sub-chain",
		zap.Uint64("startHeight", start.Height),
		zap.Int("length", len(chain)),
	)
	v.metrics.chainValid()
	return true
}

// VerifySubChain reports whether [chain] is a valid continuation of [start]
// under the default sha256 hasher.
func VerifySubChain(start *Header, chain []*Header) bool {
	v := Verifier{
		hasher: NewHasher(),
		log:    logging.NoLog,
	}
	return v.VerifySubChain(start, chain)
}
