// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchain

import (
	"github.com/ava-labs/linearchain/ids"
)

// Root is the unit placeholder for the commitments a fuller header design
// will eventually carry. Keeping these fields structurally present means the
// hashing and linkage contracts will not change shape when the extrinsics
// root, state root and consensus digest are later given real content.
type Root struct{}

// Header is the metadata record for one block, excluding its payload.
//
// A header is immutable once constructed. It is either the genesis header or
// the child of an existing header; linkage to the parent is by digest value
// only, never by reference.
type Header struct {
	// ParentID is the digest of the preceding header. It is [ids.Empty] for
	// the genesis header, which has no real parent.
	ParentID ids.ID `json:"parentID"`

	// Height is this header's distance from genesis. The genesis header has
	// height 0.
	Height uint64 `json:"height"`

	ExtrinsicsRoot  Root `json:"-"`
	StateRoot       Root `json:"-"`
	ConsensusDigest Root `json:"-"`
}

// Genesis returns the canonical starting header of a chain: an empty parent
// digest, height 0 and the placeholder commitments at their empty value.
func Genesis() *Header {
	return &Header{
		ParentID: ids.Empty,
		Height:   0,
	}
}

// Child returns a new header extending [h]: its parent digest is
// [hasher]'s digest of [h] and its height is one above [h]'s. The placeholder
// commitments are carried forward unchanged. [h] is never modified.
//
// A nil [hasher] selects the default sha256 hasher. Height arithmetic wraps
// at the uint64 boundary; chains are never expected to come anywhere near
// that height.
func (h *Header) Child(hasher Hasher) *Header {
	if hasher == nil {
		hasher = NewHasher()
	}
	child := *h
	child.ParentID = hasher.HashHeader(h)
	child.Height = h.Height + 1
	return &child
}
