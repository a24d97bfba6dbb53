// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchain

import (
	"encoding/binary"

	"github.com/ava-labs/linearchain/ids"
	"github.com/ava-labs/linearchain/utils/hashing"
)

const (
	heightLen = 8

	// Each placeholder commitment reserves a full digest-width zero region in
	// the preimage, so the layout is unchanged once the commitments carry
	// real content.
	rootLen = ids.IDLen

	preimageLen = ids.IDLen + heightLen + 3*rootLen
)

var _ Hasher = (*sha256Hasher)(nil)

// Hasher produces the digest committing to a header's content.
//
// Implementations must be deterministic: repeated calls over an unchanged
// header always yield the same digest. The chain treats the digest as
// collision resistant; if two distinct headers ever hash identically, a
// forged sub-chain could verify. That is a platform-level assumption, not
// something verification defends against.
type Hasher interface {
	HashHeader(header *Header) ids.ID
}

// NewHasher returns the default sha256-backed header hasher.
func NewHasher() Hasher {
	return sha256Hasher{}
}

type sha256Hasher struct{}

func (sha256Hasher) HashHeader(header *Header) ids.ID {
	if header == nil {
		return ids.Empty
	}

	preimage := make([]byte, preimageLen)
	copy(preimage, header.ParentID[:])
	binary.BigEndian.PutUint64(preimage[ids.IDLen:], header.Height)
	// The three trailing root regions stay zero while the placeholder
	// commitments are unit values.
	return hashing.ComputeHash256Array(preimage)
}
