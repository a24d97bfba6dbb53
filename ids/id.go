// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/ava-labs/linearchain/utils/cb58"
	"github.com/ava-labs/linearchain/utils/hashing"
)

const IDLen = hashing.HashLen

var (
	// Empty is a useful all zero value. It doubles as the parent digest of a
	// genesis header, which has no real parent.
	Empty = ID{}

	errMissingQuotes = errors.New("first and last characters should be quotes")
	errShortID       = errors.New("insufficient ID length")
)

// ID wraps a 32 byte digest used as an identifier
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an id
func ToID(bytes []byte) (ID, error) {
	hash, err := hashing.ToHash256(bytes)
	return ID(hash), err
}

// FromString is the inverse of ID.String()
func FromString(idStr string) (ID, error) {
	bytes, err := cb58.Decode(idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(bytes)
}

func (id ID) MarshalJSON() ([]byte, error) {
	str, err := cb58.Encode(id[:])
	if err != nil {
		return nil, err
	}
	return []byte("\"" + str + "\""), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" { // If "null", do nothing
		return nil
	} else if len(str) < 2 {
		return errShortID
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	// Parse start and end of string
	var err error
	*id, err = FromString(str[1:lastIndex])
	return err
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	var err error
	*id, err = FromString(string(text))
	return err
}

// Bytes returns the 32 byte digest as a slice. It is assumed this slice is not
// modified.
func (id ID) Bytes() []byte {
	return id[:]
}

// Hex returns a hex encoded string of this id.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of an ID
	str, _ := cb58.Encode(id[:])
	return str
}

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Prefix this id to create a more selective id. This can be used to store
// multiple values under the same key. For example:
// prefix1(id) -> confidence
// prefix2(id) -> vertex
// This will return a new id and not modify the original id.
func (id ID) Prefix(prefixes ...uint64) ID {
	packer := make([]byte, 0, len(prefixes)*8+IDLen)
	for _, prefix := range prefixes {
		packer = append(packer,
			byte(prefix>>56), byte(prefix>>48), byte(prefix>>40), byte(prefix>>32),
			byte(prefix>>24), byte(prefix>>16), byte(prefix>>8), byte(prefix),
		)
	}
	packer = append(packer, id[:]...)
	return hashing.ComputeHash256Array(packer)
}
