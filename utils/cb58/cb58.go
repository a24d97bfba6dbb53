// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cb58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"github.com/ava-labs/linearchain/utils/hashing"
)

const (
	// maximum length byte slice can be marshalled as a string
	// using the CB58 encoding
	maxCB58EncodeSize = 2048
	checksumLen       = 4
)

var (
	ErrEncodingOverFlow = errors.New("encoding overflow")
	errMissingChecksum  = errors.New("input string is smaller than the checksum size")
	errBadChecksum      = errors.New("invalid input checksum")
)

// Encode [bytes] to a string using cb58 format
func Encode(bytes []byte) (string, error) {
	if len(bytes) > maxCB58EncodeSize {
		return "", fmt.Errorf("%w: max size to encode is %d but requested size is %d",
			ErrEncodingOverFlow, maxCB58EncodeSize, len(bytes))
	}
	checked := make([]byte, len(bytes)+checksumLen)
	copy(checked, bytes)
	copy(checked[len(bytes):], hashing.Checksum(bytes, checksumLen))
	return base58.Encode(checked), nil
}

// Decode [str] to bytes from cb58
func Decode(str string) ([]byte, error) {
	decodedBytes, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}
	if len(decodedBytes) < checksumLen {
		return nil, errMissingChecksum
	}
	// Verify the checksum
	rawBytes := decodedBytes[:len(decodedBytes)-checksumLen]
	checksum := decodedBytes[len(decodedBytes)-checksumLen:]
	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, errBadChecksum
	}
	return rawBytes, nil
}
