// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/linearchain/utils/hashing"
)

func TestID(t *testing.T) {
	require := require.New(t)

	id := ID{24}
	idCopy := ID{24}
	prefixed := id.Prefix(0)

	require.Equal(idCopy, id)
	require.Equal(prefixed, id.Prefix(0))
}

func TestIDPrefix(t *testing.T) {
	id := GenerateTestID()
	tests := []struct {
		name             string
		id               ID
		prefix           []uint64
		expectedPreimage []byte
	}{
		{
			name:             "empty prefix",
			id:               id,
			prefix:           []uint64{},
			expectedPreimage: id[:],
		},
		{
			name:   "1 prefix",
			id:     id,
			prefix: []uint64{1},
			expectedPreimage: append(
				[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
				id[:]...,
			),
		},
		{
			name:   "multiple prefixes",
			id:     id,
			prefix: []uint64{1, 256},
			expectedPreimage: append(
				append(
					[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
					0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00,
				),
				id[:]...,
			),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expected := ID(hashing.ComputeHash256Array(test.expectedPreimage))
			require.Equal(t, expected, test.id.Prefix(test.prefix...))
		})
	}
}

func TestIDFromString(t *testing.T) {
	require := require.New(t)

	id := ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'}
	idStr := id.String()
	id2, err := FromString(idStr)
	require.NoError(err)
	require.Equal(id, id2)
}

func TestIDFromStringError(t *testing.T) {
	tests := []struct {
		in string
	}{
		{""},
		{"foo"},
		{"foobar"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			_, err := FromString(test.in)
			require.Error(t, err)
		})
	}
}

func TestIDMarshalJSON(t *testing.T) {
	tests := []struct {
		label string
		in    ID
		out   []byte
		err   error
	}{
		{
			"ID{}",
			ID{},
			[]byte("\"11111111111111111111111111111111LpoYY\""),
			nil,
		},
		{
			"ID(\"ava labs\")",
			ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'},
			[]byte("\"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7\""),
			nil,
		},
	}
	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			require := require.New(t)

			out, err := json.Marshal(test.in)
			require.ErrorIs(err, test.err)
			require.Equal(test.out, out)
		})
	}
}

func TestIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		label     string
		in        []byte
		out       ID
		expectErr bool
	}{
		{
			"ID{}",
			[]byte("null"),
			ID{},
			false,
		},
		{
			"ID(\"ava labs\")",
			[]byte("\"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7\""),
			ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'},
			false,
		},
		{
			"missing start quote",
			[]byte("jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7\""),
			ID{},
			true,
		},
		{
			"missing end quote",
			[]byte("\"jvYi6Tn9idMi7BaymUVi9zWjg5tpmW7trfKG1AYJLKZJ2fsU7"),
			ID{},
			true,
		},
		{
			"ID(\"\")",
			[]byte("\"\""),
			ID{},
			true,
		},
	}
	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			require := require.New(t)

			foo := ID{}
			err := foo.UnmarshalJSON(test.in)
			if test.expectErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(test.out, foo)
		})
	}
}

func TestIDHex(t *testing.T) {
	require := require.New(t)

	id := ID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'}
	expected := "617661206c616273" + fmt.Sprintf("%0*d", 2*(IDLen-8), 0)
	require.Equal(expected, id.Hex())
}

func TestIDString(t *testing.T) {
	tests := []struct {
		label    string
		id       ID
		expected string
	}{
		{"ID{}", ID{}, "11111111111111111111111111111111LpoYY"},
		{"ID{24}", ID{24}, "Ba3mm8Ra8JYYebeZ9p7zw1ayorDbeD1euwxhgzSLsncKqGoNt"},
	}
	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			require.Equal(t, test.expected, test.id.String())
		})
	}
}

func TestIDMarshalText(t *testing.T) {
	require := require.New(t)

	id := GenerateTestID()
	text, err := id.MarshalText()
	require.NoError(err)

	var parsed ID
	require.NoError(parsed.UnmarshalText(text))
	require.Equal(id, parsed)
}

func TestIDCompare(t *testing.T) {
	tests := []struct {
		a        ID
		b        ID
		expected int
	}{
		{
			a:        ID{1},
			b:        ID{0},
			expected: 1,
		},
		{
			a:        ID{1},
			b:        ID{1},
			expected: 0,
		},
		{
			a:        ID{0},
			b:        ID{1},
			expected: -1,
		},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s_%s_%d", test.a, test.b, test.expected), func(t *testing.T) {
			require.Equal(t, test.expected, test.a.Compare(test.b))
		})
	}
}
