// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/goxrpl/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapRoundTrip(t *testing.T) {
	src := cbor.OrderedMap{
		{Key: "z", Value: "last-first"},
		{Key: "list", Value: []any{
			uint64(1),
			cbor.OrderedMap{
				{Key: "q", Value: true},
				{Key: "p", Value: int64(-5)},
			},
		}},
		{Key: "a", Value: cbor.OrderedMap{{Key: "y", Value: "x"}}},
	}
	cborData, err := cbor.Encode(src)
	require.NoError(t, err)
	var dest cbor.OrderedMap
	_, err = cbor.Decode(cborData, &dest)
	require.NoError(t, err)
	assert.Equal(t, src, dest)
	value, ok := dest.Get("z")
	assert.True(t, ok)
	assert.Equal(t, "last-first", value)
}

func TestOrderedMapLargeCount(t *testing.T) {
	src := make(cbor.OrderedMap, 0, 300)
	for i := range 300 {
		src = append(src, cbor.MapEntry{Key: string(rune('A'+i%26)) + string(rune('0'+i/26)), Value: uint64(i)})
	}
	cborData, err := cbor.Encode(src)
	require.NoError(t, err)
	// 300 entries need a two byte length
	assert.Equal(t, []byte{0xb9, 0x01, 0x2c}, cborData[:3])
	var dest cbor.OrderedMap
	_, err = cbor.Decode(cborData, &dest)
	require.NoError(t, err)
	assert.Equal(t, src, dest)
}

func TestOrderedMapErrors(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
	}{
		{name: "not a map", cborHex: "83010203"},
		{name: "duplicate key", cborHex: "a2616101616102"},
		{name: "indefinite length", cborHex: "bf616101ff"},
		{name: "non-text key", cborHex: "a10101"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			cborData, err := hex.DecodeString(testDef.cborHex)
			require.NoError(t, err)
			var dest cbor.OrderedMap
			_, err = cbor.Decode(cborData, &dest)
			assert.Error(t, err)
		})
	}
}
