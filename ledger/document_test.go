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

package ledger

import (
	"bytes"
	"math"
	"testing"

	"github.com/blinklabs-io/goxrpl/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJsonValue(t *testing.T) {
	testDefs := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "null", value: nil, expected: `null`},
		{name: "negative", value: int64(-7), expected: `-7`},
		{name: "large unsigned", value: uint64(math.MaxUint64), expected: `18446744073709551615`},
		{name: "float", value: 0.25, expected: `0.25`},
		{
			name:     "embedded number",
			value:    cbor.Tag{Number: cbor.CborTagEmbeddedJson, Content: []byte("1.0E+5")},
			expected: `1.0E+5`,
		},
		{name: "string without HTML escaping", value: "<a&b>", expected: `"<a&b>"`},
		{name: "string with quotes", value: "say \"hi\"\n", expected: `"say \"hi\"\n"`},
		{
			name: "nested",
			value: cbor.OrderedMap{
				{Key: "z", Value: []any{uint64(1), false}},
				{Key: "a", Value: cbor.OrderedMap{}},
			},
			expected: `{"z":[1,false],"a":{}}`,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeJsonValue(&buf, testDef.value))
			assert.Equal(t, testDef.expected, buf.String())
		})
	}
}

func TestWriteJsonValueUnsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeJsonValue(&buf, math.NaN()))
	assert.Error(t, writeJsonValue(&buf, math.Inf(1)))
	assert.Error(t, writeJsonValue(&buf, []byte{0x01}))
	err := writeJsonValue(&buf, cbor.OrderedMap{{Key: "k", Value: map[string]any{}}})
	assert.ErrorContains(t, err, "field k")
	// Only number literals may be embedded
	assert.Error(t, writeJsonValue(&buf, cbor.Tag{Number: cbor.CborTagEmbeddedJson, Content: []byte(`"1"`)}))
	assert.Error(t, writeJsonValue(&buf, cbor.Tag{Number: cbor.CborTagEmbeddedJson, Content: []byte(`1 2`)}))
	assert.Error(t, writeJsonValue(&buf, cbor.Tag{Number: cbor.CborTagEmbeddedJson, Content: "1"}))
	assert.Error(t, writeJsonValue(&buf, cbor.Tag{Number: 2, Content: []byte{0x01}}))
}

func TestJsonToCborValue(t *testing.T) {
	value, err := jsonToCborValue([]byte(`{"b":[1,-1,2.5,"s"],"a":null}`))
	require.NoError(t, err)
	assert.Equal(
		t,
		cbor.OrderedMap{
			{Key: "b", Value: []any{uint64(1), int64(-1), testNumberTag("2.5"), "s"}},
			{Key: "a", Value: nil},
		},
		value,
	)

	_, err = jsonToCborValue([]byte(`1 2`))
	assert.Error(t, err)
}

func testNumberTag(literal string) cbor.Tag {
	return cbor.Tag{Number: cbor.CborTagEmbeddedJson, Content: []byte(literal)}
}

func TestJsonNumberToCbor(t *testing.T) {
	testDefs := []struct {
		literal  string
		expected any
	}{
		{literal: "0", expected: uint64(0)},
		{literal: "18446744073709551615", expected: uint64(math.MaxUint64)},
		{literal: "-9223372036854775808", expected: int64(math.MinInt64)},
		{literal: "-0", expected: testNumberTag("-0")},
		{literal: "1.0", expected: testNumberTag("1.0")},
		{literal: "1e5", expected: testNumberTag("1e5")},
		{literal: "18446744073709551616", expected: testNumberTag("18446744073709551616")},
		{literal: "-9223372036854775809", expected: testNumberTag("-9223372036854775809")},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.literal, func(t *testing.T) {
			value, err := jsonToCborValue([]byte(testDef.literal))
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, value)
		})
	}
}

func TestCborToJsonKeepsNumberLiterals(t *testing.T) {
	input := `{"a":1.0,"b":123456789012345678901234567890,"c":[-0,2.50E-3],"d":7}`
	doc, err := jsonToCborValue([]byte(input))
	require.NoError(t, err)
	cborData, err := cbor.Encode(doc)
	require.NoError(t, err)
	output, err := cborToJson(cborData)
	require.NoError(t, err)
	assert.Equal(t, input, string(output))
}
