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

package ledger_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/blinklabs-io/goxrpl/cbor"
	"github.com/blinklabs-io/goxrpl/internal/test"
	"github.com/blinklabs-io/goxrpl/ledger"
	"github.com/blinklabs-io/goxrpl/ledger/common"
	"github.com/blinklabs-io/goxrpl/ledger/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOracleDeleteJson = fmt.Sprintf(
	`{"Foo":{"b":[1,-2,1.5,true,null],"a":"x"},"Account":"%s","TransactionType":"OracleDelete","Fee":"12","Sequence":5,"Flags":2147483648,"SigningPubKey":"%s","OracleDocumentID":1}`,
	test.GenesisAddress,
	test.GenesisPublicKeyHex,
)

var testPaymentJson = fmt.Sprintf(
	`{"Account":"%s","TransactionType":"Payment","Fee":"10","Sequence":1,"Flags":0,"Memos":[{"Memo":{"MemoData":"68656C6C6F","MemoType":"6E6F7465"}}],"SigningPubKey":"","Amount":"1000000","Destination":"%s"}`,
	test.GenesisAddress,
	test.AccountOneAddress,
)

func TestDetermineTransactionFormat(t *testing.T) {
	testDefs := []struct {
		name     string
		data     []byte
		expected ledger.TransactionFormat
	}{
		{name: "JSON", data: []byte(`{"a":1}`), expected: ledger.TransactionFormatJson},
		{name: "JSON with whitespace", data: []byte(" \n\t{}"), expected: ledger.TransactionFormatJson},
		{name: "CBOR map", data: test.DecodeHexString("a0"), expected: ledger.TransactionFormatCbor},
		{name: "CBOR map 16 bit", data: test.DecodeHexString("b90000"), expected: ledger.TransactionFormatCbor},
		{name: "CBOR list", data: test.DecodeHexString("83010203"), expected: ledger.TransactionFormatUnknown},
		{name: "JSON array", data: []byte(`[]`), expected: ledger.TransactionFormatUnknown},
		{name: "whitespace before CBOR", data: append([]byte(" "), 0xa0), expected: ledger.TransactionFormatUnknown},
		{name: "empty", data: nil, expected: ledger.TransactionFormatUnknown},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			assert.Equal(t, testDef.expected, ledger.DetermineTransactionFormat(testDef.data))
		})
	}
	assert.Equal(t, "json", ledger.TransactionFormatJson.String())
	assert.Equal(t, "cbor", ledger.TransactionFormatCbor.String())
	assert.Equal(t, "unknown", ledger.TransactionFormatUnknown.String())
}

func TestDetermineTransactionType(t *testing.T) {
	txType, err := ledger.DetermineTransactionType([]byte(testOracleDeleteJson))
	require.NoError(t, err)
	assert.Equal(t, transaction.TxTypeOracleDelete, txType)

	tx, err := ledger.NewTransactionFromJson([]byte(testPaymentJson))
	require.NoError(t, err)
	cborData, err := ledger.EncodeTransactionCbor(tx)
	require.NoError(t, err)
	txType, err = ledger.DetermineTransactionType(cborData)
	require.NoError(t, err)
	assert.Equal(t, transaction.TxTypePayment, txType)

	// CBOR map {"a": 1}
	_, err = ledger.DetermineTransactionType(test.DecodeHexString("a1616101"))
	assert.ErrorIs(t, err, common.ErrNotPresent)

	_, err = ledger.DetermineTransactionType([]byte(`{"Account":"x"}`))
	assert.ErrorIs(t, err, common.ErrNotPresent)

	_, err = ledger.DetermineTransactionType([]byte("not a document"))
	assert.Error(t, err)
}

func TestTransactionJsonCborRoundTrip(t *testing.T) {
	for _, input := range []string{testOracleDeleteJson, testPaymentJson} {
		tx, err := ledger.NewTransaction([]byte(input))
		require.NoError(t, err)
		jsonData, err := ledger.EncodeTransactionJson(tx)
		require.NoError(t, err)
		assert.Equal(t, input, string(jsonData))

		cborData, err := ledger.EncodeTransactionCbor(tx)
		require.NoError(t, err)
		assert.Equal(t, ledger.TransactionFormatCbor, ledger.DetermineTransactionFormat(cborData))
		decoded, err := ledger.NewTransaction(cborData)
		require.NoError(t, err)
		assert.Equal(t, tx, decoded)

		jsonData, err = ledger.EncodeTransactionJson(decoded)
		require.NoError(t, err)
		assert.Equal(t, input, string(jsonData))
	}
}

func TestTransactionCborFieldOrder(t *testing.T) {
	tx, err := ledger.NewTransactionFromJson([]byte(testOracleDeleteJson))
	require.NoError(t, err)
	cborData, err := ledger.EncodeTransactionCbor(tx)
	require.NoError(t, err)
	var tmp cbor.OrderedMap
	bytesRead, err := cbor.Decode(cborData, &tmp)
	require.NoError(t, err)
	assert.Equal(t, len(cborData), bytesRead)
	keys := make([]string, 0, len(tmp))
	for _, entry := range tmp {
		keys = append(keys, entry.Key)
	}
	assert.Equal(
		t,
		[]string{
			"Foo",
			"Account",
			"TransactionType",
			"Fee",
			"Sequence",
			"Flags",
			"SigningPubKey",
			"OracleDocumentID",
		},
		keys,
	)
	foo, ok := tmp.Get("Foo")
	require.True(t, ok)
	nested, ok := foo.(cbor.OrderedMap)
	require.True(t, ok)
	assert.Equal(t, "b", nested[0].Key)
	assert.Equal(
		t,
		[]any{
			uint64(1),
			int64(-2),
			cbor.Tag{Number: cbor.CborTagEmbeddedJson, Content: []byte("1.5")},
			true,
			nil,
		},
		nested[0].Value,
	)
	flags, _ := tmp.Get("Flags")
	assert.Equal(t, uint64(2147483648), flags)
}

func TestTransactionCborKeepsUnknownNumbers(t *testing.T) {
	input := fmt.Sprintf(
		`{"Foo":1.0,"Bar":123456789012345678901234567890,"Baz":[-0,1E-7],"Account":"%s","TransactionType":"OracleDelete","Fee":"12","Sequence":5,"Flags":0,"SigningPubKey":"%s","OracleDocumentID":1}`,
		test.GenesisAddress,
		test.GenesisPublicKeyHex,
	)
	tx, err := ledger.NewTransactionFromJson([]byte(input))
	require.NoError(t, err)
	cborData, err := ledger.EncodeTransactionCbor(tx)
	require.NoError(t, err)
	decoded, err := ledger.NewTransactionFromCbor(cborData)
	require.NoError(t, err)
	jsonData, err := ledger.EncodeTransactionJson(decoded)
	require.NoError(t, err)
	assert.Equal(t, input, string(jsonData))
}

func TestTransactionUnknownFieldsLast(t *testing.T) {
	tx, err := ledger.NewTransactionFromJson([]byte(testOracleDeleteJson))
	require.NoError(t, err)
	opt := transaction.WithUnknownFieldPlacement(transaction.UnknownFieldsLast)
	cborData, err := ledger.EncodeTransactionCbor(tx, opt)
	require.NoError(t, err)
	var tmp cbor.OrderedMap
	_, err = cbor.Decode(cborData, &tmp)
	require.NoError(t, err)
	assert.Equal(t, "Foo", tmp[len(tmp)-1].Key)
}

func TestNewTransactionErrors(t *testing.T) {
	_, err := ledger.NewTransaction([]byte("[1,2,3]"))
	assert.EqualError(t, err, "unknown transaction format")

	// CBOR map followed by a stray byte
	_, err = ledger.NewTransactionFromCbor(test.DecodeHexString("a000"))
	var decodeErr *common.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "CBOR map", decodeErr.Expected)

	// CBOR list
	_, err = ledger.NewTransactionFromCbor(test.DecodeHexString("83010203"))
	require.ErrorAs(t, err, &decodeErr)

	// CBOR map with an integer key
	_, err = ledger.NewTransactionFromCbor(test.DecodeHexString("a10101"))
	require.ErrorAs(t, err, &decodeErr)

	// valid CBOR map missing the transaction type
	cborData, err := hex.DecodeString("a1674163636f756e746178")
	require.NoError(t, err)
	_, err = ledger.NewTransactionFromCbor(cborData)
	assert.ErrorIs(t, err, common.ErrNotPresent)
}
