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
	"errors"
	"fmt"

	"github.com/blinklabs-io/goxrpl/cbor"
	"github.com/blinklabs-io/goxrpl/ledger/common"
	"github.com/blinklabs-io/goxrpl/ledger/transaction"
)

// Compatibility aliases
type (
	Transaction           = transaction.Transaction
	TransactionType       = transaction.TransactionType
	CodecOptionFunc       = transaction.CodecOptionFunc
	UnknownFieldPlacement = transaction.UnknownFieldPlacement
)

// TransactionFormat identifies the serialized form of a transaction document
type TransactionFormat uint

const (
	TransactionFormatUnknown TransactionFormat = iota
	TransactionFormatJson
	TransactionFormatCbor
)

func (f TransactionFormat) String() string {
	switch f {
	case TransactionFormatJson:
		return "json"
	case TransactionFormatCbor:
		return "cbor"
	default:
		return "unknown"
	}
}

// DetermineTransactionFormat inspects the first byte of a document. JSON documents are objects
// and CBOR documents are maps, so the two never overlap.
func DetermineTransactionFormat(data []byte) TransactionFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return TransactionFormatUnknown
	}
	if trimmed[0] == '{' {
		return TransactionFormatJson
	}
	// CBOR major type 5 is a map
	if len(trimmed) == len(data) && data[0]&cbor.CborTypeMask == cbor.CborTypeMap {
		return TransactionFormatCbor
	}
	return TransactionFormatUnknown
}

func NewTransactionFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (Transaction, error) {
	return transaction.Decode(data, opts...)
}

// NewTransactionFromCbor decodes the CBOR form of a canonical document. The map is converted
// to its JSON equivalent and decoded with the same rules as NewTransactionFromJson.
func NewTransactionFromCbor(
	data []byte,
	opts ...CodecOptionFunc,
) (Transaction, error) {
	jsonData, err := cborToJson(data)
	if err != nil {
		return nil, &common.DecodeError{
			Expected: "CBOR map",
			Err:      err,
		}
	}
	return transaction.Decode(jsonData, opts...)
}

// NewTransaction decodes a document in either supported format
func NewTransaction(
	data []byte,
	opts ...CodecOptionFunc,
) (Transaction, error) {
	switch DetermineTransactionFormat(data) {
	case TransactionFormatJson:
		return NewTransactionFromJson(data, opts...)
	case TransactionFormatCbor:
		return NewTransactionFromCbor(data, opts...)
	}
	return nil, errors.New("unknown transaction format")
}

// EncodeTransactionJson returns the canonical JSON document for a transaction
func EncodeTransactionJson(
	tx Transaction,
	opts ...CodecOptionFunc,
) ([]byte, error) {
	return transaction.Encode(tx, opts...)
}

// EncodeTransactionCbor returns the canonical document for a transaction as a CBOR map. Field
// order matches the JSON form.
func EncodeTransactionCbor(
	tx Transaction,
	opts ...CodecOptionFunc,
) ([]byte, error) {
	doc, err := transaction.EncodeDocument(tx, opts...)
	if err != nil {
		return nil, err
	}
	return documentToCbor(doc)
}

// DetermineTransactionType returns the TransactionType named by a JSON or CBOR document
// without decoding the rest of it
func DetermineTransactionType(data []byte) (TransactionType, error) {
	switch DetermineTransactionFormat(data) {
	case TransactionFormatJson:
		doc, err := common.ParseDocument(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse JSON document: %w", err)
		}
		return transaction.DocumentType(doc)
	case TransactionFormatCbor:
		var tmp cbor.OrderedMap
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return "", fmt.Errorf("failed to parse CBOR document: %w", err)
		}
		value, ok := tmp.Get("TransactionType")
		if !ok {
			return "", &common.NotPresentError{Type: "TransactionType"}
		}
		txType, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("unexpected TransactionType value: %v", value)
		}
		return TransactionType(txType), nil
	}
	return "", errors.New("unknown transaction type")
}
