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

package transaction

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

// Expected shapes reported in decode errors
const (
	expectAddress        = "classic address string"
	expectDrops          = "string of drops"
	expectAmount         = "string of drops or amount object"
	expectIssue          = "asset object"
	expectHash256        = "64 hex characters"
	expectMptID          = "48 hex characters"
	expectHex            = "hex string"
	expectPublicKey      = "hex public key"
	expectCredentialType = "1 to 128 hex characters"
	expectUint8          = "unsigned 8-bit integer"
	expectUint16         = "unsigned 16-bit integer"
	expectUint32         = "unsigned 32-bit integer"
	expectFlags          = expectUint32
	expectString         = "string"
)

// Encode returns the canonical JSON document for a transaction
func Encode(tx Transaction, opts ...CodecOptionFunc) ([]byte, error) {
	doc, err := EncodeDocument(tx, opts...)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

// EncodeDocument returns the canonical document for a transaction. Known fields are written in
// their canonical order with absent optional fields omitted. Unknown fields are written ahead
// of them unless configured otherwise.
func EncodeDocument(
	tx Transaction,
	opts ...CodecOptionFunc,
) (*common.Document, error) {
	if tx == nil {
		return nil, errors.New("cannot encode nil transaction")
	}
	cfg := newCodecConfig(opts...)
	w := &fieldWriter{doc: common.NewDocument()}
	unknownFields := tx.UnknownFields()
	if cfg.unknownFieldPlacement == UnknownFieldsFirst {
		unknownFields.WriteTo(w.doc)
	}
	tx.base().writeEnvelope(w)
	tx.writeFields(w)
	if cfg.unknownFieldPlacement == UnknownFieldsLast {
		unknownFields.WriteTo(w.doc)
	}
	if w.err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", tx.Type(), w.err)
	}
	return w.doc, nil
}

// Decode parses a canonical JSON document into the transaction variant named by its
// TransactionType. Fields that the variant does not model are preserved as unknown fields in
// document order.
func Decode(data []byte, opts ...CodecOptionFunc) (Transaction, error) {
	doc, err := common.ParseDocument(data)
	if err != nil {
		return nil, &common.DecodeError{
			Expected: "JSON object",
			Err:      err,
		}
	}
	return DecodeDocument(doc, opts...)
}

// DecodeDocument builds a transaction from a parsed document
func DecodeDocument(
	doc *common.Document,
	opts ...CodecOptionFunc,
) (Transaction, error) {
	cfg := newCodecConfig(opts...)
	txType, err := DocumentType(doc)
	if err != nil {
		return nil, err
	}
	b, err := newBuilder(txType)
	if err != nil {
		return nil, &common.DecodeError{
			TransactionType: txType.String(),
			Field:           "TransactionType",
			Expected:        "supported transaction type",
			Err:             err,
		}
	}
	r := newFieldReader(doc, txType)
	b.envelope().readEnvelope(r)
	b.readFields(r)
	r.collectUnknown(b.envelope(), cfg.logger)
	if r.err != nil {
		return nil, r.err
	}
	tx, err := b.buildTransaction()
	if err != nil {
		return nil, buildDecodeError(txType, err)
	}
	cfg.logger.Debug(
		"decoded transaction",
		"type", txType.String(),
		"account", tx.Account().String(),
		"unknown_fields", tx.UnknownFields().Len(),
	)
	return tx, nil
}

// DocumentType returns the TransactionType named by a document
func DocumentType(doc *common.Document) (TransactionType, error) {
	raw, ok := doc.Get("TransactionType")
	if !ok || common.IsNull(raw) {
		return "", &common.DecodeError{
			Field:    "TransactionType",
			Expected: "transaction type string",
			Err:      &common.NotPresentError{Type: "TransactionType"},
		}
	}
	var tmp string
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return "", &common.DecodeError{
			Field:    "TransactionType",
			Expected: "transaction type string",
			Err:      err,
		}
	}
	return TransactionType(tmp), nil
}

// decodeAs decodes a document that must be of the given type
func decodeAs[T Transaction](
	txType TransactionType,
	data []byte,
	opts ...CodecOptionFunc,
) (T, error) {
	var zero T
	doc, err := common.ParseDocument(data)
	if err != nil {
		return zero, &common.DecodeError{
			TransactionType: txType.String(),
			Expected:        "JSON object",
			Err:             err,
		}
	}
	actual, err := DocumentType(doc)
	if err != nil {
		return zero, err
	}
	if actual != txType {
		return zero, &common.DecodeError{
			TransactionType: txType.String(),
			Field:           "TransactionType",
			Expected:        txType.String(),
			Err:             fmt.Errorf("unexpected transaction type %q", string(actual)),
		}
	}
	tx, err := DecodeDocument(doc, opts...)
	if err != nil {
		return zero, err
	}
	ret, ok := tx.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected transaction type: %T", tx)
	}
	return ret, nil
}

func buildDecodeError(txType TransactionType, err error) error {
	ret := &common.DecodeError{
		TransactionType: txType.String(),
		Err:             err,
	}
	var incompleteErr *common.IncompleteError
	var formatErr *common.FormatError
	switch {
	case errors.As(err, &incompleteErr):
		ret.Field = strings.Join(incompleteErr.Fields, ", ")
		ret.Expected = "required field"
	case errors.As(err, &formatErr):
		ret.Field = formatErr.Type
	}
	return ret
}

type fieldWriter struct {
	doc *common.Document
	err error
}

func (w *fieldWriter) put(name string, v any) {
	if w.err != nil {
		return
	}
	if err := w.doc.Set(name, v); err != nil {
		w.err = err
	}
}

func putPtr[T any](w *fieldWriter, name string, v *T) {
	if v != nil {
		w.put(name, *v)
	}
}

func putList[T any](w *fieldWriter, name string, s []T) {
	if len(s) > 0 {
		w.put(name, s)
	}
}

func (w *fieldWriter) putAmount(name string, amount common.CurrencyAmount) {
	if amount != nil {
		w.put(name, amount)
	}
}

// fieldReader reads known fields from a document, remembering which ones were consumed. The
// first failure is kept and later reads become no-ops.
type fieldReader struct {
	doc      *common.Document
	txType   TransactionType
	consumed map[string]struct{}
	err      error
}

func newFieldReader(doc *common.Document, txType TransactionType) *fieldReader {
	return &fieldReader{
		doc:    doc,
		txType: txType,
		consumed: map[string]struct{}{
			"TransactionType": {},
		},
	}
}

func (r *fieldReader) fail(name string, expected string, err error) {
	if r.err != nil {
		return
	}
	r.err = &common.DecodeError{
		TransactionType: r.txType.String(),
		Field:           name,
		Expected:        expected,
		Err:             err,
	}
}

func (r *fieldReader) raw(name string, expected string) (json.RawMessage, bool) {
	r.consumed[name] = struct{}{}
	if r.err != nil {
		return nil, false
	}
	raw, ok := r.doc.Get(name)
	if !ok {
		return nil, false
	}
	if common.IsNull(raw) {
		r.fail(name, expected, &common.NotPresentError{Type: name})
		return nil, false
	}
	return raw, true
}

func readInto[T any](r *fieldReader, name string, expected string, dest *T) {
	raw, ok := r.raw(name, expected)
	if !ok {
		return
	}
	var tmp T
	if err := decodeStrict(raw, &tmp); err != nil {
		r.fail(name, expected, err)
		return
	}
	*dest = tmp
}

func readPtr[T any](r *fieldReader, name string, expected string) *T {
	raw, ok := r.raw(name, expected)
	if !ok {
		return nil
	}
	ret := new(T)
	if err := decodeStrict(raw, ret); err != nil {
		r.fail(name, expected, err)
		return nil
	}
	return ret
}

func (r *fieldReader) readAmount(name string) common.CurrencyAmount {
	raw, ok := r.raw(name, expectAmount)
	if !ok {
		return nil
	}
	ret, err := common.UnmarshalCurrencyAmount(raw)
	if err != nil {
		r.fail(name, expectAmount, err)
		return nil
	}
	return ret
}

// collectUnknown moves every field that was not consumed into the envelope's unknown fields
func (r *fieldReader) collectUnknown(e *Envelope, logger *slog.Logger) {
	if r.err != nil {
		return
	}
	for _, name := range r.doc.Keys() {
		if _, ok := r.consumed[name]; ok {
			continue
		}
		raw, _ := r.doc.Get(name)
		fields, err := e.UnknownFields.With(name, raw)
		if err != nil {
			r.fail(name, "non-null JSON value", err)
			return
		}
		e.UnknownFields = fields
		logger.Debug(
			"preserving unknown field",
			"type", r.txType.String(),
			"field", name,
		)
	}
}

// decodeStrict decodes a single JSON value, rejecting unknown object keys
func decodeStrict(data []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
