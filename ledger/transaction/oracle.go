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
	"github.com/blinklabs-io/goxrpl/ledger/common"
)

var oracleDeleteFieldNames = []string{"OracleDocumentID"}

// OracleDelete removes a price oracle owned by the sending account
type OracleDelete struct {
	txBase
	oracleDocumentID uint32
}

type OracleDeleteBuilder struct {
	Envelope
	Flags common.Flags
	// OracleDocumentID is required
	OracleDocumentID *uint32
}

func (b *OracleDeleteBuilder) Build() (*OracleDelete, error) {
	c := newBuildContext(TxTypeOracleDelete)
	c.requireEnvelope(&b.Envelope)
	c.require("OracleDocumentID", b.OracleDocumentID != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, oracleDeleteFieldNames)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &OracleDelete{
		txBase:           base,
		oracleDocumentID: *b.OracleDocumentID,
	}, nil
}

func (b *OracleDeleteBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *OracleDeleteBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.OracleDocumentID = readPtr[uint32](r, "OracleDocumentID", expectUint32)
}

func NewOracleDeleteFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*OracleDelete, error) {
	return decodeAs[*OracleDelete](TxTypeOracleDelete, data, opts...)
}

func (t *OracleDelete) OracleDocumentID() uint32 {
	return t.oracleDocumentID
}

func (t *OracleDelete) ToBuilder() *OracleDeleteBuilder {
	return &OracleDeleteBuilder{
		Envelope:         t.toEnvelope(),
		Flags:            t.flags,
		OracleDocumentID: clonePtr(&t.oracleDocumentID),
	}
}

func (t *OracleDelete) writeFields(w *fieldWriter) {
	w.put("OracleDocumentID", t.oracleDocumentID)
}

func (t *OracleDelete) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *OracleDelete) UnmarshalJSON(data []byte) error {
	tmp, err := NewOracleDeleteFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
