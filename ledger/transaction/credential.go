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

var (
	credentialCreateFieldNames = []string{"Subject", "CredentialType", "Expiration", "URI"}
	credentialAcceptFieldNames = []string{"Issuer", "CredentialType"}
	credentialDeleteFieldNames = []string{"Subject", "Issuer", "CredentialType"}
)

// CredentialCreate issues a credential to a subject account
type CredentialCreate struct {
	txBase
	subject        common.Address
	credentialType common.CredentialType
	expiration     *uint32
	uri            *common.Uri
}

type CredentialCreateBuilder struct {
	Envelope
	Flags common.Flags
	// Subject is required
	Subject *common.Address
	// CredentialType is required
	CredentialType *common.CredentialType
	Expiration     *uint32
	URI            *common.Uri
}

func (b *CredentialCreateBuilder) Build() (*CredentialCreate, error) {
	c := newBuildContext(TxTypeCredentialCreate)
	c.requireEnvelope(&b.Envelope)
	c.require("Subject", b.Subject != nil)
	c.require("CredentialType", b.CredentialType != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, credentialCreateFieldNames)
	validatePtr(c, b.CredentialType)
	validatePtr(c, b.URI)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &CredentialCreate{
		txBase:         base,
		subject:        *b.Subject,
		credentialType: *b.CredentialType,
		expiration:     clonePtr(b.Expiration),
		uri:            clonePtr(b.URI),
	}, nil
}

func (b *CredentialCreateBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *CredentialCreateBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.Subject = readPtr[common.Address](r, "Subject", expectAddress)
	b.CredentialType = readPtr[common.CredentialType](r, "CredentialType", expectCredentialType)
	b.Expiration = readPtr[uint32](r, "Expiration", expectUint32)
	b.URI = readPtr[common.Uri](r, "URI", expectHex)
}

func NewCredentialCreateFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*CredentialCreate, error) {
	return decodeAs[*CredentialCreate](TxTypeCredentialCreate, data, opts...)
}

func (t *CredentialCreate) Subject() common.Address { return t.subject }

func (t *CredentialCreate) CredentialType() common.CredentialType {
	return t.credentialType
}

func (t *CredentialCreate) Expiration() *uint32 { return clonePtr(t.expiration) }

func (t *CredentialCreate) URI() *common.Uri { return clonePtr(t.uri) }

func (t *CredentialCreate) ToBuilder() *CredentialCreateBuilder {
	return &CredentialCreateBuilder{
		Envelope:       t.toEnvelope(),
		Flags:          t.flags,
		Subject:        clonePtr(&t.subject),
		CredentialType: clonePtr(&t.credentialType),
		Expiration:     clonePtr(t.expiration),
		URI:            clonePtr(t.uri),
	}
}

func (t *CredentialCreate) writeFields(w *fieldWriter) {
	w.put("Subject", t.subject)
	w.put("CredentialType", t.credentialType)
	putPtr(w, "Expiration", t.expiration)
	putPtr(w, "URI", t.uri)
}

func (t *CredentialCreate) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *CredentialCreate) UnmarshalJSON(data []byte) error {
	tmp, err := NewCredentialCreateFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// CredentialAccept is sent by the subject of a credential to accept it
type CredentialAccept struct {
	txBase
	issuer         common.Address
	credentialType common.CredentialType
}

type CredentialAcceptBuilder struct {
	Envelope
	Flags common.Flags
	// Issuer is required
	Issuer *common.Address
	// CredentialType is required
	CredentialType *common.CredentialType
}

func (b *CredentialAcceptBuilder) Build() (*CredentialAccept, error) {
	c := newBuildContext(TxTypeCredentialAccept)
	c.requireEnvelope(&b.Envelope)
	c.require("Issuer", b.Issuer != nil)
	c.require("CredentialType", b.CredentialType != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, credentialAcceptFieldNames)
	validatePtr(c, b.CredentialType)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &CredentialAccept{
		txBase:         base,
		issuer:         *b.Issuer,
		credentialType: *b.CredentialType,
	}, nil
}

func (b *CredentialAcceptBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *CredentialAcceptBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.Issuer = readPtr[common.Address](r, "Issuer", expectAddress)
	b.CredentialType = readPtr[common.CredentialType](r, "CredentialType", expectCredentialType)
}

func NewCredentialAcceptFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*CredentialAccept, error) {
	return decodeAs[*CredentialAccept](TxTypeCredentialAccept, data, opts...)
}

func (t *CredentialAccept) Issuer() common.Address { return t.issuer }

func (t *CredentialAccept) CredentialType() common.CredentialType {
	return t.credentialType
}

func (t *CredentialAccept) ToBuilder() *CredentialAcceptBuilder {
	return &CredentialAcceptBuilder{
		Envelope:       t.toEnvelope(),
		Flags:          t.flags,
		Issuer:         clonePtr(&t.issuer),
		CredentialType: clonePtr(&t.credentialType),
	}
}

func (t *CredentialAccept) writeFields(w *fieldWriter) {
	w.put("Issuer", t.issuer)
	w.put("CredentialType", t.credentialType)
}

func (t *CredentialAccept) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *CredentialAccept) UnmarshalJSON(data []byte) error {
	tmp, err := NewCredentialAcceptFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// CredentialDelete removes a credential. Either the subject or the issuer may be omitted, in
// which case it is the sending account.
type CredentialDelete struct {
	txBase
	subject        *common.Address
	issuer         *common.Address
	credentialType common.CredentialType
}

type CredentialDeleteBuilder struct {
	Envelope
	Flags   common.Flags
	Subject *common.Address
	Issuer  *common.Address
	// CredentialType is required
	CredentialType *common.CredentialType
}

func (b *CredentialDeleteBuilder) Build() (*CredentialDelete, error) {
	c := newBuildContext(TxTypeCredentialDelete)
	c.requireEnvelope(&b.Envelope)
	c.require("CredentialType", b.CredentialType != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, credentialDeleteFieldNames)
	validatePtr(c, b.CredentialType)
	c.check(
		b.Subject != nil || b.Issuer != nil,
		"Either Subject or Issuer must be present.",
	)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &CredentialDelete{
		txBase:         base,
		subject:        clonePtr(b.Subject),
		issuer:         clonePtr(b.Issuer),
		credentialType: *b.CredentialType,
	}, nil
}

func (b *CredentialDeleteBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *CredentialDeleteBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.Subject = readPtr[common.Address](r, "Subject", expectAddress)
	b.Issuer = readPtr[common.Address](r, "Issuer", expectAddress)
	b.CredentialType = readPtr[common.CredentialType](r, "CredentialType", expectCredentialType)
}

func NewCredentialDeleteFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*CredentialDelete, error) {
	return decodeAs[*CredentialDelete](TxTypeCredentialDelete, data, opts...)
}

func (t *CredentialDelete) Subject() *common.Address { return clonePtr(t.subject) }

func (t *CredentialDelete) Issuer() *common.Address { return clonePtr(t.issuer) }

func (t *CredentialDelete) CredentialType() common.CredentialType {
	return t.credentialType
}

func (t *CredentialDelete) ToBuilder() *CredentialDeleteBuilder {
	return &CredentialDeleteBuilder{
		Envelope:       t.toEnvelope(),
		Flags:          t.flags,
		Subject:        clonePtr(t.subject),
		Issuer:         clonePtr(t.issuer),
		CredentialType: clonePtr(&t.credentialType),
	}
}

func (t *CredentialDelete) writeFields(w *fieldWriter) {
	putPtr(w, "Subject", t.subject)
	putPtr(w, "Issuer", t.issuer)
	w.put("CredentialType", t.credentialType)
}

func (t *CredentialDelete) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *CredentialDelete) UnmarshalJSON(data []byte) error {
	tmp, err := NewCredentialDeleteFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
