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
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

const MaxAcceptedCredentials = 10

var (
	permissionedDomainSetFieldNames    = []string{"DomainID", "AcceptedCredentials"}
	permissionedDomainDeleteFieldNames = []string{"DomainID"}
)

// AcceptedCredential identifies a credential by issuer and type
type AcceptedCredential struct {
	Issuer         common.Address
	CredentialType common.CredentialType
}

type acceptedCredentialFieldsJson struct {
	Issuer         *common.Address        `json:"Issuer"`
	CredentialType *common.CredentialType `json:"CredentialType"`
}

type acceptedCredentialJson struct {
	Credential *acceptedCredentialFieldsJson `json:"Credential"`
}

func (a AcceptedCredential) MarshalJSON() ([]byte, error) {
	return json.Marshal(acceptedCredentialJson{
		Credential: &acceptedCredentialFieldsJson{
			Issuer:         &a.Issuer,
			CredentialType: &a.CredentialType,
		},
	})
}

func (a *AcceptedCredential) UnmarshalJSON(data []byte) error {
	var tmp acceptedCredentialJson
	if err := decodeStrict(data, &tmp); err != nil {
		return fmt.Errorf("invalid Credential: %w", err)
	}
	if tmp.Credential == nil ||
		tmp.Credential.Issuer == nil ||
		tmp.Credential.CredentialType == nil {
		return &common.NotPresentError{Type: "Credential"}
	}
	a.Issuer = *tmp.Credential.Issuer
	a.CredentialType = *tmp.Credential.CredentialType
	return nil
}

// PermissionedDomainSet creates a permissioned domain or, with DomainID, replaces the accepted
// credentials of an existing one
type PermissionedDomainSet struct {
	txBase
	domainID            *common.Hash256
	acceptedCredentials []AcceptedCredential
}

type PermissionedDomainSetBuilder struct {
	Envelope
	Flags    common.Flags
	DomainID *common.Hash256
	// AcceptedCredentials must hold between 1 and 10 distinct credentials
	AcceptedCredentials []AcceptedCredential
}

func (b *PermissionedDomainSetBuilder) Build() (*PermissionedDomainSet, error) {
	c := newBuildContext(TxTypePermissionedDomainSet)
	c.requireEnvelope(&b.Envelope)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, permissionedDomainSetFieldNames)
	for _, credential := range b.AcceptedCredentials {
		c.format(credential.CredentialType.Validate())
	}
	c.check(
		len(b.AcceptedCredentials) > 0 &&
			len(b.AcceptedCredentials) <= MaxAcceptedCredentials,
		"AcceptedCredentials shouldn't be empty and must have less than or equal to %d credentials.",
		MaxAcceptedCredentials,
	)
	c.check(
		!hasDuplicates(b.AcceptedCredentials),
		"AcceptedCredentials should have unique credentials.",
	)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &PermissionedDomainSet{
		txBase:              base,
		domainID:            clonePtr(b.DomainID),
		acceptedCredentials: cloneSlice(b.AcceptedCredentials),
	}, nil
}

func (b *PermissionedDomainSetBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *PermissionedDomainSetBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.DomainID = readPtr[common.Hash256](r, "DomainID", expectHash256)
	readInto(
		r,
		"AcceptedCredentials",
		"array of Credential objects",
		&b.AcceptedCredentials,
	)
}

func NewPermissionedDomainSetFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*PermissionedDomainSet, error) {
	return decodeAs[*PermissionedDomainSet](TxTypePermissionedDomainSet, data, opts...)
}

func (t *PermissionedDomainSet) DomainID() *common.Hash256 {
	return clonePtr(t.domainID)
}

func (t *PermissionedDomainSet) AcceptedCredentials() []AcceptedCredential {
	return cloneSlice(t.acceptedCredentials)
}

func (t *PermissionedDomainSet) ToBuilder() *PermissionedDomainSetBuilder {
	return &PermissionedDomainSetBuilder{
		Envelope:            t.toEnvelope(),
		Flags:               t.flags,
		DomainID:            clonePtr(t.domainID),
		AcceptedCredentials: cloneSlice(t.acceptedCredentials),
	}
}

func (t *PermissionedDomainSet) writeFields(w *fieldWriter) {
	putPtr(w, "DomainID", t.domainID)
	w.put("AcceptedCredentials", t.acceptedCredentials)
}

func (t *PermissionedDomainSet) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *PermissionedDomainSet) UnmarshalJSON(data []byte) error {
	tmp, err := NewPermissionedDomainSetFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// PermissionedDomainDelete removes a permissioned domain
type PermissionedDomainDelete struct {
	txBase
	domainID common.Hash256
}

type PermissionedDomainDeleteBuilder struct {
	Envelope
	Flags common.Flags
	// DomainID is required
	DomainID *common.Hash256
}

func (b *PermissionedDomainDeleteBuilder) Build() (*PermissionedDomainDelete, error) {
	c := newBuildContext(TxTypePermissionedDomainDelete)
	c.requireEnvelope(&b.Envelope)
	c.require("DomainID", b.DomainID != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, permissionedDomainDeleteFieldNames)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &PermissionedDomainDelete{
		txBase:   base,
		domainID: *b.DomainID,
	}, nil
}

func (b *PermissionedDomainDeleteBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *PermissionedDomainDeleteBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.DomainID = readPtr[common.Hash256](r, "DomainID", expectHash256)
}

func NewPermissionedDomainDeleteFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*PermissionedDomainDelete, error) {
	return decodeAs[*PermissionedDomainDelete](
		TxTypePermissionedDomainDelete,
		data,
		opts...,
	)
}

func (t *PermissionedDomainDelete) DomainID() common.Hash256 {
	return t.domainID
}

func (t *PermissionedDomainDelete) ToBuilder() *PermissionedDomainDeleteBuilder {
	return &PermissionedDomainDeleteBuilder{
		Envelope: t.toEnvelope(),
		Flags:    t.flags,
		DomainID: clonePtr(&t.domainID),
	}
}

func (t *PermissionedDomainDelete) writeFields(w *fieldWriter) {
	w.put("DomainID", t.domainID)
}

func (t *PermissionedDomainDelete) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *PermissionedDomainDelete) UnmarshalJSON(data []byte) error {
	tmp, err := NewPermissionedDomainDeleteFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
