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
	"strconv"

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

var (
	mpTokenAuthorizeFieldNames      = []string{"MPTokenIssuanceID", "Holder"}
	mpTokenIssuanceCreateFieldNames = []string{
		"AssetScale",
		"TransferFee",
		"MaximumAmount",
		"MPTokenMetadata",
	}
	mpTokenIssuanceDestroyFieldNames = []string{"MPTokenIssuanceID"}
	mpTokenIssuanceSetFieldNames     = []string{"MPTokenIssuanceID", "Holder"}
)

// MPTokenAuthorize opts a holder in to an issuance, or lets the issuer authorize a holder
type MPTokenAuthorize struct {
	txBase
	issuanceID common.MpTokenIssuanceID
	holder     *common.Address
}

type MPTokenAuthorizeBuilder struct {
	Envelope
	Flags MPTokenAuthorizeFlags
	// MPTokenIssuanceID is required
	MPTokenIssuanceID *common.MpTokenIssuanceID
	Holder            *common.Address
}

func (b *MPTokenAuthorizeBuilder) Build() (*MPTokenAuthorize, error) {
	c := newBuildContext(TxTypeMPTokenAuthorize)
	c.requireEnvelope(&b.Envelope)
	c.require("MPTokenIssuanceID", b.MPTokenIssuanceID != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(mpTokenAuthorizeFlagMask),
		mpTokenAuthorizeFieldNames,
	)
	if b.Holder != nil {
		c.check(
			*b.Holder != base.account,
			"Holder must not be the sending account.",
		)
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &MPTokenAuthorize{
		txBase:     base,
		issuanceID: *b.MPTokenIssuanceID,
		holder:     clonePtr(b.Holder),
	}, nil
}

func (b *MPTokenAuthorizeBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *MPTokenAuthorizeBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.MPTokenIssuanceID = readPtr[common.MpTokenIssuanceID](r, "MPTokenIssuanceID", expectMptID)
	b.Holder = readPtr[common.Address](r, "Holder", expectAddress)
}

func NewMPTokenAuthorizeFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*MPTokenAuthorize, error) {
	return decodeAs[*MPTokenAuthorize](TxTypeMPTokenAuthorize, data, opts...)
}

func (t *MPTokenAuthorize) Flags() MPTokenAuthorizeFlags {
	return MPTokenAuthorizeFlags(t.flags)
}

func (t *MPTokenAuthorize) MPTokenIssuanceID() common.MpTokenIssuanceID {
	return t.issuanceID
}

func (t *MPTokenAuthorize) Holder() *common.Address { return clonePtr(t.holder) }

func (t *MPTokenAuthorize) ToBuilder() *MPTokenAuthorizeBuilder {
	return &MPTokenAuthorizeBuilder{
		Envelope:          t.toEnvelope(),
		Flags:             t.Flags(),
		MPTokenIssuanceID: clonePtr(&t.issuanceID),
		Holder:            clonePtr(t.holder),
	}
}

func (t *MPTokenAuthorize) writeFields(w *fieldWriter) {
	w.put("MPTokenIssuanceID", t.issuanceID)
	putPtr(w, "Holder", t.holder)
}

func (t *MPTokenAuthorize) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *MPTokenAuthorize) UnmarshalJSON(data []byte) error {
	tmp, err := NewMPTokenAuthorizeFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// MPTokenIssuanceCreate defines a new multi-purpose token issuance
type MPTokenIssuanceCreate struct {
	txBase
	assetScale    *uint8
	transferFee   *uint16
	maximumAmount *string
	metadata      *common.MpTokenMetadata
}

type MPTokenIssuanceCreateBuilder struct {
	Envelope
	Flags       MPTokenIssuanceCreateFlags
	AssetScale  *uint8
	TransferFee *uint16
	// MaximumAmount is a base-10 integer no larger than 2^63-1
	MaximumAmount   *string
	MPTokenMetadata *common.MpTokenMetadata
}

func (b *MPTokenIssuanceCreateBuilder) Build() (*MPTokenIssuanceCreate, error) {
	c := newBuildContext(TxTypeMPTokenIssuanceCreate)
	c.requireEnvelope(&b.Envelope)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	if b.MaximumAmount != nil {
		c.format(validateMaximumAmount(*b.MaximumAmount))
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(mpTokenIssuanceCreateFlagMask),
		mpTokenIssuanceCreateFieldNames,
	)
	validatePtr(c, b.MPTokenMetadata)
	if b.TransferFee != nil {
		c.check(
			*b.TransferFee <= MaxTransferFee,
			"TransferFee must be <= %d.",
			MaxTransferFee,
		)
		c.check(
			*b.TransferFee == 0 || b.Flags.CanTransfer(),
			"TransferFee requires the CanTransfer flag.",
		)
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &MPTokenIssuanceCreate{
		txBase:        base,
		assetScale:    clonePtr(b.AssetScale),
		transferFee:   clonePtr(b.TransferFee),
		maximumAmount: clonePtr(b.MaximumAmount),
		metadata:      clonePtr(b.MPTokenMetadata),
	}, nil
}

func validateMaximumAmount(value string) error {
	ret, err := strconv.ParseUint(value, 10, 64)
	if err != nil || ret > common.MaxMptAmount || value != strconv.FormatUint(ret, 10) {
		return &common.FormatError{
			Type:    "MaximumAmount",
			Value:   value,
			Message: "MaximumAmount must be a base-10 integer <= 9223372036854775807.",
		}
	}
	return nil
}

func (b *MPTokenIssuanceCreateBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *MPTokenIssuanceCreateBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.AssetScale = readPtr[uint8](r, "AssetScale", expectUint8)
	b.TransferFee = readPtr[uint16](r, "TransferFee", expectUint16)
	b.MaximumAmount = readPtr[string](r, "MaximumAmount", expectString)
	b.MPTokenMetadata = readPtr[common.MpTokenMetadata](r, "MPTokenMetadata", expectHex)
}

func NewMPTokenIssuanceCreateFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*MPTokenIssuanceCreate, error) {
	return decodeAs[*MPTokenIssuanceCreate](TxTypeMPTokenIssuanceCreate, data, opts...)
}

func (t *MPTokenIssuanceCreate) Flags() MPTokenIssuanceCreateFlags {
	return MPTokenIssuanceCreateFlags(t.flags)
}

func (t *MPTokenIssuanceCreate) AssetScale() *uint8 { return clonePtr(t.assetScale) }

func (t *MPTokenIssuanceCreate) TransferFee() *uint16 { return clonePtr(t.transferFee) }

func (t *MPTokenIssuanceCreate) MaximumAmount() *string {
	return clonePtr(t.maximumAmount)
}

func (t *MPTokenIssuanceCreate) MPTokenMetadata() *common.MpTokenMetadata {
	return clonePtr(t.metadata)
}

func (t *MPTokenIssuanceCreate) ToBuilder() *MPTokenIssuanceCreateBuilder {
	return &MPTokenIssuanceCreateBuilder{
		Envelope:        t.toEnvelope(),
		Flags:           t.Flags(),
		AssetScale:      clonePtr(t.assetScale),
		TransferFee:     clonePtr(t.transferFee),
		MaximumAmount:   clonePtr(t.maximumAmount),
		MPTokenMetadata: clonePtr(t.metadata),
	}
}

func (t *MPTokenIssuanceCreate) writeFields(w *fieldWriter) {
	putPtr(w, "AssetScale", t.assetScale)
	putPtr(w, "TransferFee", t.transferFee)
	putPtr(w, "MaximumAmount", t.maximumAmount)
	putPtr(w, "MPTokenMetadata", t.metadata)
}

func (t *MPTokenIssuanceCreate) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *MPTokenIssuanceCreate) UnmarshalJSON(data []byte) error {
	tmp, err := NewMPTokenIssuanceCreateFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// MPTokenIssuanceDestroy removes an issuance with no outstanding balances
type MPTokenIssuanceDestroy struct {
	txBase
	issuanceID common.MpTokenIssuanceID
}

type MPTokenIssuanceDestroyBuilder struct {
	Envelope
	Flags common.Flags
	// MPTokenIssuanceID is required
	MPTokenIssuanceID *common.MpTokenIssuanceID
}

func (b *MPTokenIssuanceDestroyBuilder) Build() (*MPTokenIssuanceDestroy, error) {
	c := newBuildContext(TxTypeMPTokenIssuanceDestroy)
	c.requireEnvelope(&b.Envelope)
	c.require("MPTokenIssuanceID", b.MPTokenIssuanceID != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, mpTokenIssuanceDestroyFieldNames)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &MPTokenIssuanceDestroy{
		txBase:     base,
		issuanceID: *b.MPTokenIssuanceID,
	}, nil
}

func (b *MPTokenIssuanceDestroyBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *MPTokenIssuanceDestroyBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.MPTokenIssuanceID = readPtr[common.MpTokenIssuanceID](r, "MPTokenIssuanceID", expectMptID)
}

func NewMPTokenIssuanceDestroyFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*MPTokenIssuanceDestroy, error) {
	return decodeAs[*MPTokenIssuanceDestroy](TxTypeMPTokenIssuanceDestroy, data, opts...)
}

func (t *MPTokenIssuanceDestroy) MPTokenIssuanceID() common.MpTokenIssuanceID {
	return t.issuanceID
}

func (t *MPTokenIssuanceDestroy) ToBuilder() *MPTokenIssuanceDestroyBuilder {
	return &MPTokenIssuanceDestroyBuilder{
		Envelope:          t.toEnvelope(),
		Flags:             t.flags,
		MPTokenIssuanceID: clonePtr(&t.issuanceID),
	}
}

func (t *MPTokenIssuanceDestroy) writeFields(w *fieldWriter) {
	w.put("MPTokenIssuanceID", t.issuanceID)
}

func (t *MPTokenIssuanceDestroy) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *MPTokenIssuanceDestroy) UnmarshalJSON(data []byte) error {
	tmp, err := NewMPTokenIssuanceDestroyFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// MPTokenIssuanceSet locks or unlocks an issuance, or a single holder's balance of it
type MPTokenIssuanceSet struct {
	txBase
	issuanceID common.MpTokenIssuanceID
	holder     *common.Address
}

type MPTokenIssuanceSetBuilder struct {
	Envelope
	Flags MPTokenIssuanceSetFlags
	// MPTokenIssuanceID is required
	MPTokenIssuanceID *common.MpTokenIssuanceID
	Holder            *common.Address
}

func (b *MPTokenIssuanceSetBuilder) Build() (*MPTokenIssuanceSet, error) {
	c := newBuildContext(TxTypeMPTokenIssuanceSet)
	c.requireEnvelope(&b.Envelope)
	c.require("MPTokenIssuanceID", b.MPTokenIssuanceID != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(mpTokenIssuanceSetFlagMask),
		mpTokenIssuanceSetFieldNames,
	)
	c.check(
		!(b.Flags.Lock() && b.Flags.Unlock()),
		"Lock and Unlock flags cannot both be set.",
	)
	if b.Holder != nil {
		c.check(
			*b.Holder != base.account,
			"Holder must not be the sending account.",
		)
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &MPTokenIssuanceSet{
		txBase:     base,
		issuanceID: *b.MPTokenIssuanceID,
		holder:     clonePtr(b.Holder),
	}, nil
}

func (b *MPTokenIssuanceSetBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *MPTokenIssuanceSetBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.MPTokenIssuanceID = readPtr[common.MpTokenIssuanceID](r, "MPTokenIssuanceID", expectMptID)
	b.Holder = readPtr[common.Address](r, "Holder", expectAddress)
}

func NewMPTokenIssuanceSetFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*MPTokenIssuanceSet, error) {
	return decodeAs[*MPTokenIssuanceSet](TxTypeMPTokenIssuanceSet, data, opts...)
}

func (t *MPTokenIssuanceSet) Flags() MPTokenIssuanceSetFlags {
	return MPTokenIssuanceSetFlags(t.flags)
}

func (t *MPTokenIssuanceSet) MPTokenIssuanceID() common.MpTokenIssuanceID {
	return t.issuanceID
}

func (t *MPTokenIssuanceSet) Holder() *common.Address { return clonePtr(t.holder) }

func (t *MPTokenIssuanceSet) ToBuilder() *MPTokenIssuanceSetBuilder {
	return &MPTokenIssuanceSetBuilder{
		Envelope:          t.toEnvelope(),
		Flags:             t.Flags(),
		MPTokenIssuanceID: clonePtr(&t.issuanceID),
		Holder:            clonePtr(t.holder),
	}
}

func (t *MPTokenIssuanceSet) writeFields(w *fieldWriter) {
	w.put("MPTokenIssuanceID", t.issuanceID)
	putPtr(w, "Holder", t.holder)
}

func (t *MPTokenIssuanceSet) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *MPTokenIssuanceSet) UnmarshalJSON(data []byte) error {
	tmp, err := NewMPTokenIssuanceSetFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
