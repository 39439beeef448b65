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
	"strings"

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

// Pseudo-transactions are produced by validators rather than submitted by accounts. They are
// attributed to common.AccountZero, carry a zero fee and an empty signing key.

var (
	enableAmendmentFieldNames = []string{"Amendment", "LedgerSequence"}
	setFeeFieldNames          = []string{
		"BaseFee",
		"ReferenceFeeUnits",
		"ReserveBase",
		"ReserveIncrement",
		"BaseFeeDrops",
		"ReserveBaseDrops",
		"ReserveIncrementDrops",
		"LedgerSequence",
	}
	unlModifyFieldNames = []string{
		"LedgerSequence",
		"UNLModifyDisabling",
		"UNLModifyValidator",
	}
)

// EnableAmendment records a change in the majority status of an amendment, or its activation
type EnableAmendment struct {
	txBase
	amendment      common.Hash256
	ledgerSequence *uint32
}

type EnableAmendmentBuilder struct {
	Envelope
	Flags EnableAmendmentFlags
	// Amendment is required
	Amendment      *common.Hash256
	LedgerSequence *uint32
}

func (b *EnableAmendmentBuilder) Build() (*EnableAmendment, error) {
	c := newBuildContext(TxTypeEnableAmendment)
	c.requireEnvelope(&b.Envelope)
	c.require("Amendment", b.Amendment != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(enableAmendmentFlagMask),
		enableAmendmentFieldNames,
	)
	c.check(
		!(b.Flags.GotMajority() && b.Flags.LostMajority()),
		"GotMajority and LostMajority flags cannot both be set.",
	)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &EnableAmendment{
		txBase:         base,
		amendment:      *b.Amendment,
		ledgerSequence: clonePtr(b.LedgerSequence),
	}, nil
}

func (b *EnableAmendmentBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *EnableAmendmentBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.Amendment = readPtr[common.Hash256](r, "Amendment", expectHash256)
	b.LedgerSequence = readPtr[uint32](r, "LedgerSequence", expectUint32)
}

func NewEnableAmendmentFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*EnableAmendment, error) {
	return decodeAs[*EnableAmendment](TxTypeEnableAmendment, data, opts...)
}

func (t *EnableAmendment) Flags() EnableAmendmentFlags {
	return EnableAmendmentFlags(t.flags)
}

func (t *EnableAmendment) Amendment() common.Hash256 { return t.amendment }

func (t *EnableAmendment) LedgerSequence() *uint32 { return clonePtr(t.ledgerSequence) }

func (t *EnableAmendment) ToBuilder() *EnableAmendmentBuilder {
	return &EnableAmendmentBuilder{
		Envelope:       t.toEnvelope(),
		Flags:          t.Flags(),
		Amendment:      clonePtr(&t.amendment),
		LedgerSequence: clonePtr(t.ledgerSequence),
	}
}

func (t *EnableAmendment) writeFields(w *fieldWriter) {
	w.put("Amendment", t.amendment)
	putPtr(w, "LedgerSequence", t.ledgerSequence)
}

func (t *EnableAmendment) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *EnableAmendment) UnmarshalJSON(data []byte) error {
	tmp, err := NewEnableAmendmentFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// SetFee changes the fee and reserve schedule. Before the XRPFees amendment the schedule is
// expressed as BaseFee, ReferenceFeeUnits, ReserveBase and ReserveIncrement; after it, as the
// three Drops fields.
type SetFee struct {
	txBase
	baseFee               *string
	referenceFeeUnits     *uint32
	reserveBase           *uint32
	reserveIncrement      *uint32
	baseFeeDrops          *common.XrpCurrencyAmount
	reserveBaseDrops      *common.XrpCurrencyAmount
	reserveIncrementDrops *common.XrpCurrencyAmount
	ledgerSequence        *uint32
}

type SetFeeBuilder struct {
	Envelope
	Flags common.Flags
	// BaseFee is a 64-bit unsigned integer written as up to 16 hex characters
	BaseFee               *string
	ReferenceFeeUnits     *uint32
	ReserveBase           *uint32
	ReserveIncrement      *uint32
	BaseFeeDrops          *common.XrpCurrencyAmount
	ReserveBaseDrops      *common.XrpCurrencyAmount
	ReserveIncrementDrops *common.XrpCurrencyAmount
	LedgerSequence        *uint32
}

func (b *SetFeeBuilder) Build() (*SetFee, error) {
	c := newBuildContext(TxTypeSetFee)
	c.requireEnvelope(&b.Envelope)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	var baseFee *string
	if b.BaseFee != nil {
		tmp, err := normalizeUInt64Hex("BaseFee", *b.BaseFee)
		c.format(err)
		baseFee = &tmp
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, setFeeFieldNames)
	validatePtr(c, b.BaseFeeDrops)
	validatePtr(c, b.ReserveBaseDrops)
	validatePtr(c, b.ReserveIncrementDrops)
	legacyAll := b.BaseFee != nil && b.ReferenceFeeUnits != nil &&
		b.ReserveBase != nil && b.ReserveIncrement != nil
	legacyAny := b.BaseFee != nil || b.ReferenceFeeUnits != nil ||
		b.ReserveBase != nil || b.ReserveIncrement != nil
	dropsAll := b.BaseFeeDrops != nil && b.ReserveBaseDrops != nil &&
		b.ReserveIncrementDrops != nil
	dropsAny := b.BaseFeeDrops != nil || b.ReserveBaseDrops != nil ||
		b.ReserveIncrementDrops != nil
	c.check(
		(legacyAll && !dropsAny) || (dropsAll && !legacyAny),
		"SetFee must carry exactly one complete fee schedule.",
	)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &SetFee{
		txBase:                base,
		baseFee:               baseFee,
		referenceFeeUnits:     clonePtr(b.ReferenceFeeUnits),
		reserveBase:           clonePtr(b.ReserveBase),
		reserveIncrement:      clonePtr(b.ReserveIncrement),
		baseFeeDrops:          clonePtr(b.BaseFeeDrops),
		reserveBaseDrops:      clonePtr(b.ReserveBaseDrops),
		reserveIncrementDrops: clonePtr(b.ReserveIncrementDrops),
		ledgerSequence:        clonePtr(b.LedgerSequence),
	}, nil
}

// normalizeUInt64Hex validates a UInt64 field written as hex and returns it in uppercase
func normalizeUInt64Hex(name string, value string) (string, error) {
	valid := len(value) > 0 && len(value) <= 16
	for i := 0; valid && i < len(value); i++ {
		ch := value[i]
		valid = (ch >= '0' && ch <= '9') ||
			(ch >= 'a' && ch <= 'f') ||
			(ch >= 'A' && ch <= 'F')
	}
	if !valid {
		return "", &common.FormatError{
			Type:    name,
			Value:   value,
			Message: name + " must be 1 to 16 hex characters.",
		}
	}
	return strings.ToUpper(value), nil
}

func (b *SetFeeBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *SetFeeBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.BaseFee = readPtr[string](r, "BaseFee", "hex string of up to 16 characters")
	b.ReferenceFeeUnits = readPtr[uint32](r, "ReferenceFeeUnits", expectUint32)
	b.ReserveBase = readPtr[uint32](r, "ReserveBase", expectUint32)
	b.ReserveIncrement = readPtr[uint32](r, "ReserveIncrement", expectUint32)
	b.BaseFeeDrops = readPtr[common.XrpCurrencyAmount](r, "BaseFeeDrops", expectDrops)
	b.ReserveBaseDrops = readPtr[common.XrpCurrencyAmount](r, "ReserveBaseDrops", expectDrops)
	b.ReserveIncrementDrops = readPtr[common.XrpCurrencyAmount](
		r,
		"ReserveIncrementDrops",
		expectDrops,
	)
	b.LedgerSequence = readPtr[uint32](r, "LedgerSequence", expectUint32)
}

func NewSetFeeFromJson(data []byte, opts ...CodecOptionFunc) (*SetFee, error) {
	return decodeAs[*SetFee](TxTypeSetFee, data, opts...)
}

func (t *SetFee) BaseFee() *string { return clonePtr(t.baseFee) }

func (t *SetFee) ReferenceFeeUnits() *uint32 { return clonePtr(t.referenceFeeUnits) }

func (t *SetFee) ReserveBase() *uint32 { return clonePtr(t.reserveBase) }

func (t *SetFee) ReserveIncrement() *uint32 { return clonePtr(t.reserveIncrement) }

func (t *SetFee) BaseFeeDrops() *common.XrpCurrencyAmount {
	return clonePtr(t.baseFeeDrops)
}

func (t *SetFee) ReserveBaseDrops() *common.XrpCurrencyAmount {
	return clonePtr(t.reserveBaseDrops)
}

func (t *SetFee) ReserveIncrementDrops() *common.XrpCurrencyAmount {
	return clonePtr(t.reserveIncrementDrops)
}

func (t *SetFee) LedgerSequence() *uint32 { return clonePtr(t.ledgerSequence) }

func (t *SetFee) ToBuilder() *SetFeeBuilder {
	return &SetFeeBuilder{
		Envelope:              t.toEnvelope(),
		Flags:                 t.flags,
		BaseFee:               clonePtr(t.baseFee),
		ReferenceFeeUnits:     clonePtr(t.referenceFeeUnits),
		ReserveBase:           clonePtr(t.reserveBase),
		ReserveIncrement:      clonePtr(t.reserveIncrement),
		BaseFeeDrops:          clonePtr(t.baseFeeDrops),
		ReserveBaseDrops:      clonePtr(t.reserveBaseDrops),
		ReserveIncrementDrops: clonePtr(t.reserveIncrementDrops),
		LedgerSequence:        clonePtr(t.ledgerSequence),
	}
}

func (t *SetFee) writeFields(w *fieldWriter) {
	putPtr(w, "BaseFee", t.baseFee)
	putPtr(w, "ReferenceFeeUnits", t.referenceFeeUnits)
	putPtr(w, "ReserveBase", t.reserveBase)
	putPtr(w, "ReserveIncrement", t.reserveIncrement)
	putPtr(w, "BaseFeeDrops", t.baseFeeDrops)
	putPtr(w, "ReserveBaseDrops", t.reserveBaseDrops)
	putPtr(w, "ReserveIncrementDrops", t.reserveIncrementDrops)
	putPtr(w, "LedgerSequence", t.ledgerSequence)
}

func (t *SetFee) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *SetFee) UnmarshalJSON(data []byte) error {
	tmp, err := NewSetFeeFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// UNLModify disables or re-enables a validator on the negative UNL. Its account is always
// common.AccountZero, whatever the builder holds.
type UNLModify struct {
	txBase
	ledgerSequence uint32
	disabling      uint8
	validator      common.PublicKey
}

type UNLModifyBuilder struct {
	Envelope
	Flags common.Flags
	// LedgerSequence is required
	LedgerSequence *uint32
	// UNLModifyDisabling is required: 1 disables the validator, 0 re-enables it
	UNLModifyDisabling *uint8
	// UNLModifyValidator is required
	UNLModifyValidator *common.PublicKey
}

func (b *UNLModifyBuilder) Build() (*UNLModify, error) {
	c := newBuildContext(TxTypeUNLModify)
	c.requireEnvelope(&b.Envelope)
	c.require("LedgerSequence", b.LedgerSequence != nil)
	c.require("UNLModifyDisabling", b.UNLModifyDisabling != nil)
	c.require(
		"UNLModifyValidator",
		b.UNLModifyValidator != nil && !b.UNLModifyValidator.IsEmpty(),
	)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, unlModifyFieldNames)
	c.check(
		*b.UNLModifyDisabling <= 1,
		"UNLModifyDisabling must be 0 or 1.",
	)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &UNLModify{
		txBase:         base,
		ledgerSequence: *b.LedgerSequence,
		disabling:      *b.UNLModifyDisabling,
		validator:      *b.UNLModifyValidator,
	}, nil
}

func (b *UNLModifyBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *UNLModifyBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.LedgerSequence = readPtr[uint32](r, "LedgerSequence", expectUint32)
	b.UNLModifyDisabling = readPtr[uint8](r, "UNLModifyDisabling", expectUint8)
	b.UNLModifyValidator = readPtr[common.PublicKey](r, "UNLModifyValidator", expectPublicKey)
}

func NewUNLModifyFromJson(data []byte, opts ...CodecOptionFunc) (*UNLModify, error) {
	return decodeAs[*UNLModify](TxTypeUNLModify, data, opts...)
}

func (t *UNLModify) LedgerSequence() uint32 { return t.ledgerSequence }

func (t *UNLModify) UNLModifyDisabling() uint8 { return t.disabling }

// Disabling reports whether the validator is being added to the negative UNL
func (t *UNLModify) Disabling() bool { return t.disabling == 1 }

func (t *UNLModify) UNLModifyValidator() common.PublicKey { return t.validator }

func (t *UNLModify) ToBuilder() *UNLModifyBuilder {
	return &UNLModifyBuilder{
		Envelope:           t.toEnvelope(),
		Flags:              t.flags,
		LedgerSequence:     clonePtr(&t.ledgerSequence),
		UNLModifyDisabling: clonePtr(&t.disabling),
		UNLModifyValidator: clonePtr(&t.validator),
	}
}

func (t *UNLModify) writeFields(w *fieldWriter) {
	w.put("LedgerSequence", t.ledgerSequence)
	w.put("UNLModifyDisabling", t.disabling)
	w.put("UNLModifyValidator", t.validator)
}

func (t *UNLModify) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *UNLModify) UnmarshalJSON(data []byte) error {
	tmp, err := NewUNLModifyFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
