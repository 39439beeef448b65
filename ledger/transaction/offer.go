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
	offerCancelFieldNames = []string{"OfferSequence"}
	offerCreateFieldNames = []string{
		"TakerGets",
		"TakerPays",
		"Expiration",
		"OfferSequence",
	}
)

// OfferCancel removes an offer from the order book
type OfferCancel struct {
	txBase
	offerSequence *uint32
}

type OfferCancelBuilder struct {
	Envelope
	Flags         common.Flags
	OfferSequence *uint32
}

func (b *OfferCancelBuilder) Build() (*OfferCancel, error) {
	c := newBuildContext(TxTypeOfferCancel)
	c.requireEnvelope(&b.Envelope)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, offerCancelFieldNames)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &OfferCancel{
		txBase:        base,
		offerSequence: clonePtr(b.OfferSequence),
	}, nil
}

func (b *OfferCancelBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *OfferCancelBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.OfferSequence = readPtr[uint32](r, "OfferSequence", expectUint32)
}

func NewOfferCancelFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*OfferCancel, error) {
	return decodeAs[*OfferCancel](TxTypeOfferCancel, data, opts...)
}

func (t *OfferCancel) OfferSequence() *uint32 { return clonePtr(t.offerSequence) }

func (t *OfferCancel) ToBuilder() *OfferCancelBuilder {
	return &OfferCancelBuilder{
		Envelope:      t.toEnvelope(),
		Flags:         t.flags,
		OfferSequence: clonePtr(t.offerSequence),
	}
}

func (t *OfferCancel) writeFields(w *fieldWriter) {
	putPtr(w, "OfferSequence", t.offerSequence)
}

func (t *OfferCancel) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *OfferCancel) UnmarshalJSON(data []byte) error {
	tmp, err := NewOfferCancelFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// OfferCreate places an offer in the order book
type OfferCreate struct {
	txBase
	takerGets     common.CurrencyAmount
	takerPays     common.CurrencyAmount
	expiration    *uint32
	offerSequence *uint32
}

type OfferCreateBuilder struct {
	Envelope
	Flags OfferCreateFlags
	// TakerGets is required
	TakerGets common.CurrencyAmount
	// TakerPays is required
	TakerPays common.CurrencyAmount
	// Expiration is in seconds since the ledger epoch
	Expiration *uint32
	// OfferSequence names an offer to cancel first
	OfferSequence *uint32
}

func (b *OfferCreateBuilder) Build() (*OfferCreate, error) {
	c := newBuildContext(TxTypeOfferCreate)
	c.requireEnvelope(&b.Envelope)
	c.require("TakerGets", b.TakerGets != nil)
	c.require("TakerPays", b.TakerPays != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(offerCreateFlagMask),
		offerCreateFieldNames,
	)
	c.validateAmount(b.TakerGets)
	c.validateAmount(b.TakerPays)
	c.check(
		!(b.Flags.ImmediateOrCancel() && b.Flags.FillOrKill()),
		"ImmediateOrCancel and FillOrKill flags cannot both be set.",
	)
	c.check(
		!(common.IsXrpAmount(b.TakerGets) && common.IsXrpAmount(b.TakerPays)),
		"TakerGets and TakerPays cannot both be XRP.",
	)
	c.check(
		!b.TakerGets.IsNegative() && !b.TakerPays.IsNegative(),
		"TakerGets and TakerPays must not be negative.",
	)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &OfferCreate{
		txBase:        base,
		takerGets:     b.TakerGets,
		takerPays:     b.TakerPays,
		expiration:    clonePtr(b.Expiration),
		offerSequence: clonePtr(b.OfferSequence),
	}, nil
}

func (b *OfferCreateBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *OfferCreateBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.TakerGets = r.readAmount("TakerGets")
	b.TakerPays = r.readAmount("TakerPays")
	b.Expiration = readPtr[uint32](r, "Expiration", expectUint32)
	b.OfferSequence = readPtr[uint32](r, "OfferSequence", expectUint32)
}

func NewOfferCreateFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*OfferCreate, error) {
	return decodeAs[*OfferCreate](TxTypeOfferCreate, data, opts...)
}

func (t *OfferCreate) Flags() OfferCreateFlags { return OfferCreateFlags(t.flags) }

func (t *OfferCreate) TakerGets() common.CurrencyAmount { return t.takerGets }

func (t *OfferCreate) TakerPays() common.CurrencyAmount { return t.takerPays }

func (t *OfferCreate) Expiration() *uint32 { return clonePtr(t.expiration) }

func (t *OfferCreate) OfferSequence() *uint32 { return clonePtr(t.offerSequence) }

func (t *OfferCreate) ToBuilder() *OfferCreateBuilder {
	return &OfferCreateBuilder{
		Envelope:      t.toEnvelope(),
		Flags:         t.Flags(),
		TakerGets:     t.takerGets,
		TakerPays:     t.takerPays,
		Expiration:    clonePtr(t.expiration),
		OfferSequence: clonePtr(t.offerSequence),
	}
}

func (t *OfferCreate) writeFields(w *fieldWriter) {
	w.putAmount("TakerGets", t.takerGets)
	w.putAmount("TakerPays", t.takerPays)
	putPtr(w, "Expiration", t.expiration)
	putPtr(w, "OfferSequence", t.offerSequence)
}

func (t *OfferCreate) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *OfferCreate) UnmarshalJSON(data []byte) error {
	tmp, err := NewOfferCreateFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
