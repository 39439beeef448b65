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

var paymentFieldNames = []string{
	"Amount",
	"Destination",
	"DestinationTag",
	"InvoiceID",
	"SendMax",
	"DeliverMin",
}

// Payment transfers value from the sending account to a destination. Paths are not modelled
// and are carried as an unknown field.
type Payment struct {
	txBase
	amount         common.CurrencyAmount
	destination    common.Address
	destinationTag *uint32
	invoiceID      *common.Hash256
	sendMax        common.CurrencyAmount
	deliverMin     common.CurrencyAmount
}

type PaymentBuilder struct {
	Envelope
	Flags PaymentFlags
	// Amount is required
	Amount common.CurrencyAmount
	// Destination is required
	Destination    *common.Address
	DestinationTag *uint32
	InvoiceID      *common.Hash256
	SendMax        common.CurrencyAmount
	// DeliverMin is only valid for partial payments
	DeliverMin common.CurrencyAmount
}

func (b *PaymentBuilder) Build() (*Payment, error) {
	c := newBuildContext(TxTypePayment)
	c.requireEnvelope(&b.Envelope)
	c.require("Amount", b.Amount != nil)
	c.require("Destination", b.Destination != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(paymentFlagMask),
		paymentFieldNames,
	)
	c.validateAmount(b.Amount)
	c.validateAmount(b.SendMax)
	c.validateAmount(b.DeliverMin)
	c.check(!b.Amount.IsNegative(), "Amount must not be negative.")
	if b.SendMax != nil {
		c.check(!b.SendMax.IsNegative(), "SendMax must not be negative.")
	}
	if b.DeliverMin != nil {
		c.check(
			b.Flags.PartialPayment(),
			"DeliverMin requires the PartialPayment flag.",
		)
		c.check(!b.DeliverMin.IsNegative(), "DeliverMin must not be negative.")
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &Payment{
		txBase:         base,
		amount:         b.Amount,
		destination:    *b.Destination,
		destinationTag: clonePtr(b.DestinationTag),
		invoiceID:      clonePtr(b.InvoiceID),
		sendMax:        b.SendMax,
		deliverMin:     b.DeliverMin,
	}, nil
}

func (b *PaymentBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *PaymentBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.Amount = r.readAmount("Amount")
	b.Destination = readPtr[common.Address](r, "Destination", expectAddress)
	b.DestinationTag = readPtr[uint32](r, "DestinationTag", expectUint32)
	b.InvoiceID = readPtr[common.Hash256](r, "InvoiceID", expectHash256)
	b.SendMax = r.readAmount("SendMax")
	b.DeliverMin = r.readAmount("DeliverMin")
}

func NewPaymentFromJson(data []byte, opts ...CodecOptionFunc) (*Payment, error) {
	return decodeAs[*Payment](TxTypePayment, data, opts...)
}

func (t *Payment) Flags() PaymentFlags { return PaymentFlags(t.flags) }

func (t *Payment) Amount() common.CurrencyAmount { return t.amount }

func (t *Payment) Destination() common.Address { return t.destination }

func (t *Payment) DestinationTag() *uint32 { return clonePtr(t.destinationTag) }

func (t *Payment) InvoiceID() *common.Hash256 { return clonePtr(t.invoiceID) }

func (t *Payment) SendMax() common.CurrencyAmount { return t.sendMax }

func (t *Payment) DeliverMin() common.CurrencyAmount { return t.deliverMin }

func (t *Payment) ToBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		Envelope:       t.toEnvelope(),
		Flags:          t.Flags(),
		Amount:         t.amount,
		Destination:    clonePtr(&t.destination),
		DestinationTag: clonePtr(t.destinationTag),
		InvoiceID:      clonePtr(t.invoiceID),
		SendMax:        t.sendMax,
		DeliverMin:     t.deliverMin,
	}
}

func (t *Payment) writeFields(w *fieldWriter) {
	w.putAmount("Amount", t.amount)
	w.put("Destination", t.destination)
	putPtr(w, "DestinationTag", t.destinationTag)
	putPtr(w, "InvoiceID", t.invoiceID)
	w.putAmount("SendMax", t.sendMax)
	w.putAmount("DeliverMin", t.deliverMin)
}

func (t *Payment) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *Payment) UnmarshalJSON(data []byte) error {
	tmp, err := NewPaymentFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
