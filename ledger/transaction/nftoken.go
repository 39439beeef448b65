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

const (
	MaxNFTokenOffers = 500

	// MaxTransferFee is the largest transfer fee, in units of 1/100000
	MaxTransferFee = 50000
)

var (
	nfTokenAcceptOfferFieldNames = []string{
		"NFTokenSellOffer",
		"NFTokenBuyOffer",
		"NFTokenBrokerFee",
	}
	nfTokenBurnFieldNames        = []string{"NFTokenID", "Owner"}
	nfTokenCancelOfferFieldNames = []string{"NFTokenOffers"}
	nfTokenCreateOfferFieldNames = []string{
		"NFTokenID",
		"Amount",
		"Owner",
		"Expiration",
		"Destination",
	}
	nfTokenMintFieldNames = []string{
		"NFTokenTaxon",
		"Issuer",
		"TransferFee",
		"URI",
		"Amount",
		"Expiration",
		"Destination",
	}
)

// NFTokenAcceptOffer accepts a sell offer, a buy offer, or brokers a pair of them
type NFTokenAcceptOffer struct {
	txBase
	sellOffer *common.Hash256
	buyOffer  *common.Hash256
	brokerFee common.CurrencyAmount
}

type NFTokenAcceptOfferBuilder struct {
	Envelope
	Flags            common.Flags
	NFTokenSellOffer *common.Hash256
	NFTokenBuyOffer  *common.Hash256
	// NFTokenBrokerFee is only valid in brokered mode, with both offers set
	NFTokenBrokerFee common.CurrencyAmount
}

func (b *NFTokenAcceptOfferBuilder) Build() (*NFTokenAcceptOffer, error) {
	c := newBuildContext(TxTypeNFTokenAcceptOffer)
	c.requireEnvelope(&b.Envelope)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, nfTokenAcceptOfferFieldNames)
	c.validateAmount(b.NFTokenBrokerFee)
	c.check(
		b.NFTokenSellOffer != nil || b.NFTokenBuyOffer != nil,
		"Either NFTokenSellOffer or NFTokenBuyOffer must be present.",
	)
	if b.NFTokenBrokerFee != nil {
		c.check(
			b.NFTokenSellOffer != nil && b.NFTokenBuyOffer != nil,
			"NFTokenBrokerFee requires both NFTokenSellOffer and NFTokenBuyOffer.",
		)
		c.check(
			!b.NFTokenBrokerFee.IsNegative(),
			"NFTokenBrokerFee must not be negative.",
		)
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &NFTokenAcceptOffer{
		txBase:    base,
		sellOffer: clonePtr(b.NFTokenSellOffer),
		buyOffer:  clonePtr(b.NFTokenBuyOffer),
		brokerFee: b.NFTokenBrokerFee,
	}, nil
}

func (b *NFTokenAcceptOfferBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *NFTokenAcceptOfferBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.NFTokenSellOffer = readPtr[common.Hash256](r, "NFTokenSellOffer", expectHash256)
	b.NFTokenBuyOffer = readPtr[common.Hash256](r, "NFTokenBuyOffer", expectHash256)
	b.NFTokenBrokerFee = r.readAmount("NFTokenBrokerFee")
}

func NewNFTokenAcceptOfferFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*NFTokenAcceptOffer, error) {
	return decodeAs[*NFTokenAcceptOffer](TxTypeNFTokenAcceptOffer, data, opts...)
}

func (t *NFTokenAcceptOffer) NFTokenSellOffer() *common.Hash256 {
	return clonePtr(t.sellOffer)
}

func (t *NFTokenAcceptOffer) NFTokenBuyOffer() *common.Hash256 {
	return clonePtr(t.buyOffer)
}

func (t *NFTokenAcceptOffer) NFTokenBrokerFee() common.CurrencyAmount {
	return t.brokerFee
}

// Brokered reports whether both a sell and a buy offer are matched
func (t *NFTokenAcceptOffer) Brokered() bool {
	return t.sellOffer != nil && t.buyOffer != nil
}

func (t *NFTokenAcceptOffer) ToBuilder() *NFTokenAcceptOfferBuilder {
	return &NFTokenAcceptOfferBuilder{
		Envelope:         t.toEnvelope(),
		Flags:            t.flags,
		NFTokenSellOffer: clonePtr(t.sellOffer),
		NFTokenBuyOffer:  clonePtr(t.buyOffer),
		NFTokenBrokerFee: t.brokerFee,
	}
}

func (t *NFTokenAcceptOffer) writeFields(w *fieldWriter) {
	putPtr(w, "NFTokenSellOffer", t.sellOffer)
	putPtr(w, "NFTokenBuyOffer", t.buyOffer)
	w.putAmount("NFTokenBrokerFee", t.brokerFee)
}

func (t *NFTokenAcceptOffer) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *NFTokenAcceptOffer) UnmarshalJSON(data []byte) error {
	tmp, err := NewNFTokenAcceptOfferFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// NFTokenBurn destroys a token
type NFTokenBurn struct {
	txBase
	nfTokenID common.Hash256
	owner     *common.Address
}

type NFTokenBurnBuilder struct {
	Envelope
	Flags common.Flags
	// NFTokenID is required
	NFTokenID *common.Hash256
	Owner     *common.Address
}

func (b *NFTokenBurnBuilder) Build() (*NFTokenBurn, error) {
	c := newBuildContext(TxTypeNFTokenBurn)
	c.requireEnvelope(&b.Envelope)
	c.require("NFTokenID", b.NFTokenID != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, nfTokenBurnFieldNames)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &NFTokenBurn{
		txBase:    base,
		nfTokenID: *b.NFTokenID,
		owner:     clonePtr(b.Owner),
	}, nil
}

func (b *NFTokenBurnBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *NFTokenBurnBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.NFTokenID = readPtr[common.Hash256](r, "NFTokenID", expectHash256)
	b.Owner = readPtr[common.Address](r, "Owner", expectAddress)
}

func NewNFTokenBurnFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*NFTokenBurn, error) {
	return decodeAs[*NFTokenBurn](TxTypeNFTokenBurn, data, opts...)
}

func (t *NFTokenBurn) NFTokenID() common.Hash256 { return t.nfTokenID }

func (t *NFTokenBurn) Owner() *common.Address { return clonePtr(t.owner) }

func (t *NFTokenBurn) ToBuilder() *NFTokenBurnBuilder {
	return &NFTokenBurnBuilder{
		Envelope:  t.toEnvelope(),
		Flags:     t.flags,
		NFTokenID: clonePtr(&t.nfTokenID),
		Owner:     clonePtr(t.owner),
	}
}

func (t *NFTokenBurn) writeFields(w *fieldWriter) {
	w.put("NFTokenID", t.nfTokenID)
	putPtr(w, "Owner", t.owner)
}

func (t *NFTokenBurn) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *NFTokenBurn) UnmarshalJSON(data []byte) error {
	tmp, err := NewNFTokenBurnFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// NFTokenCancelOffer cancels one or more token offers
type NFTokenCancelOffer struct {
	txBase
	tokenOffers []common.Hash256
}

type NFTokenCancelOfferBuilder struct {
	Envelope
	Flags common.Flags
	// NFTokenOffers must be non-empty, hold at most 500 entries and not repeat an offer
	NFTokenOffers []common.Hash256
}

func (b *NFTokenCancelOfferBuilder) Build() (*NFTokenCancelOffer, error) {
	c := newBuildContext(TxTypeNFTokenCancelOffer)
	c.requireEnvelope(&b.Envelope)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, nfTokenCancelOfferFieldNames)
	c.check(
		len(b.NFTokenOffers) > 0,
		"List of token offers must be non-empty.",
	)
	c.check(
		len(b.NFTokenOffers) <= MaxNFTokenOffers,
		"List of token offers must have less than or equal to %d offers.",
		MaxNFTokenOffers,
	)
	c.check(
		!hasDuplicates(b.NFTokenOffers),
		"List of token offers should have unique offers.",
	)
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &NFTokenCancelOffer{
		txBase:      base,
		tokenOffers: cloneSlice(b.NFTokenOffers),
	}, nil
}

func (b *NFTokenCancelOfferBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *NFTokenCancelOfferBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	readInto(r, "NFTokenOffers", "array of 64 hex character strings", &b.NFTokenOffers)
}

func NewNFTokenCancelOfferFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*NFTokenCancelOffer, error) {
	return decodeAs[*NFTokenCancelOffer](TxTypeNFTokenCancelOffer, data, opts...)
}

func (t *NFTokenCancelOffer) TokenOffers() []common.Hash256 {
	return cloneSlice(t.tokenOffers)
}

func (t *NFTokenCancelOffer) ToBuilder() *NFTokenCancelOfferBuilder {
	return &NFTokenCancelOfferBuilder{
		Envelope:      t.toEnvelope(),
		Flags:         t.flags,
		NFTokenOffers: cloneSlice(t.tokenOffers),
	}
}

func (t *NFTokenCancelOffer) writeFields(w *fieldWriter) {
	w.put("NFTokenOffers", t.tokenOffers)
}

func (t *NFTokenCancelOffer) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *NFTokenCancelOffer) UnmarshalJSON(data []byte) error {
	tmp, err := NewNFTokenCancelOfferFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// NFTokenCreateOffer creates an offer to buy or sell a token
type NFTokenCreateOffer struct {
	txBase
	nfTokenID   common.Hash256
	amount      common.CurrencyAmount
	owner       *common.Address
	expiration  *uint32
	destination *common.Address
}

type NFTokenCreateOfferBuilder struct {
	Envelope
	Flags NFTokenCreateOfferFlags
	// NFTokenID is required
	NFTokenID *common.Hash256
	// Amount is required
	Amount common.CurrencyAmount
	// Owner is required for buy offers and not allowed for sell offers
	Owner       *common.Address
	Expiration  *uint32
	Destination *common.Address
}

func (b *NFTokenCreateOfferBuilder) Build() (*NFTokenCreateOffer, error) {
	c := newBuildContext(TxTypeNFTokenCreateOffer)
	c.requireEnvelope(&b.Envelope)
	c.require("NFTokenID", b.NFTokenID != nil)
	c.require("Amount", b.Amount != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(nfTokenCreateOfferFlagMask),
		nfTokenCreateOfferFieldNames,
	)
	c.validateAmount(b.Amount)
	c.check(!b.Amount.IsNegative(), "Amount must not be negative.")
	if b.Flags.SellNFToken() {
		c.check(b.Owner == nil, "Owner must not be present for sell offers.")
	} else {
		c.check(b.Owner != nil, "Owner must be present for buy offers.")
	}
	if b.Owner != nil {
		c.check(
			*b.Owner != base.account,
			"Owner must not be the sending account.",
		)
	}
	if b.Destination != nil {
		c.check(
			*b.Destination != base.account,
			"Destination must not be the sending account.",
		)
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &NFTokenCreateOffer{
		txBase:      base,
		nfTokenID:   *b.NFTokenID,
		amount:      b.Amount,
		owner:       clonePtr(b.Owner),
		expiration:  clonePtr(b.Expiration),
		destination: clonePtr(b.Destination),
	}, nil
}

func (b *NFTokenCreateOfferBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *NFTokenCreateOfferBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.NFTokenID = readPtr[common.Hash256](r, "NFTokenID", expectHash256)
	b.Amount = r.readAmount("Amount")
	b.Owner = readPtr[common.Address](r, "Owner", expectAddress)
	b.Expiration = readPtr[uint32](r, "Expiration", expectUint32)
	b.Destination = readPtr[common.Address](r, "Destination", expectAddress)
}

func NewNFTokenCreateOfferFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*NFTokenCreateOffer, error) {
	return decodeAs[*NFTokenCreateOffer](TxTypeNFTokenCreateOffer, data, opts...)
}

func (t *NFTokenCreateOffer) Flags() NFTokenCreateOfferFlags {
	return NFTokenCreateOfferFlags(t.flags)
}

func (t *NFTokenCreateOffer) NFTokenID() common.Hash256 { return t.nfTokenID }

func (t *NFTokenCreateOffer) Amount() common.CurrencyAmount { return t.amount }

func (t *NFTokenCreateOffer) Owner() *common.Address { return clonePtr(t.owner) }

func (t *NFTokenCreateOffer) Expiration() *uint32 { return clonePtr(t.expiration) }

func (t *NFTokenCreateOffer) Destination() *common.Address {
	return clonePtr(t.destination)
}

func (t *NFTokenCreateOffer) ToBuilder() *NFTokenCreateOfferBuilder {
	return &NFTokenCreateOfferBuilder{
		Envelope:    t.toEnvelope(),
		Flags:       t.Flags(),
		NFTokenID:   clonePtr(&t.nfTokenID),
		Amount:      t.amount,
		Owner:       clonePtr(t.owner),
		Expiration:  clonePtr(t.expiration),
		Destination: clonePtr(t.destination),
	}
}

func (t *NFTokenCreateOffer) writeFields(w *fieldWriter) {
	w.put("NFTokenID", t.nfTokenID)
	w.putAmount("Amount", t.amount)
	putPtr(w, "Owner", t.owner)
	putPtr(w, "Expiration", t.expiration)
	putPtr(w, "Destination", t.destination)
}

func (t *NFTokenCreateOffer) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *NFTokenCreateOffer) UnmarshalJSON(data []byte) error {
	tmp, err := NewNFTokenCreateOfferFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}

// NFTokenMint creates a non-fungible token, optionally with an initial sell offer
type NFTokenMint struct {
	txBase
	taxon       uint32
	issuer      *common.Address
	transferFee *uint16
	uri         *common.Uri
	amount      common.CurrencyAmount
	expiration  *uint32
	destination *common.Address
}

type NFTokenMintBuilder struct {
	Envelope
	Flags NFTokenMintFlags
	// NFTokenTaxon is required
	NFTokenTaxon *uint32
	Issuer       *common.Address
	TransferFee  *uint16
	URI          *common.Uri
	// Amount creates an initial sell offer. Expiration and Destination require it.
	Amount      common.CurrencyAmount
	Expiration  *uint32
	Destination *common.Address
}

func (b *NFTokenMintBuilder) Build() (*NFTokenMint, error) {
	c := newBuildContext(TxTypeNFTokenMint)
	c.requireEnvelope(&b.Envelope)
	c.require("NFTokenTaxon", b.NFTokenTaxon != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(
		&b.Envelope,
		flagsOf(b.Flags),
		flagsOf(nfTokenMintFlagMask),
		nfTokenMintFieldNames,
	)
	validatePtr(c, b.URI)
	c.validateAmount(b.Amount)
	if b.TransferFee != nil {
		c.check(
			*b.TransferFee <= MaxTransferFee,
			"TransferFee must be <= %d.",
			MaxTransferFee,
		)
		c.check(
			*b.TransferFee == 0 || b.Flags.Transferable(),
			"TransferFee requires the Transferable flag.",
		)
	}
	if b.Issuer != nil {
		c.check(
			*b.Issuer != base.account,
			"Issuer must not be the sending account.",
		)
	}
	if b.Amount != nil {
		c.check(!b.Amount.IsNegative(), "Amount must not be negative.")
	} else {
		c.check(
			b.Expiration == nil && b.Destination == nil,
			"Expiration and Destination require Amount.",
		)
	}
	if b.Destination != nil {
		c.check(
			*b.Destination != base.account,
			"Destination must not be the sending account.",
		)
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &NFTokenMint{
		txBase:      base,
		taxon:       *b.NFTokenTaxon,
		issuer:      clonePtr(b.Issuer),
		transferFee: clonePtr(b.TransferFee),
		uri:         clonePtr(b.URI),
		amount:      b.Amount,
		expiration:  clonePtr(b.Expiration),
		destination: clonePtr(b.Destination),
	}, nil
}

func (b *NFTokenMintBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *NFTokenMintBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.NFTokenTaxon = readPtr[uint32](r, "NFTokenTaxon", expectUint32)
	b.Issuer = readPtr[common.Address](r, "Issuer", expectAddress)
	b.TransferFee = readPtr[uint16](r, "TransferFee", expectUint16)
	b.URI = readPtr[common.Uri](r, "URI", expectHex)
	b.Amount = r.readAmount("Amount")
	b.Expiration = readPtr[uint32](r, "Expiration", expectUint32)
	b.Destination = readPtr[common.Address](r, "Destination", expectAddress)
}

func NewNFTokenMintFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*NFTokenMint, error) {
	return decodeAs[*NFTokenMint](TxTypeNFTokenMint, data, opts...)
}

func (t *NFTokenMint) Flags() NFTokenMintFlags { return NFTokenMintFlags(t.flags) }

func (t *NFTokenMint) NFTokenTaxon() uint32 { return t.taxon }

func (t *NFTokenMint) Issuer() *common.Address { return clonePtr(t.issuer) }

func (t *NFTokenMint) TransferFee() *uint16 { return clonePtr(t.transferFee) }

func (t *NFTokenMint) URI() *common.Uri { return clonePtr(t.uri) }

func (t *NFTokenMint) Amount() common.CurrencyAmount { return t.amount }

func (t *NFTokenMint) Expiration() *uint32 { return clonePtr(t.expiration) }

func (t *NFTokenMint) Destination() *common.Address { return clonePtr(t.destination) }

func (t *NFTokenMint) ToBuilder() *NFTokenMintBuilder {
	return &NFTokenMintBuilder{
		Envelope:     t.toEnvelope(),
		Flags:        t.Flags(),
		NFTokenTaxon: clonePtr(&t.taxon),
		Issuer:       clonePtr(t.issuer),
		TransferFee:  clonePtr(t.transferFee),
		URI:          clonePtr(t.uri),
		Amount:       t.amount,
		Expiration:   clonePtr(t.expiration),
		Destination:  clonePtr(t.destination),
	}
}

func (t *NFTokenMint) writeFields(w *fieldWriter) {
	w.put("NFTokenTaxon", t.taxon)
	putPtr(w, "Issuer", t.issuer)
	putPtr(w, "TransferFee", t.transferFee)
	putPtr(w, "URI", t.uri)
	w.putAmount("Amount", t.amount)
	putPtr(w, "Expiration", t.expiration)
	putPtr(w, "Destination", t.destination)
}

func (t *NFTokenMint) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *NFTokenMint) UnmarshalJSON(data []byte) error {
	tmp, err := NewNFTokenMintFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
