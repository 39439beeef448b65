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
	"slices"

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

// Canonical order of the fields shared by every transaction
var envelopeFieldNames = []string{
	"Account",
	"TransactionType",
	"Fee",
	"Sequence",
	"TicketSequence",
	"LastLedgerSequence",
	"SourceTag",
	"AccountTxnID",
	"NetworkID",
	"Flags",
	"Memos",
	"Signers",
	"SigningPubKey",
	"TxnSignature",
}

// Envelope holds the builder fields common to every transaction type. It is embedded in each
// variant builder.
type Envelope struct {
	// Account is required except on pseudo-transactions, where it defaults to AccountZero
	Account *common.Address
	// Fee is required except on pseudo-transactions, where it defaults to zero
	Fee      *common.XrpCurrencyAmount
	Sequence uint32
	// TicketSequence may only be set when Sequence is 0
	TicketSequence     *uint32
	LastLedgerSequence *uint32
	SourceTag          *uint32
	NetworkID          *uint32
	AccountTxnID       *common.Hash256
	Memos              []Memo
	Signers            []Signer
	SigningPubKey      common.PublicKey
	TxnSignature       *common.Signature
	UnknownFields      common.UnknownFields
}

func (e *Envelope) envelope() *Envelope {
	return e
}

// Memo is arbitrary data attached to a transaction. At least one field must be set.
type Memo struct {
	MemoData   *common.Blob
	MemoFormat *common.Blob
	MemoType   *common.Blob
}

type memoFieldsJson struct {
	MemoData   *common.Blob `json:"MemoData,omitempty"`
	MemoFormat *common.Blob `json:"MemoFormat,omitempty"`
	MemoType   *common.Blob `json:"MemoType,omitempty"`
}

type memoJson struct {
	Memo *memoFieldsJson `json:"Memo"`
}

func (m Memo) IsEmpty() bool {
	return m.MemoData == nil && m.MemoFormat == nil && m.MemoType == nil
}

func (m Memo) clone() Memo {
	return Memo{
		MemoData:   clonePtr(m.MemoData),
		MemoFormat: clonePtr(m.MemoFormat),
		MemoType:   clonePtr(m.MemoType),
	}
}

func (m Memo) MarshalJSON() ([]byte, error) {
	return json.Marshal(memoJson{
		Memo: &memoFieldsJson{
			MemoData:   m.MemoData,
			MemoFormat: m.MemoFormat,
			MemoType:   m.MemoType,
		},
	})
}

func (m *Memo) UnmarshalJSON(data []byte) error {
	var tmp memoJson
	if err := decodeStrict(data, &tmp); err != nil {
		return fmt.Errorf("invalid Memo: %w", err)
	}
	if tmp.Memo == nil {
		return &common.NotPresentError{Type: "Memo"}
	}
	m.MemoData = tmp.Memo.MemoData
	m.MemoFormat = tmp.Memo.MemoFormat
	m.MemoType = tmp.Memo.MemoType
	return nil
}

// Signer is one signature of a multi-signed transaction
type Signer struct {
	Account       common.Address
	SigningPubKey common.PublicKey
	TxnSignature  common.Signature
}

type signerFieldsJson struct {
	Account       *common.Address   `json:"Account"`
	SigningPubKey *common.PublicKey `json:"SigningPubKey"`
	TxnSignature  *common.Signature `json:"TxnSignature"`
}

type signerJson struct {
	Signer *signerFieldsJson `json:"Signer"`
}

func (s Signer) MarshalJSON() ([]byte, error) {
	return json.Marshal(signerJson{
		Signer: &signerFieldsJson{
			Account:       &s.Account,
			SigningPubKey: &s.SigningPubKey,
			TxnSignature:  &s.TxnSignature,
		},
	})
}

func (s *Signer) UnmarshalJSON(data []byte) error {
	var tmp signerJson
	if err := decodeStrict(data, &tmp); err != nil {
		return fmt.Errorf("invalid Signer: %w", err)
	}
	if tmp.Signer == nil ||
		tmp.Signer.Account == nil ||
		tmp.Signer.SigningPubKey == nil ||
		tmp.Signer.TxnSignature == nil {
		return &common.NotPresentError{Type: "Signer"}
	}
	s.Account = *tmp.Signer.Account
	s.SigningPubKey = *tmp.Signer.SigningPubKey
	s.TxnSignature = *tmp.Signer.TxnSignature
	return nil
}

// txBase holds the resolved envelope of a built transaction
type txBase struct {
	txType             TransactionType
	account            common.Address
	fee                common.XrpCurrencyAmount
	sequence           uint32
	ticketSequence     *uint32
	lastLedgerSequence *uint32
	sourceTag          *uint32
	networkID          *uint32
	accountTxnID       *common.Hash256
	flags              common.Flags
	memos              []Memo
	signers            []Signer
	signingPubKey      common.PublicKey
	txnSignature       *common.Signature
	unknownFields      common.UnknownFields
}

func (t *txBase) base() *txBase { return t }

func (t *txBase) Type() TransactionType { return t.txType }

func (t *txBase) Account() common.Address { return t.account }

func (t *txBase) Fee() common.XrpCurrencyAmount { return t.fee }

func (t *txBase) Sequence() uint32 { return t.sequence }

func (t *txBase) TicketSequence() *uint32 { return clonePtr(t.ticketSequence) }

func (t *txBase) LastLedgerSequence() *uint32 { return clonePtr(t.lastLedgerSequence) }

func (t *txBase) SourceTag() *uint32 { return clonePtr(t.sourceTag) }

func (t *txBase) NetworkID() *uint32 { return clonePtr(t.networkID) }

func (t *txBase) AccountTxnID() *common.Hash256 { return clonePtr(t.accountTxnID) }

func (t *txBase) Memos() []Memo { return cloneMemos(t.memos) }

func (t *txBase) Signers() []Signer { return cloneSlice(t.signers) }

func (t *txBase) SigningPubKey() common.PublicKey { return t.signingPubKey }

func (t *txBase) TxnSignature() *common.Signature { return clonePtr(t.txnSignature) }

func (t *txBase) TransactionFlags() common.Flags { return t.flags }

// Flags returns the resolved flags. Variants with protocol flags shadow this with their own
// flag type.
func (t *txBase) Flags() common.Flags { return t.flags }

func (t *txBase) UnknownFields() common.UnknownFields { return t.unknownFields }

// toEnvelope returns builder fields that reproduce the resolved envelope
func (t *txBase) toEnvelope() Envelope {
	account := t.account
	fee := t.fee
	return Envelope{
		Account:            &account,
		Fee:                &fee,
		Sequence:           t.sequence,
		TicketSequence:     clonePtr(t.ticketSequence),
		LastLedgerSequence: clonePtr(t.lastLedgerSequence),
		SourceTag:          clonePtr(t.sourceTag),
		NetworkID:          clonePtr(t.networkID),
		AccountTxnID:       clonePtr(t.accountTxnID),
		Memos:              cloneMemos(t.memos),
		Signers:            cloneSlice(t.signers),
		SigningPubKey:      t.signingPubKey,
		TxnSignature:       clonePtr(t.txnSignature),
		UnknownFields:      t.unknownFields,
	}
}

func (t *txBase) writeEnvelope(w *fieldWriter) {
	w.put("Account", t.account)
	w.put("TransactionType", t.txType)
	w.put("Fee", t.fee)
	w.put("Sequence", t.sequence)
	putPtr(w, "TicketSequence", t.ticketSequence)
	putPtr(w, "LastLedgerSequence", t.lastLedgerSequence)
	putPtr(w, "SourceTag", t.sourceTag)
	putPtr(w, "AccountTxnID", t.accountTxnID)
	putPtr(w, "NetworkID", t.networkID)
	if !t.txType.IsPseudo() || !t.flags.IsEmpty() {
		w.put("Flags", t.flags)
	}
	putList(w, "Memos", t.memos)
	putList(w, "Signers", t.signers)
	w.put("SigningPubKey", t.signingPubKey)
	putPtr(w, "TxnSignature", t.txnSignature)
}

func (e *Envelope) readEnvelope(r *fieldReader) {
	e.Account = readPtr[common.Address](r, "Account", expectAddress)
	e.Fee = readPtr[common.XrpCurrencyAmount](r, "Fee", expectDrops)
	readInto(r, "Sequence", expectUint32, &e.Sequence)
	e.TicketSequence = readPtr[uint32](r, "TicketSequence", expectUint32)
	e.LastLedgerSequence = readPtr[uint32](r, "LastLedgerSequence", expectUint32)
	e.SourceTag = readPtr[uint32](r, "SourceTag", expectUint32)
	e.AccountTxnID = readPtr[common.Hash256](r, "AccountTxnID", expectHash256)
	e.NetworkID = readPtr[uint32](r, "NetworkID", expectUint32)
	readInto(r, "Memos", "array of Memo objects", &e.Memos)
	readInto(r, "Signers", "array of Signer objects", &e.Signers)
	readInto(r, "SigningPubKey", expectPublicKey, &e.SigningPubKey)
	e.TxnSignature = readPtr[common.Signature](r, "TxnSignature", expectHex)
}

// requireEnvelope records the envelope fields that must be set
func (c *buildContext) requireEnvelope(e *Envelope) {
	if c.txType.IsPseudo() {
		return
	}
	c.require("Account", e.Account != nil)
	c.require("Fee", e.Fee != nil)
}

// envelope checks the envelope rules and resolves its defaults. flagMask is the set of bits
// defined by the variant, fieldNames the variant's own canonical field names.
func (c *buildContext) envelope(
	e *Envelope,
	flags common.Flags,
	flagMask common.Flags,
	fieldNames []string,
) txBase {
	ret := txBase{
		txType:             c.txType,
		sequence:           e.Sequence,
		ticketSequence:     clonePtr(e.TicketSequence),
		lastLedgerSequence: clonePtr(e.LastLedgerSequence),
		sourceTag:          clonePtr(e.SourceTag),
		networkID:          clonePtr(e.NetworkID),
		accountTxnID:       clonePtr(e.AccountTxnID),
		flags:              flags,
		memos:              cloneMemos(e.Memos),
		signers:            cloneSlice(e.Signers),
		signingPubKey:      e.SigningPubKey,
		txnSignature:       clonePtr(e.TxnSignature),
		unknownFields:      e.UnknownFields,
	}
	switch {
	case c.txType == TxTypeUNLModify:
		ret.account = common.AccountZero
	case e.Account != nil:
		ret.account = *e.Account
	default:
		ret.account = common.AccountZero
	}
	validatePtr(c, e.Fee)
	validatePtr(c, e.TxnSignature)
	for _, signer := range e.Signers {
		c.format(signer.TxnSignature.Validate())
	}
	if e.Fee != nil {
		ret.fee = *e.Fee
	}
	if e.TicketSequence != nil {
		c.check(
			e.Sequence == 0,
			"Sequence must be 0 when TicketSequence is set.",
		)
	}
	if undefined := flags.Undefined(flagMask); undefined != 0 {
		c.check(
			false,
			"Flags 0x%08X are not defined for %s.",
			uint32(undefined),
			c.txType,
		)
	}
	for _, name := range e.UnknownFields.Names() {
		c.check(
			!slices.Contains(envelopeFieldNames, name) &&
				!slices.Contains(fieldNames, name),
			"UnknownFields must not contain the known field %s.",
			name,
		)
	}
	for _, memo := range e.Memos {
		c.check(
			!memo.IsEmpty(),
			"Memo must contain at least one of MemoData, MemoFormat or MemoType.",
		)
	}
	seenSigners := make(map[common.Address]struct{}, len(e.Signers))
	for _, signer := range e.Signers {
		_, dup := seenSigners[signer.Account]
		c.check(!dup, "Signers must have unique accounts.")
		seenSigners[signer.Account] = struct{}{}
	}
	return ret
}

func cloneMemos(memos []Memo) []Memo {
	if len(memos) == 0 {
		return nil
	}
	ret := make([]Memo, 0, len(memos))
	for _, memo := range memos {
		ret = append(ret, memo.clone())
	}
	return ret
}
