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

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

// TransactionType is the discriminant of a transaction variant. It is fixed by each variant and
// cannot be set by callers.
type TransactionType string

const (
	TxTypeAMMVote                  TransactionType = "AMMVote"
	TxTypeCredentialAccept         TransactionType = "CredentialAccept"
	TxTypeCredentialCreate         TransactionType = "CredentialCreate"
	TxTypeCredentialDelete         TransactionType = "CredentialDelete"
	TxTypeEnableAmendment          TransactionType = "EnableAmendment"
	TxTypeMPTokenAuthorize         TransactionType = "MPTokenAuthorize"
	TxTypeMPTokenIssuanceCreate    TransactionType = "MPTokenIssuanceCreate"
	TxTypeMPTokenIssuanceDestroy   TransactionType = "MPTokenIssuanceDestroy"
	TxTypeMPTokenIssuanceSet       TransactionType = "MPTokenIssuanceSet"
	TxTypeNFTokenAcceptOffer       TransactionType = "NFTokenAcceptOffer"
	TxTypeNFTokenBurn              TransactionType = "NFTokenBurn"
	TxTypeNFTokenCancelOffer       TransactionType = "NFTokenCancelOffer"
	TxTypeNFTokenCreateOffer       TransactionType = "NFTokenCreateOffer"
	TxTypeNFTokenMint              TransactionType = "NFTokenMint"
	TxTypeOfferCancel              TransactionType = "OfferCancel"
	TxTypeOfferCreate              TransactionType = "OfferCreate"
	TxTypeOracleDelete             TransactionType = "OracleDelete"
	TxTypePayment                  TransactionType = "Payment"
	TxTypePermissionedDomainDelete TransactionType = "PermissionedDomainDelete"
	TxTypePermissionedDomainSet    TransactionType = "PermissionedDomainSet"
	TxTypeSetFee                   TransactionType = "SetFee"
	TxTypeSignerListSet            TransactionType = "SignerListSet"
	TxTypeUNLModify                TransactionType = "UNLModify"
)

// TransactionTypes lists every supported discriminant
var TransactionTypes = []TransactionType{
	TxTypeAMMVote,
	TxTypeCredentialAccept,
	TxTypeCredentialCreate,
	TxTypeCredentialDelete,
	TxTypeEnableAmendment,
	TxTypeMPTokenAuthorize,
	TxTypeMPTokenIssuanceCreate,
	TxTypeMPTokenIssuanceDestroy,
	TxTypeMPTokenIssuanceSet,
	TxTypeNFTokenAcceptOffer,
	TxTypeNFTokenBurn,
	TxTypeNFTokenCancelOffer,
	TxTypeNFTokenCreateOffer,
	TxTypeNFTokenMint,
	TxTypeOfferCancel,
	TxTypeOfferCreate,
	TxTypeOracleDelete,
	TxTypePayment,
	TxTypePermissionedDomainDelete,
	TxTypePermissionedDomainSet,
	TxTypeSetFee,
	TxTypeSignerListSet,
	TxTypeUNLModify,
}

func (t TransactionType) String() string {
	return string(t)
}

// IsPseudo reports whether the type is a pseudo-transaction. Pseudo-transactions are attributed
// to AccountZero, carry no fee and omit empty flags from their canonical form.
func (t TransactionType) IsPseudo() bool {
	switch t {
	case TxTypeEnableAmendment, TxTypeSetFee, TxTypeUNLModify:
		return true
	default:
		return false
	}
}

// Transaction is the closed set of transaction variants. The concrete type can be recovered with
// a type switch on the variant pointer types (*Payment, *OracleDelete, ...).
type Transaction interface {
	Type() TransactionType
	Account() common.Address
	Fee() common.XrpCurrencyAmount
	Sequence() uint32
	TicketSequence() *uint32
	LastLedgerSequence() *uint32
	SourceTag() *uint32
	NetworkID() *uint32
	AccountTxnID() *common.Hash256
	Memos() []Memo
	Signers() []Signer
	SigningPubKey() common.PublicKey
	TxnSignature() *common.Signature
	// TransactionFlags returns the resolved flags as a generic bitmask
	TransactionFlags() common.Flags
	UnknownFields() common.UnknownFields
	json.Marshaler
	base() *txBase
	writeFields(w *fieldWriter)
}
