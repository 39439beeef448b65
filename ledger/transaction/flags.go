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

// Each variant with protocol-defined flags has its own flag type. The universal bits
// (common.TfFullyCanonicalSig, common.TfInnerBatchTxn) are accepted by every type; any other bit
// outside the variant's mask is rejected by Build.

type EnableAmendmentFlags uint32

const (
	EnableAmendmentFlagGotMajority  EnableAmendmentFlags = 0x00010000
	EnableAmendmentFlagLostMajority EnableAmendmentFlags = 0x00020000

	enableAmendmentFlagMask = EnableAmendmentFlagGotMajority | EnableAmendmentFlagLostMajority
)

func (f EnableAmendmentFlags) GotMajority() bool {
	return f&EnableAmendmentFlagGotMajority != 0
}

func (f EnableAmendmentFlags) LostMajority() bool {
	return f&EnableAmendmentFlagLostMajority != 0
}

type MPTokenAuthorizeFlags uint32

const (
	MPTokenAuthorizeFlagUnauthorize MPTokenAuthorizeFlags = 0x00000001

	mpTokenAuthorizeFlagMask = MPTokenAuthorizeFlagUnauthorize
)

func (f MPTokenAuthorizeFlags) Unauthorize() bool {
	return f&MPTokenAuthorizeFlagUnauthorize != 0
}

type MPTokenIssuanceCreateFlags uint32

const (
	MPTokenIssuanceCreateFlagCanLock     MPTokenIssuanceCreateFlags = 0x00000002
	MPTokenIssuanceCreateFlagRequireAuth MPTokenIssuanceCreateFlags = 0x00000004
	MPTokenIssuanceCreateFlagCanEscrow   MPTokenIssuanceCreateFlags = 0x00000008
	MPTokenIssuanceCreateFlagCanTrade    MPTokenIssuanceCreateFlags = 0x00000010
	MPTokenIssuanceCreateFlagCanTransfer MPTokenIssuanceCreateFlags = 0x00000020
	MPTokenIssuanceCreateFlagCanClawback MPTokenIssuanceCreateFlags = 0x00000040

	mpTokenIssuanceCreateFlagMask = MPTokenIssuanceCreateFlagCanLock |
		MPTokenIssuanceCreateFlagRequireAuth |
		MPTokenIssuanceCreateFlagCanEscrow |
		MPTokenIssuanceCreateFlagCanTrade |
		MPTokenIssuanceCreateFlagCanTransfer |
		MPTokenIssuanceCreateFlagCanClawback
)

func (f MPTokenIssuanceCreateFlags) CanLock() bool {
	return f&MPTokenIssuanceCreateFlagCanLock != 0
}

func (f MPTokenIssuanceCreateFlags) RequireAuth() bool {
	return f&MPTokenIssuanceCreateFlagRequireAuth != 0
}

func (f MPTokenIssuanceCreateFlags) CanEscrow() bool {
	return f&MPTokenIssuanceCreateFlagCanEscrow != 0
}

func (f MPTokenIssuanceCreateFlags) CanTrade() bool {
	return f&MPTokenIssuanceCreateFlagCanTrade != 0
}

func (f MPTokenIssuanceCreateFlags) CanTransfer() bool {
	return f&MPTokenIssuanceCreateFlagCanTransfer != 0
}

func (f MPTokenIssuanceCreateFlags) CanClawback() bool {
	return f&MPTokenIssuanceCreateFlagCanClawback != 0
}

type MPTokenIssuanceSetFlags uint32

const (
	MPTokenIssuanceSetFlagLock   MPTokenIssuanceSetFlags = 0x00000001
	MPTokenIssuanceSetFlagUnlock MPTokenIssuanceSetFlags = 0x00000002

	mpTokenIssuanceSetFlagMask = MPTokenIssuanceSetFlagLock | MPTokenIssuanceSetFlagUnlock
)

func (f MPTokenIssuanceSetFlags) Lock() bool {
	return f&MPTokenIssuanceSetFlagLock != 0
}

func (f MPTokenIssuanceSetFlags) Unlock() bool {
	return f&MPTokenIssuanceSetFlagUnlock != 0
}

type NFTokenCreateOfferFlags uint32

const (
	NFTokenCreateOfferFlagSellNFToken NFTokenCreateOfferFlags = 0x00000001

	nfTokenCreateOfferFlagMask = NFTokenCreateOfferFlagSellNFToken
)

func (f NFTokenCreateOfferFlags) SellNFToken() bool {
	return f&NFTokenCreateOfferFlagSellNFToken != 0
}

type NFTokenMintFlags uint32

const (
	NFTokenMintFlagBurnable     NFTokenMintFlags = 0x00000001
	NFTokenMintFlagOnlyXRP      NFTokenMintFlags = 0x00000002
	NFTokenMintFlagTrustLine    NFTokenMintFlags = 0x00000004
	NFTokenMintFlagTransferable NFTokenMintFlags = 0x00000008
	NFTokenMintFlagMutable      NFTokenMintFlags = 0x00000010

	nfTokenMintFlagMask = NFTokenMintFlagBurnable |
		NFTokenMintFlagOnlyXRP |
		NFTokenMintFlagTrustLine |
		NFTokenMintFlagTransferable |
		NFTokenMintFlagMutable
)

func (f NFTokenMintFlags) Burnable() bool {
	return f&NFTokenMintFlagBurnable != 0
}

func (f NFTokenMintFlags) OnlyXRP() bool {
	return f&NFTokenMintFlagOnlyXRP != 0
}

func (f NFTokenMintFlags) TrustLine() bool {
	return f&NFTokenMintFlagTrustLine != 0
}

func (f NFTokenMintFlags) Transferable() bool {
	return f&NFTokenMintFlagTransferable != 0
}

func (f NFTokenMintFlags) Mutable() bool {
	return f&NFTokenMintFlagMutable != 0
}

type OfferCreateFlags uint32

const (
	OfferCreateFlagPassive           OfferCreateFlags = 0x00010000
	OfferCreateFlagImmediateOrCancel OfferCreateFlags = 0x00020000
	OfferCreateFlagFillOrKill        OfferCreateFlags = 0x00040000
	OfferCreateFlagSell              OfferCreateFlags = 0x00080000

	offerCreateFlagMask = OfferCreateFlagPassive |
		OfferCreateFlagImmediateOrCancel |
		OfferCreateFlagFillOrKill |
		OfferCreateFlagSell
)

func (f OfferCreateFlags) Passive() bool {
	return f&OfferCreateFlagPassive != 0
}

func (f OfferCreateFlags) ImmediateOrCancel() bool {
	return f&OfferCreateFlagImmediateOrCancel != 0
}

func (f OfferCreateFlags) FillOrKill() bool {
	return f&OfferCreateFlagFillOrKill != 0
}

func (f OfferCreateFlags) Sell() bool {
	return f&OfferCreateFlagSell != 0
}

type PaymentFlags uint32

const (
	PaymentFlagNoRippleDirect PaymentFlags = 0x00010000
	PaymentFlagPartialPayment PaymentFlags = 0x00020000
	PaymentFlagLimitQuality   PaymentFlags = 0x00040000

	paymentFlagMask = PaymentFlagNoRippleDirect |
		PaymentFlagPartialPayment |
		PaymentFlagLimitQuality
)

func (f PaymentFlags) NoRippleDirect() bool {
	return f&PaymentFlagNoRippleDirect != 0
}

func (f PaymentFlags) PartialPayment() bool {
	return f&PaymentFlagPartialPayment != 0
}

func (f PaymentFlags) LimitQuality() bool {
	return f&PaymentFlagLimitQuality != 0
}

// flagsOf converts any variant flag type to the generic bitmask
func flagsOf[T ~uint32](f T) common.Flags {
	return common.Flags(f)
}
