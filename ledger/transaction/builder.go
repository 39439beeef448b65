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
	"errors"
	"fmt"
	"slices"

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

// buildContext collects the outcome of a builder's Build call. Missing required fields are
// reported before format errors, and format errors before invariant violations.
type buildContext struct {
	txType    TransactionType
	missing   []string
	formatErr error
	rules     []string
}

func newBuildContext(txType TransactionType) *buildContext {
	return &buildContext{txType: txType}
}

func (c *buildContext) require(name string, present bool) {
	if !present {
		c.missing = append(c.missing, name)
	}
}

// incomplete returns an IncompleteError naming every missing required field
func (c *buildContext) incomplete() error {
	if len(c.missing) == 0 {
		return nil
	}
	return &common.IncompleteError{
		TransactionType: c.txType.String(),
		Fields:          slices.Clone(c.missing),
	}
}

// format records a format error from a field without a dedicated value type
func (c *buildContext) format(err error) {
	if err != nil && c.formatErr == nil {
		c.formatErr = err
	}
}

// validator is implemented by value types whose zero value is not a valid field value
type validator interface {
	Validate() error
}

// validatePtr records the format error of an optional value field
func validatePtr[T validator](c *buildContext, v *T) {
	if v != nil {
		c.format((*v).Validate())
	}
}

// validateAmount records the format error of an optional amount field
func (c *buildContext) validateAmount(amount common.CurrencyAmount) {
	if amount != nil {
		c.format(amount.Validate())
	}
}

// check records an invariant violation when ok is false
func (c *buildContext) check(ok bool, rule string, args ...any) {
	if ok {
		return
	}
	if len(args) > 0 {
		rule = fmt.Sprintf(rule, args...)
	}
	c.rules = append(c.rules, rule)
}

// failed returns the first format error, or an InvariantError for the first violated rule
func (c *buildContext) failed() error {
	if c.formatErr != nil {
		return c.formatErr
	}
	if len(c.rules) == 0 {
		return nil
	}
	return &common.InvariantError{
		TransactionType: c.txType.String(),
		Rule:            c.rules[0],
	}
}

// buildAs adapts a variant's Build method to the Transaction interface without leaking a typed
// nil on failure
func buildAs[T Transaction](build func() (T, error)) (Transaction, error) {
	tx, err := build()
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// builder is implemented by every variant builder
type builder interface {
	envelope() *Envelope
	readFields(r *fieldReader)
	buildTransaction() (Transaction, error)
}

// newBuilder returns an empty builder for the given type
func newBuilder(txType TransactionType) (builder, error) {
	switch txType {
	case TxTypeAMMVote:
		return &AMMVoteBuilder{}, nil
	case TxTypeCredentialAccept:
		return &CredentialAcceptBuilder{}, nil
	case TxTypeCredentialCreate:
		return &CredentialCreateBuilder{}, nil
	case TxTypeCredentialDelete:
		return &CredentialDeleteBuilder{}, nil
	case TxTypeEnableAmendment:
		return &EnableAmendmentBuilder{}, nil
	case TxTypeMPTokenAuthorize:
		return &MPTokenAuthorizeBuilder{}, nil
	case TxTypeMPTokenIssuanceCreate:
		return &MPTokenIssuanceCreateBuilder{}, nil
	case TxTypeMPTokenIssuanceDestroy:
		return &MPTokenIssuanceDestroyBuilder{}, nil
	case TxTypeMPTokenIssuanceSet:
		return &MPTokenIssuanceSetBuilder{}, nil
	case TxTypeNFTokenAcceptOffer:
		return &NFTokenAcceptOfferBuilder{}, nil
	case TxTypeNFTokenBurn:
		return &NFTokenBurnBuilder{}, nil
	case TxTypeNFTokenCancelOffer:
		return &NFTokenCancelOfferBuilder{}, nil
	case TxTypeNFTokenCreateOffer:
		return &NFTokenCreateOfferBuilder{}, nil
	case TxTypeNFTokenMint:
		return &NFTokenMintBuilder{}, nil
	case TxTypeOfferCancel:
		return &OfferCancelBuilder{}, nil
	case TxTypeOfferCreate:
		return &OfferCreateBuilder{}, nil
	case TxTypeOracleDelete:
		return &OracleDeleteBuilder{}, nil
	case TxTypePayment:
		return &PaymentBuilder{}, nil
	case TxTypePermissionedDomainDelete:
		return &PermissionedDomainDeleteBuilder{}, nil
	case TxTypePermissionedDomainSet:
		return &PermissionedDomainSetBuilder{}, nil
	case TxTypeSetFee:
		return &SetFeeBuilder{}, nil
	case TxTypeSignerListSet:
		return &SignerListSetBuilder{}, nil
	case TxTypeUNLModify:
		return &UNLModifyBuilder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionType, string(txType))
	}
}

var ErrUnknownTransactionType = errors.New("unknown transaction type")

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	tmp := *v
	return &tmp
}

// cloneSlice copies a slice of values, normalizing empty to nil
func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// hasDuplicates reports whether a slice of comparable values contains a repeated element
func hasDuplicates[T comparable](s []T) bool {
	seen := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
