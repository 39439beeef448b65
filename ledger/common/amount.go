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

package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// MaxXrpDrops is the total supply of XRP expressed in drops
	MaxXrpDrops uint64 = 100_000_000_000_000_000

	// MaxMptAmount is the largest magnitude an MPT amount may carry
	MaxMptAmount uint64 = math.MaxInt64

	// Issued currency values are stored as a mantissa of up to 16 significant digits and an
	// exponent in the range -96..80
	IssuedValueMaxDigits   = 16
	IssuedValueMinExponent = -96
	IssuedValueMaxExponent = 80
)

// CurrencyAmount is implemented by the three amount schemes. They are not interchangeable:
// the JSON shape of a value determines its scheme.
type CurrencyAmount interface {
	// IsNegative reports whether the textual value carries a leading minus sign
	IsNegative() bool
	// Validate reports whether the amount holds a value its constructor would accept
	Validate() error
	String() string
	json.Marshaler
	isCurrencyAmount()
}

// XrpCurrencyAmount is an amount of the native asset in drops. It is never negative.
type XrpCurrencyAmount uint64

// NewXrpCurrencyAmount returns an amount of drops, rejecting negative and oversized values
func NewXrpCurrencyAmount(drops int64) (XrpCurrencyAmount, error) {
	if drops < 0 {
		return 0, newFormatError(
			"XrpCurrencyAmount",
			strconv.FormatInt(drops, 10),
			"XRP amounts must not be negative.",
		)
	}
	return NewXrpCurrencyAmountFromDrops(uint64(drops))
}

func NewXrpCurrencyAmountFromDrops(drops uint64) (XrpCurrencyAmount, error) {
	if drops > MaxXrpDrops {
		return 0, newFormatError(
			"XrpCurrencyAmount",
			strconv.FormatUint(drops, 10),
			"XRP amounts must be <= %d drops.",
			MaxXrpDrops,
		)
	}
	return XrpCurrencyAmount(drops), nil
}

// NewXrpCurrencyAmountFromString parses a decimal string of drops
func NewXrpCurrencyAmountFromString(value string) (XrpCurrencyAmount, error) {
	if strings.HasPrefix(value, "-") {
		return 0, newFormatError(
			"XrpCurrencyAmount",
			value,
			"XRP amounts must not be negative.",
		)
	}
	if value == "" || !isDigits(value) {
		return 0, newFormatError(
			"XrpCurrencyAmount",
			value,
			"XRP amount %q must be a whole number of drops.",
			value,
		)
	}
	drops, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, newFormatError(
			"XrpCurrencyAmount",
			value,
			"XRP amount %q is out of range.",
			value,
		)
	}
	return NewXrpCurrencyAmountFromDrops(drops)
}

func (XrpCurrencyAmount) isCurrencyAmount() {}

func (a XrpCurrencyAmount) IsNegative() bool { return false }

func (a XrpCurrencyAmount) Validate() error {
	_, err := NewXrpCurrencyAmountFromDrops(uint64(a))
	return err
}

func (a XrpCurrencyAmount) Drops() uint64 { return uint64(a) }

func (a XrpCurrencyAmount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

func (a XrpCurrencyAmount) Cmp(other XrpCurrencyAmount) int {
	switch {
	case a < other:
		return -1
	case a > other:
		return 1
	default:
		return 0
	}
}

func (a XrpCurrencyAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *XrpCurrencyAmount) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString("XrpCurrencyAmount", data)
	if err != nil {
		return err
	}
	tmp, err := NewXrpCurrencyAmountFromString(s)
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}

// IssuedCurrencyAmount is a decimal amount of a currency issued by an account. The value text
// is preserved exactly as supplied.
type IssuedCurrencyAmount struct {
	currency Currency
	issuer   Address
	value    string
}

func NewIssuedCurrencyAmount(
	value string,
	currency Currency,
	issuer Address,
) (IssuedCurrencyAmount, error) {
	if currency.code == "" {
		return IssuedCurrencyAmount{}, &NotPresentError{Type: "Currency"}
	}
	if currency.IsXrp() {
		return IssuedCurrencyAmount{}, newFormatError(
			"IssuedCurrencyAmount",
			value,
			"Issued currency amounts must not use the XRP currency code.",
		)
	}
	if !isDecimal(value) {
		return IssuedCurrencyAmount{}, newFormatError(
			"IssuedCurrencyAmount",
			value,
			"Issued currency value %q is not a valid decimal number.",
			value,
		)
	}
	if !issuedValueFits(value) {
		return IssuedCurrencyAmount{}, newFormatError(
			"IssuedCurrencyAmount",
			value,
			"Issued currency value %q must have at most %d significant digits and an exponent in the range %d..%d.",
			value,
			IssuedValueMaxDigits,
			IssuedValueMinExponent,
			IssuedValueMaxExponent,
		)
	}
	return IssuedCurrencyAmount{
		currency: currency,
		issuer:   issuer,
		value:    value,
	}, nil
}

func (IssuedCurrencyAmount) isCurrencyAmount() {}

func (a IssuedCurrencyAmount) Currency() Currency { return a.currency }

func (a IssuedCurrencyAmount) Issuer() Address { return a.issuer }

// Value returns the decimal text exactly as supplied
func (a IssuedCurrencyAmount) Value() string { return a.value }

func (a IssuedCurrencyAmount) IsNegative() bool {
	return strings.HasPrefix(a.value, "-")
}

func (a IssuedCurrencyAmount) Validate() error {
	_, err := NewIssuedCurrencyAmount(a.value, a.currency, a.issuer)
	return err
}

// Rat returns the value as an exact rational number
func (a IssuedCurrencyAmount) Rat() (*big.Rat, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	ret, ok := new(big.Rat).SetString(a.value)
	if !ok {
		return nil, newFormatError(
			"IssuedCurrencyAmount",
			a.value,
			"Issued currency value %q is not a valid decimal number.",
			a.value,
		)
	}
	return ret, nil
}

// Cmp compares the numeric values of two amounts of the same currency and issuer
func (a IssuedCurrencyAmount) Cmp(other IssuedCurrencyAmount) (int, error) {
	if a.currency != other.currency || a.issuer != other.issuer {
		return 0, fmt.Errorf(
			"cannot compare %s/%s with %s/%s",
			a.currency,
			a.issuer,
			other.currency,
			other.issuer,
		)
	}
	x, err := a.Rat()
	if err != nil {
		return 0, err
	}
	y, err := other.Rat()
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

func (a IssuedCurrencyAmount) String() string {
	return fmt.Sprintf("%s %s/%s", a.value, a.currency, a.issuer)
}

type issuedCurrencyAmountJson struct {
	Currency *Currency `json:"currency"`
	Issuer   *Address  `json:"issuer"`
	Value    *string   `json:"value"`
}

func (a IssuedCurrencyAmount) MarshalJSON() ([]byte, error) {
	tmp := issuedCurrencyAmountJson{
		Currency: &a.currency,
		Issuer:   &a.issuer,
		Value:    &a.value,
	}
	return marshalJson(&tmp)
}

func (a *IssuedCurrencyAmount) UnmarshalJSON(data []byte) error {
	var tmp issuedCurrencyAmountJson
	if err := decodeStrictObject("IssuedCurrencyAmount", data, &tmp); err != nil {
		return err
	}
	if tmp.Currency == nil || tmp.Issuer == nil || tmp.Value == nil {
		return newFormatError(
			"IssuedCurrencyAmount",
			string(data),
			"Issued currency amounts require currency, issuer and value.",
		)
	}
	ret, err := NewIssuedCurrencyAmount(*tmp.Value, *tmp.Currency, *tmp.Issuer)
	if err != nil {
		return err
	}
	*a = ret
	return nil
}

// MptCurrencyAmount is a signed integer amount of a multi-purpose token issuance
type MptCurrencyAmount struct {
	mptIssuanceID MpTokenIssuanceID
	value         string
}

func NewMptCurrencyAmount(
	id MpTokenIssuanceID,
	value string,
) (MptCurrencyAmount, error) {
	if _, err := parseMptMagnitude(value); err != nil {
		return MptCurrencyAmount{}, err
	}
	return MptCurrencyAmount{mptIssuanceID: id, value: value}, nil
}

func parseMptMagnitude(value string) (uint64, error) {
	digits := strings.TrimPrefix(value, "-")
	if digits == "" || !isDigits(digits) {
		return 0, newFormatError(
			"MptCurrencyAmount",
			value,
			"MPT value %q must be an integer.",
			value,
		)
	}
	magnitude, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || magnitude > MaxMptAmount {
		return 0, newFormatError(
			"MptCurrencyAmount",
			value,
			"MPT value %q must have a magnitude <= %d.",
			value,
			MaxMptAmount,
		)
	}
	return magnitude, nil
}

func (MptCurrencyAmount) isCurrencyAmount() {}

func (a MptCurrencyAmount) MpTokenIssuanceID() MpTokenIssuanceID {
	return a.mptIssuanceID
}

func (a MptCurrencyAmount) Value() string { return a.value }

func (a MptCurrencyAmount) IsNegative() bool {
	return strings.HasPrefix(a.value, "-")
}

func (a MptCurrencyAmount) Validate() error {
	_, err := parseMptMagnitude(a.value)
	return err
}

// UnsignedValue returns the magnitude of the amount regardless of its sign
func (a MptCurrencyAmount) UnsignedValue() uint64 {
	ret, _ := parseMptMagnitude(a.value)
	return ret
}

// Int64Value returns the signed value
func (a MptCurrencyAmount) Int64Value() int64 {
	// #nosec G115 -- magnitude is bounded by MaxMptAmount
	ret := int64(a.UnsignedValue())
	if a.IsNegative() {
		return -ret
	}
	return ret
}

func (a MptCurrencyAmount) Cmp(other MptCurrencyAmount) (int, error) {
	if a.mptIssuanceID != other.mptIssuanceID {
		return 0, fmt.Errorf(
			"cannot compare MPT issuance %s with %s",
			a.mptIssuanceID,
			other.mptIssuanceID,
		)
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}
	x, y := a.Int64Value(), other.Int64Value()
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	default:
		return 0, nil
	}
}

func (a MptCurrencyAmount) String() string {
	return fmt.Sprintf("%s %s", a.value, a.mptIssuanceID)
}

type mptCurrencyAmountJson struct {
	MptIssuanceID *MpTokenIssuanceID `json:"mpt_issuance_id"`
	Value         *string            `json:"value"`
}

func (a MptCurrencyAmount) MarshalJSON() ([]byte, error) {
	tmp := mptCurrencyAmountJson{
		MptIssuanceID: &a.mptIssuanceID,
		Value:         &a.value,
	}
	return marshalJson(&tmp)
}

func (a *MptCurrencyAmount) UnmarshalJSON(data []byte) error {
	var tmp mptCurrencyAmountJson
	if err := decodeStrictObject("MptCurrencyAmount", data, &tmp); err != nil {
		return err
	}
	if tmp.MptIssuanceID == nil || tmp.Value == nil {
		return newFormatError(
			"MptCurrencyAmount",
			string(data),
			"MPT amounts require mpt_issuance_id and value.",
		)
	}
	ret, err := NewMptCurrencyAmount(*tmp.MptIssuanceID, *tmp.Value)
	if err != nil {
		return err
	}
	*a = ret
	return nil
}

// UnmarshalCurrencyAmount decodes any of the three amount schemes. A JSON string is an XRP
// amount; an object with mpt_issuance_id is an MPT amount; any other object must be an issued
// currency amount.
func UnmarshalCurrencyAmount(data []byte) (CurrencyAmount, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil, &NotPresentError{Type: "CurrencyAmount"}
	}
	switch trimmed[0] {
	case '"':
		var ret XrpCurrencyAmount
		if err := ret.UnmarshalJSON(trimmed); err != nil {
			return nil, err
		}
		return ret, nil
	case '{':
		var shape map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &shape); err != nil {
			return nil, fmt.Errorf("invalid amount object: %w", err)
		}
		if _, ok := shape["mpt_issuance_id"]; ok {
			var ret MptCurrencyAmount
			if err := ret.UnmarshalJSON(trimmed); err != nil {
				return nil, err
			}
			return ret, nil
		}
		var ret IssuedCurrencyAmount
		if err := ret.UnmarshalJSON(trimmed); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return nil, newFormatError(
			"CurrencyAmount",
			string(trimmed),
			"Amounts must be a string of drops or an amount object.",
		)
	}
}

// CompareAmounts compares two amounts of the same scheme and asset
func CompareAmounts(a CurrencyAmount, b CurrencyAmount) (int, error) {
	switch av := a.(type) {
	case XrpCurrencyAmount:
		if bv, ok := b.(XrpCurrencyAmount); ok {
			return av.Cmp(bv), nil
		}
	case IssuedCurrencyAmount:
		if bv, ok := b.(IssuedCurrencyAmount); ok {
			return av.Cmp(bv)
		}
	case MptCurrencyAmount:
		if bv, ok := b.(MptCurrencyAmount); ok {
			return av.Cmp(bv)
		}
	}
	return 0, errors.New("cannot compare amounts of different schemes")
}

// IsXrpAmount reports whether an amount is denominated in drops
func IsXrpAmount(a CurrencyAmount) bool {
	_, ok := a.(XrpCurrencyAmount)
	return ok
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDecimal matches -?digits(.digits)?([eE][+-]?digits)?
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	mantissa, exponent, hasExp := strings.Cut(strings.ToLower(s), "e")
	intPart, fracPart, hasFrac := strings.Cut(mantissa, ".")
	if intPart == "" || !isDigits(intPart) {
		return false
	}
	if hasFrac && (fracPart == "" || !isDigits(fracPart)) {
		return false
	}
	if hasExp {
		if exponent != "" && (exponent[0] == '+' || exponent[0] == '-') {
			exponent = exponent[1:]
		}
		if exponent == "" || !isDigits(exponent) {
			return false
		}
	}
	return true
}

// issuedValueFits reports whether a decimal accepted by isDecimal can be represented as an
// issued currency value. Zero always fits.
func issuedValueFits(s string) bool {
	s = strings.TrimPrefix(s, "-")
	mantissa, expText, hasExp := strings.Cut(strings.ToLower(s), "e")
	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	digits := strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		return true
	}
	exponent := 0
	if hasExp {
		tmp, err := strconv.Atoi(expText)
		// Anything this far out cannot be normalized into range
		if err != nil || tmp < -10000 || tmp > 10000 {
			return false
		}
		exponent = tmp
	}
	significant := strings.TrimRight(digits, "0")
	if len(significant) > IssuedValueMaxDigits {
		return false
	}
	// value = significant * 10^exponent
	exponent += len(digits) - len(significant) - len(fracPart)
	// Scale the mantissa up to the full 16 digits
	exponent -= IssuedValueMaxDigits - len(significant)
	return exponent >= IssuedValueMinExponent && exponent <= IssuedValueMaxExponent
}

// decodeStrictObject decodes a JSON object rejecting null and unknown keys
func decodeStrictObject(typ string, data []byte, dest any) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return &NotPresentError{Type: typ}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return newFormatError(typ, string(data), "invalid %s: %s", typ, err)
	}
	return nil
}
