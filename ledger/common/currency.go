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
	"fmt"
	"strings"
)

const (
	CurrencyCodeXrp = "XRP"

	currencyStandardLength = 3
	currencyHexLength      = 40

	currencyStandardChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789?!@#$%^&*<>(){}[]|"
)

// Currency is a currency code: either a 3 character standard code, which is case-sensitive, or
// a 160-bit nonstandard code written as 40 hex characters (normalized to uppercase)
type Currency struct {
	code string
}

// CurrencyXrp is the code of the native asset
var CurrencyXrp = Currency{code: CurrencyCodeXrp}

func NewCurrency(code string) (Currency, error) {
	switch len(code) {
	case currencyStandardLength:
		for i := 0; i < len(code); i++ {
			if !strings.ContainsRune(currencyStandardChars, rune(code[i])) {
				return Currency{}, newFormatError(
					"Currency",
					code,
					"Currency code %q contains an invalid character.",
					code,
				)
			}
		}
		return Currency{code: code}, nil
	case currencyHexLength:
		if !isHex(code) {
			return Currency{}, newFormatError(
				"Currency",
				code,
				"Currency code %q must be encoded in hexadecimal.",
				code,
			)
		}
		if strings.Trim(code, "0") == "" {
			return Currency{}, newFormatError(
				"Currency",
				code,
				"Currency code must not be all zeros.",
			)
		}
		return Currency{code: normalizeHex(code)}, nil
	default:
		return Currency{}, newFormatError(
			"Currency",
			code,
			"Currency code %q must be 3 characters or 40 hex characters.",
			code,
		)
	}
}

func (c Currency) String() string { return c.code }

func (c Currency) IsXrp() bool { return c.code == CurrencyCodeXrp }

func (c Currency) MarshalJSON() ([]byte, error) {
	return marshalJson(c.code)
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString("Currency", data)
	if err != nil {
		return err
	}
	tmp, err := NewCurrency(s)
	if err != nil {
		return err
	}
	*c = tmp
	return nil
}

type IssueKind uint8

// The zero IssueKind is invalid, so an Issue that did not come from a constructor is rejected
const (
	IssueKindXrp IssueKind = iota + 1
	IssueKindIssuedCurrency
	IssueKindMpt
)

// Issue describes an asset without an amount: XRP, an issued currency, or an MPT issuance
type Issue struct {
	kind          IssueKind
	currency      Currency
	issuer        Address
	mptIssuanceID MpTokenIssuanceID
}

// XrpIssue returns the descriptor of the native asset
func XrpIssue() Issue {
	return Issue{kind: IssueKindXrp, currency: CurrencyXrp}
}

func NewIssuedCurrencyIssue(currency Currency, issuer Address) (Issue, error) {
	if currency.IsXrp() || currency.code == "" {
		return Issue{}, newFormatError(
			"Issue",
			currency.code,
			"Issued currency must not use the XRP currency code.",
		)
	}
	return Issue{
		kind:     IssueKindIssuedCurrency,
		currency: currency,
		issuer:   issuer,
	}, nil
}

func NewMptIssue(id MpTokenIssuanceID) Issue {
	return Issue{kind: IssueKindMpt, mptIssuanceID: id}
}

func (i Issue) Kind() IssueKind { return i.kind }

// Validate reports whether the Issue was produced by one of its constructors
func (i Issue) Validate() error {
	switch i.kind {
	case IssueKindXrp:
		if i == XrpIssue() {
			return nil
		}
	case IssueKindIssuedCurrency:
		_, err := NewIssuedCurrencyIssue(i.currency, i.issuer)
		return err
	case IssueKindMpt:
		if i == NewMptIssue(i.mptIssuanceID) {
			return nil
		}
	}
	return newFormatError("Issue", i.String(), "Issue is not a valid asset descriptor.")
}

func (i Issue) Currency() Currency { return i.currency }

func (i Issue) Issuer() Address { return i.issuer }

func (i Issue) MpTokenIssuanceID() MpTokenIssuanceID { return i.mptIssuanceID }

func (i Issue) String() string {
	switch i.kind {
	case IssueKindIssuedCurrency:
		return fmt.Sprintf("%s/%s", i.currency, i.issuer)
	case IssueKindMpt:
		return i.mptIssuanceID.String()
	case IssueKindXrp:
		return CurrencyCodeXrp
	default:
		return "invalid"
	}
}

type issueJson struct {
	Currency      *Currency          `json:"currency,omitempty"`
	Issuer        *Address           `json:"issuer,omitempty"`
	MptIssuanceID *MpTokenIssuanceID `json:"mpt_issuance_id,omitempty"`
}

func (i Issue) MarshalJSON() ([]byte, error) {
	var tmp issueJson
	switch i.kind {
	case IssueKindIssuedCurrency:
		tmp.Currency = &i.currency
		tmp.Issuer = &i.issuer
	case IssueKindMpt:
		tmp.MptIssuanceID = &i.mptIssuanceID
	case IssueKindXrp:
		xrp := CurrencyXrp
		tmp.Currency = &xrp
	default:
		return nil, i.Validate()
	}
	return marshalJson(&tmp)
}

func (i *Issue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return &NotPresentError{Type: "Issue"}
	}
	var tmp issueJson
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tmp); err != nil {
		return fmt.Errorf("invalid Issue: %w", err)
	}
	switch {
	case tmp.MptIssuanceID != nil:
		if tmp.Currency != nil || tmp.Issuer != nil {
			return newFormatError(
				"Issue",
				string(data),
				"Issue must not combine mpt_issuance_id with currency or issuer.",
			)
		}
		*i = NewMptIssue(*tmp.MptIssuanceID)
	case tmp.Currency != nil && tmp.Currency.IsXrp():
		if tmp.Issuer != nil {
			return newFormatError(
				"Issue",
				string(data),
				"XRP Issue must not have an issuer.",
			)
		}
		*i = XrpIssue()
	case tmp.Currency != nil && tmp.Issuer != nil:
		tmpIssue, err := NewIssuedCurrencyIssue(*tmp.Currency, *tmp.Issuer)
		if err != nil {
			return err
		}
		*i = tmpIssue
	default:
		return newFormatError(
			"Issue",
			string(data),
			"Issue must be {currency: XRP}, {currency, issuer} or {mpt_issuance_id}.",
		)
	}
	return nil
}
