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
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // AccountID derivation is defined in terms of RIPEMD-160
)

const (
	AccountIDSize = 20

	// Version byte prepended to an AccountID before base58check encoding
	AddressTypeAccountID = 0x00

	addressMinLength = 25
	addressMaxLength = 35

	// The ledger uses its own base58 alphabet. It is a permutation of the Bitcoin alphabet, so
	// we translate character by character and reuse the Bitcoin base58check implementation,
	// which uses the same double SHA-256 checksum.
	rippleAlphabet  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

var (
	rippleToBitcoin = buildAlphabetMap(rippleAlphabet, bitcoinAlphabet)
	bitcoinToRipple = buildAlphabetMap(bitcoinAlphabet, rippleAlphabet)
)

func buildAlphabetMap(from string, to string) [256]byte {
	var ret [256]byte
	for i := 0; i < len(from); i++ {
		ret[from[i]] = to[i]
	}
	return ret
}

func translateAlphabet(s string, table *[256]byte) (string, bool) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := table[s[i]]
		if c == 0 {
			return "", false
		}
		out[i] = c
	}
	return string(out), true
}

// Address is a classic ledger address. The underlying value is the 20-byte AccountID; the
// string form is the base58check encoding of that ID. Address comparison is exact.
type Address [AccountIDSize]byte

// AccountZero is the protocol-defined address whose AccountID is all zeros. Pseudo-transactions
// are attributed to it.
var AccountZero = Address{}

// NewAddress parses a classic address string
func NewAddress(addr string) (Address, error) {
	var a Address
	if len(addr) < addressMinLength || len(addr) > addressMaxLength {
		return a, newFormatError(
			"Address",
			addr,
			"Address %q must be between %d and %d characters.",
			addr,
			addressMinLength,
			addressMaxLength,
		)
	}
	if addr[0] != 'r' {
		return a, newFormatError(
			"Address",
			addr,
			"Address %q must start with 'r'.",
			addr,
		)
	}
	translated, ok := translateAlphabet(addr, &rippleToBitcoin)
	if !ok {
		return a, newFormatError(
			"Address",
			addr,
			"Address %q contains characters outside the base58 alphabet.",
			addr,
		)
	}
	decoded, version, err := base58.CheckDecode(translated)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return a, newFormatError(
				"Address",
				addr,
				"Address %q has an invalid checksum.",
				addr,
			)
		}
		return a, newFormatError(
			"Address",
			addr,
			"Address %q is not valid base58check: %s",
			addr,
			err,
		)
	}
	if version != AddressTypeAccountID || len(decoded) != AccountIDSize {
		return a, newFormatError(
			"Address",
			addr,
			"Address %q does not encode a %d byte AccountID.",
			addr,
			AccountIDSize,
		)
	}
	copy(a[:], decoded)
	return a, nil
}

// NewAddressFromBytes returns the Address for a raw 20-byte AccountID
func NewAddressFromBytes(accountID []byte) (Address, error) {
	var a Address
	if len(accountID) != AccountIDSize {
		return a, newFormatError(
			"Address",
			encodeHexUpper(accountID),
			"AccountID must be exactly %d bytes.",
			AccountIDSize,
		)
	}
	copy(a[:], accountID)
	return a, nil
}

// NewAddressFromPublicKey derives the address controlled by a public key:
// RIPEMD-160 of the SHA-256 of the 33-byte key
func NewAddressFromPublicKey(pubKey PublicKey) (Address, error) {
	if pubKey.IsEmpty() {
		return Address{}, &NotPresentError{Type: "PublicKey"}
	}
	shaSum := sha256.Sum256(pubKey.Bytes())
	hasher := ripemd160.New()
	if _, err := hasher.Write(shaSum[:]); err != nil {
		return Address{}, fmt.Errorf("failed to hash public key: %w", err)
	}
	return NewAddressFromBytes(hasher.Sum(nil))
}

// Bytes returns the AccountID
func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the classic address encoding
func (a Address) String() string {
	encoded := base58.CheckEncode(a[:], AddressTypeAccountID)
	ret, ok := translateAlphabet(encoded, &bitcoinToRipple)
	if !ok {
		panic(
			fmt.Sprintf("unexpected character in base58 output: %s", encoded),
		)
	}
	return ret
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString("Address", data)
	if err != nil {
		return err
	}
	tmp, err := NewAddress(s)
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}
