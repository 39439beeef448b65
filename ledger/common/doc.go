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

// Package common provides the validated value types shared by every transaction type.
//
// Scalar types (Address, Hash256, MpTokenIssuanceID, CredentialType, Uri, MpTokenMetadata,
// Blob, PublicKey, Signature, Currency) are comparable Go values. Their constructors validate
// format and length and store the canonical form, so == is the normalized equality: hex
// identifiers compare case-insensitively and always render as uppercase.
//
// Amounts come in three incompatible schemes (XrpCurrencyAmount, IssuedCurrencyAmount and
// MptCurrencyAmount) that share the CurrencyAmount interface. Negativity is read from the
// textual value only.
//
// Errors returned by this package match one of ErrNotPresent, ErrInvalidFormat, ErrIncomplete,
// ErrInvariant or ErrSchema with errors.Is.
package common
