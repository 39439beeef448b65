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

// Package testdata provides shared canonical transaction documents for benchmarks and tests.
package testdata

import (
	_ "embed"
	"strings"
)

// Each document is in canonical form: encoding the decoded transaction reproduces it exactly.

//go:embed payment.json
var PaymentJson string

// Carries the unknown field Foo ahead of the envelope
//
//go:embed oracle_delete.json
var OracleDeleteJson string

//go:embed set_fee.json
var SetFeeJson string

//go:embed amm_vote.json
var AMMVoteJson string

//go:embed signer_list_set.json
var SignerListSetJson string

//go:embed nftoken_mint.json
var NFTokenMintJson string

// TestTransaction is a canonical transaction document
type TestTransaction struct {
	Name            string
	TransactionType string
	Json            []byte
}

// GetTestTransactions returns a canonical document for a range of transaction types
func GetTestTransactions() []TestTransaction {
	return []TestTransaction{
		{Name: "Payment", TransactionType: "Payment", Json: trimmed(PaymentJson)},
		{Name: "OracleDelete", TransactionType: "OracleDelete", Json: trimmed(OracleDeleteJson)},
		{Name: "SetFee", TransactionType: "SetFee", Json: trimmed(SetFeeJson)},
		{Name: "AMMVote", TransactionType: "AMMVote", Json: trimmed(AMMVoteJson)},
		{Name: "SignerListSet", TransactionType: "SignerListSet", Json: trimmed(SignerListSetJson)},
		{Name: "NFTokenMint", TransactionType: "NFTokenMint", Json: trimmed(NFTokenMintJson)},
	}
}

func trimmed(s string) []byte {
	return []byte(strings.TrimSpace(s))
}
