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

// Package bench provides benchmark utilities and transaction fixtures for memory
// profiling.
package bench

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/goxrpl/internal/testdata"
	"github.com/blinklabs-io/goxrpl/ledger"
)

// TxFixture contains a pre-loaded transaction for benchmarking.
type TxFixture struct {
	Name string
	Json []byte
	Cbor []byte
	Tx   ledger.Transaction
}

// LoadTxFixture loads the test transaction with the given name. Names match
// TestTransaction.Name from internal/testdata and are case insensitive.
func LoadTxFixture(name string) (*TxFixture, error) {
	for _, testTx := range testdata.GetTestTransactions() {
		if !strings.EqualFold(testTx.Name, name) {
			continue
		}
		tx, err := ledger.NewTransactionFromJson(testTx.Json)
		if err != nil {
			return nil, fmt.Errorf("decode %s transaction: %w", testTx.Name, err)
		}
		cborData, err := ledger.EncodeTransactionCbor(tx)
		if err != nil {
			return nil, fmt.Errorf("encode %s transaction: %w", testTx.Name, err)
		}
		return &TxFixture{
			Name: testTx.Name,
			Json: testTx.Json,
			Cbor: cborData,
			Tx:   tx,
		}, nil
	}
	return nil, fmt.Errorf("unknown transaction fixture: %s", name)
}

// MustLoadTxFixture loads a test transaction and panics on error.
// Use this in benchmark init() or setup code.
func MustLoadTxFixture(name string) *TxFixture {
	fixture, err := LoadTxFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s tx fixture: %v", name, err))
	}
	return fixture
}

// FixtureNames returns the list of transaction fixture names for benchmarking.
func FixtureNames() []string {
	testTxs := testdata.GetTestTransactions()
	ret := make([]string, 0, len(testTxs))
	for _, testTx := range testTxs {
		ret = append(ret, testTx.Name)
	}
	return ret
}
