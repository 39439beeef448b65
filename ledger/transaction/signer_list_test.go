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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignerEntries(t *testing.T, count int, weight uint16) []SignerEntry {
	t.Helper()
	ret := make([]SignerEntry, 0, count)
	for i := range count {
		ret = append(ret, SignerEntry{
			Account:      testAddress(t, byte(0x20+i)),
			SignerWeight: weight,
		})
	}
	return ret
}

func TestSignerListSet(t *testing.T) {
	entries := testSignerEntries(t, 3, 1)
	entries[0].WalletLocator = ptr(testHash(t, 0x77))
	b := &SignerListSetBuilder{
		Envelope:      testEnvelope(t),
		SignerQuorum:  ptr(uint32(3)),
		SignerEntries: entries,
	}
	tx, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), tx.SignerQuorum())
	assert.Len(t, tx.SignerEntries(), 3)

	// builder changes do not reach the built transaction
	*entries[0].WalletLocator = testHash(t, 0x78)
	assert.Equal(t, testHash(t, 0x77), *tx.SignerEntries()[0].WalletLocator)

	data := roundTrip(t, tx)
	assert.Contains(
		t,
		string(data),
		`"SignerEntries":[{"SignerEntry":{"Account":"`+testAddress(t, 0x20).String()+`","SignerWeight":1,"WalletLocator":"`,
	)
}

func TestSignerListSetDelete(t *testing.T) {
	tx, err := (&SignerListSetBuilder{
		Envelope:     testEnvelope(t),
		SignerQuorum: ptr(uint32(0)),
	}).Build()
	require.NoError(t, err)
	assert.Empty(t, tx.SignerEntries())
	data := roundTrip(t, tx)
	assert.Contains(t, string(data), `"SignerQuorum":0`)
	assert.NotContains(t, string(data), "SignerEntries")
}

func TestSignerListSetRules(t *testing.T) {
	testDefs := []struct {
		name    string
		quorum  uint32
		entries func(t *testing.T) []SignerEntry
		rule    string
	}{
		{
			name:    "entries with zero quorum",
			quorum:  0,
			entries: func(t *testing.T) []SignerEntry { return testSignerEntries(t, 1, 1) },
			rule:    "SignerEntries must be empty when SignerQuorum is 0.",
		},
		{
			name:    "no entries",
			quorum:  1,
			entries: func(t *testing.T) []SignerEntry { return nil },
			rule:    "SignerEntries must not be empty when SignerQuorum is greater than 0.",
		},
		{
			name:    "too many entries",
			quorum:  1,
			entries: func(t *testing.T) []SignerEntry { return testSignerEntries(t, MaxSignerEntries+1, 1) },
			rule:    "SignerEntries must have less than or equal to 32 entries.",
		},
		{
			name:   "duplicate account",
			quorum: 1,
			entries: func(t *testing.T) []SignerEntry {
				entries := testSignerEntries(t, 2, 1)
				entries[1].Account = entries[0].Account
				return entries
			},
			rule: "SignerEntries should have unique accounts.",
		},
		{
			name:   "sending account",
			quorum: 1,
			entries: func(t *testing.T) []SignerEntry {
				entries := testSignerEntries(t, 2, 1)
				entries[1].Account = testAddress(t, 0x01)
				return entries
			},
			rule: "SignerEntries must not include the sending account.",
		},
		{
			name:    "quorum unreachable",
			quorum:  7,
			entries: func(t *testing.T) []SignerEntry { return testSignerEntries(t, 3, 2) },
			rule:    "SignerQuorum must not exceed the sum of SignerWeight values.",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := (&SignerListSetBuilder{
				Envelope:      testEnvelope(t),
				SignerQuorum:  ptr(testDef.quorum),
				SignerEntries: testDef.entries(t),
			}).Build()
			requireRule(t, err, testDef.rule)
		})
	}
}
