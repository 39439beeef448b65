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
	"fmt"
	"testing"

	"github.com/blinklabs-io/goxrpl/internal/test"
	"github.com/blinklabs-io/goxrpl/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnableAmendmentDefaults(t *testing.T) {
	amendment := testHash(t, 0x42)
	tx, err := (&EnableAmendmentBuilder{
		Amendment:      &amendment,
		LedgerSequence: ptr(uint32(67850752)),
	}).Build()
	require.NoError(t, err)
	assert.Equal(t, common.AccountZero, tx.Account())
	assert.Equal(t, common.XrpCurrencyAmount(0), tx.Fee())
	data := roundTrip(t, tx)
	assert.Equal(
		t,
		fmt.Sprintf(
			`{"Account":"%s","TransactionType":"EnableAmendment","Fee":"0","Sequence":0,"SigningPubKey":"","Amendment":"%s","LedgerSequence":67850752}`,
			test.AccountZeroAddress,
			amendment,
		),
		string(data),
	)
}

func TestEnableAmendmentFlags(t *testing.T) {
	amendment := testHash(t, 0x42)
	b := &EnableAmendmentBuilder{
		Flags:     EnableAmendmentFlagGotMajority,
		Amendment: &amendment,
	}
	tx, err := b.Build()
	require.NoError(t, err)
	assert.True(t, tx.Flags().GotMajority())
	data := roundTrip(t, tx)
	assert.Contains(t, string(data), `"Flags":65536`)

	b.Flags = EnableAmendmentFlagGotMajority | EnableAmendmentFlagLostMajority
	_, err = b.Build()
	requireRule(t, err, "GotMajority and LostMajority flags cannot both be set.")

	_, err = (&EnableAmendmentBuilder{}).Build()
	require.ErrorIs(t, err, common.ErrIncomplete)
	assert.Contains(t, err.Error(), "[Amendment]")
}

func TestSetFeeSchedules(t *testing.T) {
	testDefs := []struct {
		name    string
		builder SetFeeBuilder
		rule    string
	}{
		{
			name: "legacy",
			builder: SetFeeBuilder{
				BaseFee:           ptr("000000000000000a"),
				ReferenceFeeUnits: ptr(uint32(10)),
				ReserveBase:       ptr(uint32(20000000)),
				ReserveIncrement:  ptr(uint32(5000000)),
			},
		},
		{
			name: "drops",
			builder: SetFeeBuilder{
				BaseFeeDrops:          testFee(t, 10),
				ReserveBaseDrops:      testFee(t, 10000000),
				ReserveIncrementDrops: testFee(t, 2000000),
			},
		},
		{
			name: "incomplete legacy",
			builder: SetFeeBuilder{
				BaseFee:     ptr("A"),
				ReserveBase: ptr(uint32(20000000)),
			},
			rule: "SetFee must carry exactly one complete fee schedule.",
		},
		{
			name: "mixed",
			builder: SetFeeBuilder{
				BaseFee:               ptr("A"),
				ReferenceFeeUnits:     ptr(uint32(10)),
				ReserveBase:           ptr(uint32(20000000)),
				ReserveIncrement:      ptr(uint32(5000000)),
				ReserveIncrementDrops: testFee(t, 2000000),
			},
			rule: "SetFee must carry exactly one complete fee schedule.",
		},
		{
			name:    "empty",
			builder: SetFeeBuilder{},
			rule:    "SetFee must carry exactly one complete fee schedule.",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			b := testDef.builder
			b.LedgerSequence = ptr(uint32(100))
			tx, err := b.Build()
			if testDef.rule != "" {
				requireRule(t, err, testDef.rule)
				return
			}
			require.NoError(t, err)
			data := roundTrip(t, tx)
			assert.NotContains(t, string(data), `"Flags"`)
		})
	}
}

func TestSetFeeBaseFeeFormat(t *testing.T) {
	b := SetFeeBuilder{
		BaseFee:           ptr("000000000000000a"),
		ReferenceFeeUnits: ptr(uint32(10)),
		ReserveBase:       ptr(uint32(20000000)),
		ReserveIncrement:  ptr(uint32(5000000)),
	}
	tx, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "000000000000000A", *tx.BaseFee())

	for _, value := range []string{"", "00000000000000001", "XYZ"} {
		b.BaseFee = ptr(value)
		_, err = b.Build()
		require.ErrorIs(t, err, common.ErrInvalidFormat)
		assert.Equal(t, "BaseFee must be 1 to 16 hex characters.", err.Error())
	}
}

func TestUNLModify(t *testing.T) {
	validator, err := common.NewPublicKey(test.Ed25519PublicKeyHex)
	require.NoError(t, err)
	b := &UNLModifyBuilder{
		Envelope: Envelope{
			Account: ptr(testAddress(t, 0x01)),
		},
		LedgerSequence:     ptr(uint32(1234)),
		UNLModifyDisabling: ptr(uint8(1)),
		UNLModifyValidator: &validator,
	}
	tx, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, common.AccountZero, tx.Account())
	assert.True(t, tx.Disabling())
	assert.Equal(t, uint32(1234), tx.LedgerSequence())
	assert.Equal(t, validator, tx.UNLModifyValidator())
	data := roundTrip(t, tx)
	assert.Contains(t, string(data), `"Account":"`+test.AccountZeroAddress+`"`)
	assert.Contains(t, string(data), `"UNLModifyValidator":"`+test.Ed25519PublicKeyHex+`"`)

	b.UNLModifyDisabling = ptr(uint8(2))
	_, err = b.Build()
	requireRule(t, err, "UNLModifyDisabling must be 0 or 1.")

	b.UNLModifyDisabling = ptr(uint8(0))
	b.UNLModifyValidator = &common.PublicKey{}
	_, err = b.Build()
	require.ErrorIs(t, err, common.ErrIncomplete)
	assert.Contains(t, err.Error(), "[UNLModifyValidator]")
}
