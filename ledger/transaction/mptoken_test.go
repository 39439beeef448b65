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

	"github.com/blinklabs-io/goxrpl/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMpTokenIssuanceID = "00000001A407AF5856CCF3C42619DAA925813FC955C72983"

func testIssuanceID(t *testing.T) *common.MpTokenIssuanceID {
	t.Helper()
	id, err := common.NewMpTokenIssuanceID(testMpTokenIssuanceID)
	require.NoError(t, err)
	return &id
}

func TestMPTokenIssuanceCreate(t *testing.T) {
	metadata, err := common.NewMpTokenMetadataFromPlainText(`{"ticker":"TST"}`)
	require.NoError(t, err)
	b := &MPTokenIssuanceCreateBuilder{
		Envelope:        testEnvelope(t),
		Flags:           MPTokenIssuanceCreateFlagCanTransfer | MPTokenIssuanceCreateFlagCanLock,
		AssetScale:      ptr(uint8(2)),
		TransferFee:     ptr(uint16(314)),
		MaximumAmount:   ptr("9223372036854775807"),
		MPTokenMetadata: &metadata,
	}
	tx, err := b.Build()
	require.NoError(t, err)
	assert.True(t, tx.Flags().CanTransfer())
	assert.True(t, tx.Flags().CanLock())
	assert.False(t, tx.Flags().CanClawback())
	assert.Equal(t, `{"ticker":"TST"}`, tx.MPTokenMetadata().PlainText())
	data := roundTrip(t, tx)
	assert.Contains(t, string(data), `"Flags":34`)
	assert.Contains(t, string(data), `"MaximumAmount":"9223372036854775807"`)

	// every field is optional
	tx, err = (&MPTokenIssuanceCreateBuilder{Envelope: testEnvelope(t)}).Build()
	require.NoError(t, err)
	assert.Nil(t, tx.MaximumAmount())
	roundTrip(t, tx)
}

func TestMPTokenIssuanceCreateMaximumAmount(t *testing.T) {
	for _, value := range []string{"9223372036854775808", "-1", "1.5", "0x10", "007", ""} {
		t.Run(value, func(t *testing.T) {
			_, err := (&MPTokenIssuanceCreateBuilder{
				Envelope:      testEnvelope(t),
				MaximumAmount: ptr(value),
			}).Build()
			require.ErrorIs(t, err, common.ErrInvalidFormat)
			assert.Equal(
				t,
				"MaximumAmount must be a base-10 integer <= 9223372036854775807.",
				err.Error(),
			)
		})
	}
}

func TestMPTokenIssuanceCreateTransferFee(t *testing.T) {
	_, err := (&MPTokenIssuanceCreateBuilder{
		Envelope:    testEnvelope(t),
		TransferFee: ptr(uint16(1)),
	}).Build()
	requireRule(t, err, "TransferFee requires the CanTransfer flag.")

	_, err = (&MPTokenIssuanceCreateBuilder{
		Envelope:    testEnvelope(t),
		Flags:       MPTokenIssuanceCreateFlagCanTransfer,
		TransferFee: ptr(uint16(MaxTransferFee + 1)),
	}).Build()
	requireRule(t, err, "TransferFee must be <= 50000.")

	_, err = (&MPTokenIssuanceCreateBuilder{
		Envelope: testEnvelope(t),
		Flags:    MPTokenIssuanceCreateFlags(0x00000001),
	}).Build()
	requireRule(t, err, "Flags 0x00000001 are not defined for MPTokenIssuanceCreate.")
}

func TestMPTokenAuthorize(t *testing.T) {
	tx, err := (&MPTokenAuthorizeBuilder{
		Envelope:          testEnvelope(t),
		Flags:             MPTokenAuthorizeFlagUnauthorize,
		MPTokenIssuanceID: testIssuanceID(t),
		Holder:            ptr(testAddress(t, 0x04)),
	}).Build()
	require.NoError(t, err)
	assert.True(t, tx.Flags().Unauthorize())
	assert.Equal(t, testMpTokenIssuanceID, tx.MPTokenIssuanceID().String())
	data := roundTrip(t, tx)
	assert.Contains(t, string(data), `"MPTokenIssuanceID":"`+testMpTokenIssuanceID+`"`)

	_, err = (&MPTokenAuthorizeBuilder{
		Envelope:          testEnvelope(t),
		MPTokenIssuanceID: testIssuanceID(t),
		Holder:            ptr(testAddress(t, 0x01)),
	}).Build()
	requireRule(t, err, "Holder must not be the sending account.")

	_, err = (&MPTokenAuthorizeBuilder{Envelope: testEnvelope(t)}).Build()
	require.ErrorIs(t, err, common.ErrIncomplete)
}

func TestMPTokenIssuanceSet(t *testing.T) {
	b := &MPTokenIssuanceSetBuilder{
		Envelope:          testEnvelope(t),
		Flags:             MPTokenIssuanceSetFlagLock,
		MPTokenIssuanceID: testIssuanceID(t),
	}
	tx, err := b.Build()
	require.NoError(t, err)
	assert.True(t, tx.Flags().Lock())
	assert.Nil(t, tx.Holder())
	roundTrip(t, tx)

	b.Flags = MPTokenIssuanceSetFlagLock | MPTokenIssuanceSetFlagUnlock
	_, err = b.Build()
	requireRule(t, err, "Lock and Unlock flags cannot both be set.")

	b.Flags = MPTokenIssuanceSetFlagUnlock
	b.Holder = ptr(testAddress(t, 0x01))
	_, err = b.Build()
	requireRule(t, err, "Holder must not be the sending account.")
}

func TestMPTokenIssuanceDestroy(t *testing.T) {
	tx, err := (&MPTokenIssuanceDestroyBuilder{
		Envelope:          testEnvelope(t),
		MPTokenIssuanceID: testIssuanceID(t),
	}).Build()
	require.NoError(t, err)
	assert.Equal(t, *testIssuanceID(t), tx.MPTokenIssuanceID())
	roundTrip(t, tx)
}
