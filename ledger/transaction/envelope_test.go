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
	"encoding/json"
	"errors"
	"testing"

	"github.com/blinklabs-io/goxrpl/internal/test"
	"github.com/blinklabs-io/goxrpl/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRequiredFields(t *testing.T) {
	b := &OracleDeleteBuilder{}
	_, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrIncomplete)
	var incompleteErr *common.IncompleteError
	require.True(t, errors.As(err, &incompleteErr))
	assert.Equal(t, []string{"Account", "Fee", "OracleDocumentID"}, incompleteErr.Fields)
	assert.Equal(t, "OracleDelete", incompleteErr.TransactionType)
}

func TestEnvelopeDefaults(t *testing.T) {
	tx, err := (&OracleDeleteBuilder{
		Envelope:         testEnvelope(t),
		OracleDocumentID: ptr(uint32(3)),
	}).Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), tx.Sequence())
	assert.Nil(t, tx.TicketSequence())
	assert.Nil(t, tx.Memos())
	assert.Nil(t, tx.Signers())
	assert.True(t, tx.SigningPubKey().IsEmpty())
	assert.True(t, tx.Flags().IsEmpty())
	assert.Equal(t, TxTypeOracleDelete, tx.Type())
	data := roundTrip(t, tx)
	assert.Contains(t, string(data), `"SigningPubKey":""`)
	assert.Contains(t, string(data), `"Flags":0`)
	assert.NotContains(t, string(data), "TicketSequence")
	assert.NotContains(t, string(data), "Memos")
}

func TestEnvelopeTicketSequence(t *testing.T) {
	b := &OracleDeleteBuilder{
		Envelope:         testEnvelope(t),
		OracleDocumentID: ptr(uint32(3)),
	}
	b.TicketSequence = ptr(uint32(10))
	tx, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(10), *tx.TicketSequence())
	roundTrip(t, tx)

	b.Sequence = 4
	_, err = b.Build()
	requireRule(t, err, "Sequence must be 0 when TicketSequence is set.")
}

func TestEnvelopeUndefinedFlags(t *testing.T) {
	b := &OracleDeleteBuilder{
		Envelope:         testEnvelope(t),
		OracleDocumentID: ptr(uint32(3)),
		Flags:            common.TfFullyCanonicalSig,
	}
	_, err := b.Build()
	require.NoError(t, err)
	b.Flags = common.TfFullyCanonicalSig | 0x00010000
	_, err = b.Build()
	requireRule(t, err, "Flags 0x00010000 are not defined for OracleDelete.")
}

func TestEnvelopeUnknownFieldCollision(t *testing.T) {
	for _, name := range []string{"Fee", "OracleDocumentID"} {
		b := &OracleDeleteBuilder{
			Envelope:         testEnvelope(t),
			OracleDocumentID: ptr(uint32(3)),
		}
		unknownFields, err := b.UnknownFields.With(name, "1")
		require.NoError(t, err)
		b.UnknownFields = unknownFields
		_, err = b.Build()
		requireRule(t, err, "UnknownFields must not contain the known field "+name+".")
	}
}

func TestEnvelopeMemosAndSigners(t *testing.T) {
	memoType := common.NewBlobFromPlainText("text/plain")
	memoData := common.NewBlobFromPlainText("hello")
	pubKey, err := common.NewPublicKey(test.Secp256k1PublicKeyHex)
	require.NoError(t, err)
	sig, err := common.NewSignature("30440220AABB")
	require.NoError(t, err)
	b := &OracleDeleteBuilder{
		Envelope:         testEnvelope(t),
		OracleDocumentID: ptr(uint32(3)),
	}
	b.Memos = []Memo{{MemoType: &memoType, MemoData: &memoData}}
	b.Signers = []Signer{
		{Account: testAddress(t, 0x05), SigningPubKey: pubKey, TxnSignature: sig},
		{Account: testAddress(t, 0x06), SigningPubKey: pubKey, TxnSignature: sig},
	}
	tx, err := b.Build()
	require.NoError(t, err)
	data := roundTrip(t, tx)
	assert.Contains(t, string(data), `"Memos":[{"Memo":{"MemoData":"68656C6C6F","MemoType":"746578742F706C61696E"}}]`)
	assert.Contains(t, string(data), `"Signers":[{"Signer":{"Account":"`+testAddress(t, 0x05).String()+`"`)

	// Accessors return copies
	memos := tx.Memos()
	replacement := common.NewBlobFromPlainText("other")
	memos[0].MemoData = &replacement
	assert.Equal(t, "hello", string(tx.Memos()[0].MemoData.Bytes()))

	b.Memos = []Memo{{}}
	_, err = b.Build()
	requireRule(t, err, "Memo must contain at least one of MemoData, MemoFormat or MemoType.")

	b.Memos = nil
	b.Signers = append(b.Signers, b.Signers[0])
	_, err = b.Build()
	requireRule(t, err, "Signers must have unique accounts.")
}

func TestEnvelopeEmptyListsAreAbsent(t *testing.T) {
	b := &OracleDeleteBuilder{
		Envelope:         testEnvelope(t),
		OracleDocumentID: ptr(uint32(3)),
	}
	b.Memos = []Memo{}
	b.Signers = []Signer{}
	tx, err := b.Build()
	require.NoError(t, err)
	assert.Nil(t, tx.Memos())
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Memos")
	assert.NotContains(t, string(data), "Signers")
}

func TestToBuilderReproducesTransaction(t *testing.T) {
	tx := testOracleDelete(t)
	b := tx.ToBuilder()
	rebuilt, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, tx, rebuilt)

	// Changing the builder leaves the original alone
	b.OracleDocumentID = ptr(uint32(99))
	b.Sequence = 8
	changed, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tx.OracleDocumentID())
	assert.Equal(t, uint32(99), changed.OracleDocumentID())
	assert.Equal(t, uint32(0), tx.Sequence())
}
