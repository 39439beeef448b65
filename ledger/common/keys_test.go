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
	"strings"
	"testing"

	"github.com/blinklabs-io/goxrpl/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicKey(t *testing.T) {
	testDefs := []struct {
		name    string
		value   string
		keyType KeyType
		err     bool
	}{
		{name: "empty", value: "", keyType: KeyTypeNone},
		{name: "ed25519", value: test.Ed25519PublicKeyHex, keyType: KeyTypeEd25519},
		{name: "ed25519 lowercase", value: strings.ToLower(test.Ed25519PublicKeyHex), keyType: KeyTypeEd25519},
		{name: "secp256k1", value: test.Secp256k1PublicKeyHex, keyType: KeyTypeSecp256k1},
		{name: "genesis", value: test.GenesisPublicKeyHex, keyType: KeyTypeSecp256k1},
		{name: "too short", value: "ED5866", err: true},
		{name: "not hex", value: strings.Repeat("ZZ", 33), err: true},
		{name: "uncompressed prefix", value: "04" + test.Secp256k1PublicKeyHex[2:], err: true},
		{name: "x outside field", value: "02" + strings.Repeat("FF", 32), err: true},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			pubKey, err := NewPublicKey(testDef.value)
			if testDef.err {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testDef.keyType, pubKey.KeyType())
			assert.Equal(t, strings.ToUpper(testDef.value), pubKey.String())
		})
	}
}

func TestPublicKeyCaseEquality(t *testing.T) {
	upper, err := NewPublicKey(test.Ed25519PublicKeyHex)
	require.NoError(t, err)
	lower, err := NewPublicKey(strings.ToLower(test.Ed25519PublicKeyHex))
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.Equal(t, test.DecodeHexString(test.Ed25519PublicKeyHex), lower.Bytes())
}

func TestSignature(t *testing.T) {
	sig, err := NewSignature("3045022100abcd")
	require.NoError(t, err)
	assert.Equal(t, "3045022100ABCD", sig.String())
	_, err = NewSignature("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = NewSignature(strings.Repeat("AB", 73))
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = NewSignature("ABC")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
