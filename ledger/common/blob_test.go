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
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialType(t *testing.T) {
	testDefs := []struct {
		value       string
		expected    string
		expectedErr string
	}{
		{
			value:       strings.Repeat("A", 129),
			expectedErr: "CredentialType must be <= 128 characters.",
		},
		{
			value:       "",
			expectedErr: "CredentialType must not be empty.",
		},
		{
			value:       "not hex!",
			expectedErr: "CredentialType must be encoded in hexadecimal.",
		},
		{
			value:    "AFDD",
			expected: "AFDD",
		},
		{
			value:    "afdd",
			expected: "AFDD",
		},
		{
			value:    strings.Repeat("ab", 64),
			expected: strings.Repeat("AB", 64),
		},
	}
	for _, testDef := range testDefs {
		credType, err := NewCredentialType(testDef.value)
		if testDef.expectedErr != "" {
			require.Error(t, err)
			assert.Equal(t, testDef.expectedErr, err.Error())
			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, "CredentialType", formatErr.Type)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, credType.String())
	}
}

func TestHexCaseEquality(t *testing.T) {
	upper, err := NewCredentialType("AA")
	require.NoError(t, err)
	lower, err := NewCredentialType("aa")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.True(t, upper == lower)

	// Plain text keeps the exact bytes
	plainUpper, err := NewCredentialTypeFromPlainText("AA")
	require.NoError(t, err)
	plainLower, err := NewCredentialTypeFromPlainText("aa")
	require.NoError(t, err)
	assert.NotEqual(t, plainUpper, plainLower)
	assert.Equal(t, "4141", plainUpper.String())
	assert.Equal(t, "6161", plainLower.String())
	assert.Equal(t, "aa", plainLower.PlainText())
}

func TestUri(t *testing.T) {
	uri, err := NewUriFromPlainText("ipfs://example")
	require.NoError(t, err)
	assert.Equal(t, "ipfs://example", uri.PlainText())
	_, err = NewUri(strings.Repeat("AB", 257))
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = NewUri("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMpTokenMetadata(t *testing.T) {
	_, err := NewMpTokenMetadata(strings.Repeat("AB", 1024))
	require.NoError(t, err)
	_, err = NewMpTokenMetadata(strings.Repeat("AB", 1025))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBlob(t *testing.T) {
	empty, err := NewBlob("")
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())
	blob := NewBlobFromPlainText("text/plain")
	assert.Equal(t, "746578742F706C61696E", blob.String())
	assert.Equal(t, []byte("text/plain"), blob.Bytes())
	_, err = NewBlob("ABC")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBlobJson(t *testing.T) {
	var credType CredentialType
	require.NoError(t, json.Unmarshal([]byte(`"afdd"`), &credType))
	out, err := json.Marshal(credType)
	require.NoError(t, err)
	assert.Equal(t, `"AFDD"`, string(out))

	err = json.Unmarshal([]byte(`null`), &credType)
	assert.ErrorIs(t, err, ErrNotPresent)
	var notPresentErr *NotPresentError
	require.True(t, errors.As(err, &notPresentErr))
	assert.Equal(t, "CredentialType", notPresentErr.Type)
}
