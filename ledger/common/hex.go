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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
)

var jsonNull = []byte("null")

// marshalJson is json.Marshal without HTML escaping, so characters such as < and & in currency
// codes are written as-is
func marshalJson(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode appends a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// isHex reports whether s consists only of hex digits (either case)
func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// normalizeHex returns the uppercase form used for equality and output
func normalizeHex(s string) string {
	return strings.ToUpper(s)
}

func encodeHexUpper(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// decodeFixedHex decodes a hex string that must represent exactly size bytes
func decodeFixedHex(typ string, s string, size int) ([]byte, error) {
	if len(s) != size*2 {
		return nil, newFormatError(
			typ,
			s,
			"%s must be exactly %d hex characters.",
			typ,
			size*2,
		)
	}
	if !isHex(s) {
		return nil, newFormatError(
			typ,
			s,
			"%s must be encoded in hexadecimal.",
			typ,
		)
	}
	ret, err := hex.DecodeString(s)
	if err != nil {
		return nil, newFormatError(typ, s, "%s must be encoded in hexadecimal.", typ)
	}
	return ret, nil
}

// blobRule describes the length rules of a variable-length hex blob type
type blobRule struct {
	typ        string
	allowEmpty bool
	// maxChars of zero means unbounded
	maxChars int
}

func (r blobRule) validate(s string) (string, error) {
	if len(s) == 0 {
		if r.allowEmpty {
			return "", nil
		}
		return "", newFormatError(r.typ, s, "%s must not be empty.", r.typ)
	}
	if r.maxChars > 0 && len(s) > r.maxChars {
		return "", newFormatError(
			r.typ,
			s,
			"%s must be <= %d characters.",
			r.typ,
			r.maxChars,
		)
	}
	if !isHex(s) {
		return "", newFormatError(
			r.typ,
			s,
			"%s must be encoded in hexadecimal.",
			r.typ,
		)
	}
	if len(s)%2 != 0 {
		return "", newFormatError(
			r.typ,
			s,
			"%s must have an even number of hex characters.",
			r.typ,
		)
	}
	return normalizeHex(s), nil
}

// unmarshalJSONString extracts a JSON string, rejecting null and other JSON types
func unmarshalJSONString(typ string, data []byte) (string, error) {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return "", &NotPresentError{Type: typ}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", newFormatError(
			typ,
			string(data),
			"%s must be a JSON string.",
			typ,
		)
	}
	return s, nil
}
