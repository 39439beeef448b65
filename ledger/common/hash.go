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
	"encoding/json"
)

const (
	Hash256Size           = 32
	MpTokenIssuanceIDSize = 24
)

// Hash256 is a 256-bit identifier (transaction IDs, amendment IDs, NFToken IDs, offer and
// domain IDs). Hex input is accepted in either case; output is always uppercase.
type Hash256 [Hash256Size]byte

// NewHash256 parses a 64 character hex string
func NewHash256(value string) (Hash256, error) {
	var h Hash256
	data, err := decodeFixedHex("Hash256", value, Hash256Size)
	if err != nil {
		return h, err
	}
	copy(h[:], data)
	return h, nil
}

// NewHash256FromBytes returns a Hash256 for exactly 32 bytes of data
func NewHash256FromBytes(data []byte) (Hash256, error) {
	var h Hash256
	if len(data) != Hash256Size {
		return h, newFormatError(
			"Hash256",
			encodeHexUpper(data),
			"Hash256 must be exactly %d bytes.",
			Hash256Size,
		)
	}
	copy(h[:], data)
	return h, nil
}

func (h Hash256) String() string {
	return encodeHexUpper(h[:])
}

func (h Hash256) Bytes() []byte {
	return h[:]
}

// Compare orders hashes by their byte value
func (h Hash256) Compare(other Hash256) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash256) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString("Hash256", data)
	if err != nil {
		return err
	}
	tmp, err := NewHash256(s)
	if err != nil {
		return err
	}
	*h = tmp
	return nil
}

// MpTokenIssuanceID is the 192-bit identifier of a multi-purpose token issuance
type MpTokenIssuanceID [MpTokenIssuanceIDSize]byte

// NewMpTokenIssuanceID parses a 48 character hex string
func NewMpTokenIssuanceID(value string) (MpTokenIssuanceID, error) {
	var id MpTokenIssuanceID
	data, err := decodeFixedHex(
		"MpTokenIssuanceID",
		value,
		MpTokenIssuanceIDSize,
	)
	if err != nil {
		return id, err
	}
	copy(id[:], data)
	return id, nil
}

func (id MpTokenIssuanceID) String() string {
	return encodeHexUpper(id[:])
}

func (id MpTokenIssuanceID) Bytes() []byte {
	return id[:]
}

func (id MpTokenIssuanceID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *MpTokenIssuanceID) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString("MpTokenIssuanceID", data)
	if err != nil {
		return err
	}
	tmp, err := NewMpTokenIssuanceID(s)
	if err != nil {
		return err
	}
	*id = tmp
	return nil
}
