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
	"encoding/hex"
	"encoding/json"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	PublicKeySize = 33

	PublicKeyPrefixEd25519 = 0xED

	SignatureMaxChars = 144
)

type KeyType int

const (
	KeyTypeNone KeyType = iota
	KeyTypeSecp256k1
	KeyTypeEd25519
)

func (k KeyType) String() string {
	switch k {
	case KeyTypeSecp256k1:
		return "secp256k1"
	case KeyTypeEd25519:
		return "ed25519"
	default:
		return "none"
	}
}

// PublicKey is a 33-byte signing key: 0xED followed by an Ed25519 point, or a compressed
// secp256k1 point. The empty value is permitted and marks an unsigned or pseudo-transaction.
type PublicKey struct {
	value string
}

// EmptyPublicKey is the empty signing key
var EmptyPublicKey = PublicKey{}

func NewPublicKey(value string) (PublicKey, error) {
	if value == "" {
		return EmptyPublicKey, nil
	}
	data, err := decodeFixedHex("PublicKey", value, PublicKeySize)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKeyFromBytes(data)
}

func NewPublicKeyFromBytes(data []byte) (PublicKey, error) {
	if len(data) == 0 {
		return EmptyPublicKey, nil
	}
	if len(data) != PublicKeySize {
		return PublicKey{}, newFormatError(
			"PublicKey",
			encodeHexUpper(data),
			"PublicKey must be exactly %d bytes.",
			PublicKeySize,
		)
	}
	if data[0] == PublicKeyPrefixEd25519 {
		if _, err := new(edwards25519.Point).SetBytes(data[1:]); err != nil {
			return PublicKey{}, newFormatError(
				"PublicKey",
				encodeHexUpper(data),
				"PublicKey is not a valid ed25519 key: %s",
				err,
			)
		}
	} else {
		if _, err := btcec.ParsePubKey(data); err != nil {
			return PublicKey{}, newFormatError(
				"PublicKey",
				encodeHexUpper(data),
				"PublicKey is not a valid secp256k1 key: %s",
				err,
			)
		}
	}
	return PublicKey{value: encodeHexUpper(data)}, nil
}

func (p PublicKey) IsEmpty() bool { return p.value == "" }

func (p PublicKey) KeyType() KeyType {
	switch {
	case p.value == "":
		return KeyTypeNone
	case p.value[:2] == "ED":
		return KeyTypeEd25519
	default:
		return KeyTypeSecp256k1
	}
}

func (p PublicKey) String() string { return p.value }

func (p PublicKey) Bytes() []byte {
	ret, _ := hex.DecodeString(p.value)
	return ret
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString("PublicKey", data)
	if err != nil {
		return err
	}
	tmp, err := NewPublicKey(s)
	if err != nil {
		return err
	}
	*p = tmp
	return nil
}

// Signature is a hex-encoded transaction signature (DER secp256k1 or raw Ed25519)
type Signature struct {
	value string
}

var signatureRule = blobRule{typ: "TxnSignature", maxChars: SignatureMaxChars}

func NewSignature(value string) (Signature, error) {
	v, err := signatureRule.validate(value)
	if err != nil {
		return Signature{}, err
	}
	return Signature{value: v}, nil
}

func (s Signature) String() string { return s.value }

func (s Signature) Validate() error {
	_, err := signatureRule.validate(s.value)
	return err
}

func (s Signature) Bytes() []byte {
	ret, _ := hex.DecodeString(s.value)
	return ret
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	str, err := unmarshalJSONString(signatureRule.typ, data)
	if err != nil {
		return err
	}
	tmp, err := NewSignature(str)
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}
