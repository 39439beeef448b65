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
)

// Variable-length hex blob types. Values are stored in their normalized uppercase form, so
// "AA" and "aa" compare equal. The FromPlainText constructors hex-encode the exact bytes of
// the text, so "AA" and "aa" as plain text produce different values.

var (
	credentialTypeRule  = blobRule{typ: "CredentialType", maxChars: 128}
	uriRule             = blobRule{typ: "URI", maxChars: 512}
	mpTokenMetadataRule = blobRule{typ: "MPTokenMetadata", maxChars: 2048}
	blobRuleAny         = blobRule{typ: "Blob", allowEmpty: true}
)

// CredentialType identifies the kind of a credential: 1 to 64 bytes, 1 to 128 hex characters
type CredentialType struct {
	value string
}

func NewCredentialType(value string) (CredentialType, error) {
	v, err := credentialTypeRule.validate(value)
	if err != nil {
		return CredentialType{}, err
	}
	return CredentialType{value: v}, nil
}

// NewCredentialTypeFromPlainText hex-encodes the UTF-8 bytes of text
func NewCredentialTypeFromPlainText(text string) (CredentialType, error) {
	return NewCredentialType(hex.EncodeToString([]byte(text)))
}

func (c CredentialType) String() string { return c.value }

// Validate rejects a value that did not come from a constructor, such as the zero value
func (c CredentialType) Validate() error {
	_, err := credentialTypeRule.validate(c.value)
	return err
}

// PlainText returns the decoded bytes of the value as a string
func (c CredentialType) PlainText() string { return plainText(c.value) }

func (c CredentialType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

func (c *CredentialType) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString(credentialTypeRule.typ, data)
	if err != nil {
		return err
	}
	tmp, err := NewCredentialType(s)
	if err != nil {
		return err
	}
	*c = tmp
	return nil
}

// Uri is a hex-encoded URI of at most 256 bytes
type Uri struct {
	value string
}

func NewUri(value string) (Uri, error) {
	v, err := uriRule.validate(value)
	if err != nil {
		return Uri{}, err
	}
	return Uri{value: v}, nil
}

func NewUriFromPlainText(text string) (Uri, error) {
	return NewUri(hex.EncodeToString([]byte(text)))
}

func (u Uri) String() string { return u.value }

func (u Uri) Validate() error {
	_, err := uriRule.validate(u.value)
	return err
}

func (u Uri) PlainText() string { return plainText(u.value) }

func (u Uri) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.value)
}

func (u *Uri) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString(uriRule.typ, data)
	if err != nil {
		return err
	}
	tmp, err := NewUri(s)
	if err != nil {
		return err
	}
	*u = tmp
	return nil
}

// MpTokenMetadata is arbitrary hex-encoded metadata of at most 1024 bytes
type MpTokenMetadata struct {
	value string
}

func NewMpTokenMetadata(value string) (MpTokenMetadata, error) {
	v, err := mpTokenMetadataRule.validate(value)
	if err != nil {
		return MpTokenMetadata{}, err
	}
	return MpTokenMetadata{value: v}, nil
}

func NewMpTokenMetadataFromPlainText(text string) (MpTokenMetadata, error) {
	return NewMpTokenMetadata(hex.EncodeToString([]byte(text)))
}

func (m MpTokenMetadata) String() string { return m.value }

func (m MpTokenMetadata) Validate() error {
	_, err := mpTokenMetadataRule.validate(m.value)
	return err
}

func (m MpTokenMetadata) PlainText() string { return plainText(m.value) }

func (m MpTokenMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value)
}

func (m *MpTokenMetadata) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString(mpTokenMetadataRule.typ, data)
	if err != nil {
		return err
	}
	tmp, err := NewMpTokenMetadata(s)
	if err != nil {
		return err
	}
	*m = tmp
	return nil
}

// Blob is an unconstrained hex value, used for memo fields
type Blob struct {
	value string
}

func NewBlob(value string) (Blob, error) {
	v, err := blobRuleAny.validate(value)
	if err != nil {
		return Blob{}, err
	}
	return Blob{value: v}, nil
}

func NewBlobFromBytes(data []byte) Blob {
	return Blob{value: encodeHexUpper(data)}
}

func NewBlobFromPlainText(text string) Blob {
	return NewBlobFromBytes([]byte(text))
}

func (b Blob) String() string { return b.value }

func (b Blob) Bytes() []byte {
	ret, _ := hex.DecodeString(b.value)
	return ret
}

func (b Blob) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

func (b *Blob) UnmarshalJSON(data []byte) error {
	s, err := unmarshalJSONString(blobRuleAny.typ, data)
	if err != nil {
		return err
	}
	tmp, err := NewBlob(s)
	if err != nil {
		return err
	}
	*b = tmp
	return nil
}

func plainText(value string) string {
	data, err := hex.DecodeString(value)
	if err != nil {
		return ""
	}
	return string(data)
}
