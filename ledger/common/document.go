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
	"errors"
	"fmt"
	"io"
)

// Document is a JSON object that keeps its keys in insertion order. Values are stored as
// compact raw JSON and written out verbatim.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

func NewDocument() *Document {
	return &Document{
		values: make(map[string]json.RawMessage),
	}
}

// ParseDocument decodes a JSON object, preserving key order. Duplicate keys and anything
// other than a single top-level object are rejected.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("invalid JSON document: expected an object")
	}
	doc := NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON document: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid JSON document: unexpected token %v", tok)
		}
		if _, exists := doc.values[key]; exists {
			return nil, fmt.Errorf("invalid JSON document: duplicate key %q", key)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid JSON document: field %s: %w", key, err)
		}
		compacted, err := compactJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON document: field %s: %w", key, err)
		}
		doc.SetRaw(key, compacted)
	}
	// Closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON document: trailing data after object")
	}
	return doc, nil
}

// Set marshals v and stores it under key. An existing key keeps its position.
func (d *Document) Set(key string, v any) error {
	raw, err := marshalJson(v)
	if err != nil {
		return fmt.Errorf("failed to encode field %s: %w", key, err)
	}
	d.SetRaw(key, raw)
	return nil
}

func (d *Document) SetRaw(key string, raw json.RawMessage) {
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
}

func (d *Document) Get(key string) (json.RawMessage, bool) {
	raw, ok := d.values[key]
	return raw, ok
}

func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in document order
func (d *Document) Keys() []string {
	ret := make([]string, len(d.keys))
	copy(ret, d.keys)
	return ret
}

func (d *Document) Len() int {
	return len(d.keys)
}

func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, key := range d.keys {
		if idx > 0 {
			buf.WriteByte(',')
		}
		keyJson, err := marshalJson(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJson)
		buf.WriteByte(':')
		buf.Write(d.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// IsNull reports whether a raw value is the JSON literal null
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func compactJSON(raw []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
