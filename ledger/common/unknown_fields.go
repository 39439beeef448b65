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
	"fmt"
)

type unknownField struct {
	name  string
	value json.RawMessage
}

// UnknownFields is an ordered set of fields that are not part of a transaction's schema. They
// are carried through decode and encode unchanged. The zero value is empty. Values are never null.
type UnknownFields struct {
	entries []unknownField
}

// With returns a copy with name set to the JSON encoding of value. A json.RawMessage value is
// used as-is. Setting an existing name replaces its value in place.
func (u UnknownFields) With(name string, value any) (UnknownFields, error) {
	var raw []byte
	switch v := value.(type) {
	case json.RawMessage:
		raw = v
	default:
		tmp, err := marshalJson(value)
		if err != nil {
			return u, fmt.Errorf("failed to encode unknown field %s: %w", name, err)
		}
		raw = tmp
	}
	if len(raw) == 0 || IsNull(raw) {
		return u, &NotPresentError{Type: "unknown field " + name}
	}
	compacted, err := compactJSON(raw)
	if err != nil {
		return u, fmt.Errorf("invalid JSON for unknown field %s: %w", name, err)
	}
	entries := make([]unknownField, len(u.entries), len(u.entries)+1)
	copy(entries, u.entries)
	for idx := range entries {
		if entries[idx].name == name {
			entries[idx].value = compacted
			return UnknownFields{entries: entries}, nil
		}
	}
	entries = append(entries, unknownField{name: name, value: compacted})
	return UnknownFields{entries: entries}, nil
}

// Without returns a copy with name removed
func (u UnknownFields) Without(name string) UnknownFields {
	var entries []unknownField
	for _, entry := range u.entries {
		if entry.name != name {
			entries = append(entries, entry)
		}
	}
	return UnknownFields{entries: entries}
}

func (u UnknownFields) Get(name string) (json.RawMessage, bool) {
	for _, entry := range u.entries {
		if entry.name == name {
			ret := make(json.RawMessage, len(entry.value))
			copy(ret, entry.value)
			return ret, true
		}
	}
	return nil, false
}

// Names returns the field names in order
func (u UnknownFields) Names() []string {
	if len(u.entries) == 0 {
		return nil
	}
	ret := make([]string, 0, len(u.entries))
	for _, entry := range u.entries {
		ret = append(ret, entry.name)
	}
	return ret
}

func (u UnknownFields) Len() int {
	return len(u.entries)
}

// WriteTo appends the fields to doc in order
func (u UnknownFields) WriteTo(doc *Document) {
	for _, entry := range u.entries {
		doc.SetRaw(entry.name, entry.value)
	}
}
