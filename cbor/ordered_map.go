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

package cbor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// MapEntry is a single key/value pair of an OrderedMap
type MapEntry struct {
	Key   string
	Value any
}

// OrderedMap is a CBOR map with text keys that keeps its entries in the order they were
// written. Nested maps decode as OrderedMap and nested arrays as []any, so the order is kept at
// every level.
type OrderedMap []MapEntry

// Get returns the value for key
func (m OrderedMap) Get(key string) (any, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

func (m OrderedMap) MarshalCBOR() ([]byte, error) {
	ret := appendHead(nil, CborTypeMap, uint64(len(m)))
	for _, entry := range m {
		keyData, err := Encode(entry.Key)
		if err != nil {
			return nil, err
		}
		valueData, err := Encode(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode map value %s: %w", entry.Key, err)
		}
		ret = append(ret, keyData...)
		ret = append(ret, valueData...)
	}
	return ret, nil
}

func (m *OrderedMap) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 || data[0]&CborTypeMask != CborTypeMap {
		return errors.New("CBOR value is not a map")
	}
	count, headLen, err := decodeHead(data)
	if err != nil {
		return err
	}
	decMode, err := getDecMode()
	if err != nil {
		return err
	}
	dec := decMode.NewDecoder(bytes.NewReader(data[headLen:]))
	ret := make(OrderedMap, 0, min(count, 1024))
	seen := make(map[string]struct{})
	for i := uint64(0); i < count; i++ {
		var key string
		if err := dec.Decode(&key); err != nil {
			return fmt.Errorf("failed to decode map key: %w", err)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate map key: %s", key)
		}
		seen[key] = struct{}{}
		var raw RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode map value %s: %w", key, err)
		}
		value, err := decodeOrdered(raw)
		if err != nil {
			return fmt.Errorf("failed to decode map value %s: %w", key, err)
		}
		ret = append(ret, MapEntry{Key: key, Value: value})
	}
	*m = ret
	return nil
}

func decodeOrdered(raw RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty CBOR value")
	}
	switch raw[0] & CborTypeMask {
	case CborTypeMap:
		var tmp OrderedMap
		if _, err := Decode(raw, &tmp); err != nil {
			return nil, err
		}
		return tmp, nil
	case CborTypeArray:
		var items []RawMessage
		if _, err := Decode(raw, &items); err != nil {
			return nil, err
		}
		ret := make([]any, 0, len(items))
		for _, item := range items {
			value, err := decodeOrdered(item)
			if err != nil {
				return nil, err
			}
			ret = append(ret, value)
		}
		return ret, nil
	default:
		var tmp any
		if _, err := Decode(raw, &tmp); err != nil {
			return nil, err
		}
		return tmp, nil
	}
}

// appendHead appends a CBOR item head with the given major type and argument
func appendHead(buf []byte, majorType uint8, n uint64) []byte {
	switch {
	case n <= uint64(CborMaxUintSimple):
		return append(buf, majorType|uint8(n))
	case n <= math.MaxUint8:
		return append(buf, majorType|0x18, uint8(n))
	case n <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(buf, majorType|0x19), uint16(n))
	case n <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(buf, majorType|0x1a), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(buf, majorType|0x1b), n)
	}
}

// decodeHead returns the argument of a CBOR item head and the size of the head
func decodeHead(data []byte) (uint64, int, error) {
	info := data[0] & 0x1f
	var size int
	switch {
	case info <= CborMaxUintSimple:
		return uint64(info), 1, nil
	case info == 0x18:
		size = 1
	case info == 0x19:
		size = 2
	case info == 0x1a:
		size = 4
	case info == 0x1b:
		size = 8
	default:
		return 0, 0, errors.New("indefinite-length maps are not supported")
	}
	if len(data) < 1+size {
		return 0, 0, errors.New("truncated CBOR item head")
	}
	var ret uint64
	for _, b := range data[1 : 1+size] {
		ret = ret<<8 | uint64(b)
	}
	return ret, 1 + size, nil
}
