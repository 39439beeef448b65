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

package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/blinklabs-io/goxrpl/cbor"
	"github.com/blinklabs-io/goxrpl/ledger/common"
)

// documentToCbor converts a canonical document into an ordered CBOR map. Integer literals that
// fit in 64 bits become CBOR unsigned or negative ints. Any other number keeps its literal text
// inside an embedded JSON tag.
func documentToCbor(doc *common.Document) ([]byte, error) {
	tmp := make(cbor.OrderedMap, 0, doc.Len())
	for _, key := range doc.Keys() {
		raw, _ := doc.Get(key)
		value, err := jsonToCborValue(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to convert field %s: %w", key, err)
		}
		tmp = append(tmp, cbor.MapEntry{Key: key, Value: value})
	}
	return cbor.Encode(tmp)
}

func jsonToCborValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	ret, err := readJsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return ret, nil
}

func readJsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			ret := cbor.OrderedMap{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key: %v", keyTok)
				}
				value, err := readJsonValue(dec)
				if err != nil {
					return nil, err
				}
				ret = append(ret, cbor.MapEntry{Key: key, Value: value})
			}
			// Closing delimiter
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ret, nil
		case '[':
			ret := []any{}
			for dec.More() {
				value, err := readJsonValue(dec)
				if err != nil {
					return nil, err
				}
				ret = append(ret, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ret, nil
		}
		return nil, fmt.Errorf("unexpected delimiter: %s", v)
	case json.Number:
		return jsonNumberToCbor(v), nil
	default:
		// string, bool or nil
		return v, nil
	}
}

func jsonNumberToCbor(v json.Number) any {
	if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
		return u
	}
	// -0 has no integer form
	if v.String() != "-0" {
		if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return i
		}
	}
	return cbor.Tag{
		Number:  cbor.CborTagEmbeddedJson,
		Content: []byte(v.String()),
	}
}

// cborToJson converts a CBOR map into the equivalent JSON object, keeping map order at every
// level
func cborToJson(data []byte) ([]byte, error) {
	var tmp cbor.OrderedMap
	bytesRead, err := cbor.Decode(data, &tmp)
	if err != nil {
		return nil, err
	}
	if bytesRead != len(data) {
		return nil, errors.New("unexpected data after CBOR map")
	}
	var buf bytes.Buffer
	if err := writeJsonValue(&buf, tmp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJsonValue(buf *bytes.Buffer, value any) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case uint64:
		buf.WriteString(strconv.FormatUint(v, 10))
	case int64:
		buf.WriteString(strconv.FormatInt(v, 10))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("unsupported float value: %v", v)
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case string:
		return writeJsonString(buf, v)
	case cbor.OrderedMap:
		buf.WriteByte('{')
		for i, entry := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJsonString(buf, entry.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJsonValue(buf, entry.Value); err != nil {
				return fmt.Errorf("field %s: %w", entry.Key, err)
			}
		}
		buf.WriteByte('}')
	case cbor.Tag:
		return writeJsonNumberTag(buf, v)
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJsonValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("unsupported CBOR value of type %T", value)
	}
	return nil
}

// writeJsonNumberTag writes the literal held by an embedded JSON tag. Only number literals are
// accepted.
func writeJsonNumberTag(buf *bytes.Buffer, tag cbor.Tag) error {
	if tag.Number != cbor.CborTagEmbeddedJson {
		return fmt.Errorf("unsupported CBOR tag %d", tag.Number)
	}
	content, ok := tag.Content.([]byte)
	if !ok {
		return fmt.Errorf("embedded JSON tag must hold a byte string, got %T", tag.Content)
	}
	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil || dec.More() || num.String() != string(content) {
		return fmt.Errorf("embedded JSON tag does not hold a number literal: %q", content)
	}
	buf.Write(content)
	return nil
}

func writeJsonString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}
