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
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors so callers can classify failures with errors.Is
var (
	ErrNotPresent    = errors.New("value not present")
	ErrInvalidFormat = errors.New("invalid format")
	ErrIncomplete    = errors.New("incomplete construction")
	ErrInvariant     = errors.New("invariant violated")
	ErrSchema        = errors.New("schema violation")
)

// NotPresentError indicates that a value was required but absent (a JSON null or missing input)
type NotPresentError struct {
	Type string
}

func (e NotPresentError) Error() string {
	return e.Type + " value must be present"
}

func (NotPresentError) Is(target error) bool {
	return target == ErrNotPresent
}

// FormatError indicates that a value violates the grammar, length or charset of its type
type FormatError struct {
	Type    string
	Value   string
	Message string
}

func (e FormatError) Error() string {
	return e.Message
}

func (FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func newFormatError(typ string, value string, format string, args ...any) *FormatError {
	return &FormatError{
		Type:    typ,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}

// IncompleteError indicates that a builder was finalized without all of its required fields
type IncompleteError struct {
	TransactionType string
	Fields          []string
}

func (e IncompleteError) Error() string {
	return fmt.Sprintf(
		"cannot build %s, some of required attributes are not set [%s]",
		e.TransactionType,
		strings.Join(e.Fields, ", "),
	)
}

func (IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

// InvariantError indicates that individually valid fields violate a rule of the
// transaction type. The error text is the rule description.
type InvariantError struct {
	TransactionType string
	Rule            string
}

func (e InvariantError) Error() string {
	return e.Rule
}

func (InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// DecodeError indicates that an external document could not be decoded. Field is empty when
// the failure concerns the document as a whole.
type DecodeError struct {
	TransactionType string
	Field           string
	Expected        string
	Err             error
}

func (e DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("failed to decode")
	if e.TransactionType != "" {
		b.WriteString(" " + e.TransactionType)
	}
	if e.Field != "" {
		b.WriteString(" field " + e.Field)
	}
	if e.Expected != "" {
		b.WriteString(" (expected " + e.Expected + ")")
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e DecodeError) Unwrap() error { return e.Err }

func (DecodeError) Is(target error) bool {
	return target == ErrSchema
}
