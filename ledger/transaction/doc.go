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

// Package transaction implements the closed set of ledger transaction types, their builders and
// the canonical JSON codec.
//
// Every variant is built through its XxxBuilder. Build checks, in order, that required fields
// are set (common.IncompleteError), that fields without a dedicated value type are well formed
// (common.FormatError) and that the variant's cross-field rules hold (common.InvariantError).
// It then fixes the TransactionType and resolves envelope defaults. Built transactions are
// immutable; accessors return copies and ToBuilder starts a new builder from the resolved
// values.
//
// Encode writes known fields in canonical order, omits absent optional fields and places
// fields the variant does not model ahead of the known ones. Decode reverses this and routes the
// result through Build, so a decoded transaction satisfies the same rules as a built one.
package transaction
