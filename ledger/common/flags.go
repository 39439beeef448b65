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

// Flags is a transaction flag bitmask. The zero value is the empty flag set.
type Flags uint32

const (
	// TfFullyCanonicalSig requires a fully-canonical signature. It is valid on every transaction type.
	TfFullyCanonicalSig Flags = 0x80000000
	// TfInnerBatchTxn marks a transaction as an inner transaction of a batch
	TfInnerBatchTxn Flags = 0x40000000

	// TfUniversalMask covers the bits accepted by every transaction type
	TfUniversalMask = TfFullyCanonicalSig | TfInnerBatchTxn
)

// EmptyFlags is the empty flag set
const EmptyFlags Flags = 0

func (f Flags) Value() uint32 { return uint32(f) }

func (f Flags) IsEmpty() bool { return f == 0 }

// Has reports whether every bit of other is set
func (f Flags) Has(other Flags) bool {
	return other != 0 && f&other == other
}

func (f Flags) Union(other Flags) Flags {
	return f | other
}

// Undefined returns the bits outside the universal mask and the given mask
func (f Flags) Undefined(mask Flags) Flags {
	return f &^ (mask | TfUniversalMask)
}
