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

//go:build go1.18

package common

import (
	"testing"
)

func FuzzUnmarshalCurrencyAmount(f *testing.F) {
	seeds := []string{
		`"1000000"`,
		`{"currency":"USD","issuer":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","value":"-1.5e3"}`,
		`{"mpt_issuance_id":"00000001A407AF5856CCF3C42619DAA925813FC955C72983","value":"100"}`,
		`null`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		amount, err := UnmarshalCurrencyAmount(data)
		if err != nil {
			return
		}
		// Any accepted amount must be comparable with itself
		if cmp, err := CompareAmounts(amount, amount); err != nil || cmp != 0 {
			t.Fatalf("amount %s does not compare equal to itself", amount)
		}
	})
}

func FuzzParseDocument(f *testing.F) {
	seeds := []string{
		`{"Account":"rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh","TransactionType":"Payment"}`,
		`{"a":{"b":[1,2,{"c":null}]}}`,
		`{"a":1,"a":2}`,
		`[]`,
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := ParseDocument(data)
		if err != nil {
			return
		}
		out, err := doc.MarshalJSON()
		if err != nil {
			t.Fatalf("failed to encode parsed document: %s", err)
		}
		tmp, err := ParseDocument(out)
		if err != nil {
			t.Fatalf("failed to parse encoded document: %s", err)
		}
		if len(tmp.Keys()) != len(doc.Keys()) {
			t.Fatalf("document keys changed: got %v, wanted %v", tmp.Keys(), doc.Keys())
		}
	})
}
