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

import "testing"

func FuzzNewAddressFromBytes(f *testing.F) {
	f.Add(make([]byte, AccountIDSize)) // AccountZero
	f.Add([]byte{0x01, 0x02, 0x03})     // Too short

	f.Fuzz(func(t *testing.T, data []byte) {
		addr, err := NewAddressFromBytes(data)
		if err != nil {
			return
		}
		tmp, err := NewAddress(addr.String())
		if err != nil {
			t.Fatalf("failed to parse encoded address %s: %s", addr, err)
		}
		if tmp != addr {
			t.Fatalf("address did not round trip: got %s, wanted %s", tmp, addr)
		}
	})
}

func FuzzNewAddress(f *testing.F) {
	f.Add("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh") // Genesis account
	f.Add("rrrrrrrrrrrrrrrrrrrrrhoLvTp")        // AccountZero
	f.Add("invalid_address_string")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := NewAddress(s)
		if err != nil {
			return
		}
		tmp, err := NewAddress(addr.String())
		if err != nil || tmp != addr {
			t.Fatalf("address %s did not round trip", s)
		}
	})
}

func FuzzNewPublicKey(f *testing.F) {
	f.Add("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	f.Add("ED5866666666666666666666666666666666666666666666666666666666666666")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		// Should not panic on any input
		_, _ = NewPublicKey(s)
	})
}
