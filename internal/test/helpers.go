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

package test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Well-known fixtures
const (
	// Address whose AccountID is all zeros
	AccountZeroAddress = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	// Address whose AccountID is 0x00..01
	AccountOneAddress = "rrrrrrrrrrrrrrrrrrrrBZbvji"
	// Genesis account and the secp256k1 key derived from the passphrase "masterpassphrase"
	GenesisAddress        = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	GenesisAccountIDHex   = "B5F762798A53D543A014CAF8B297CFF8F2F937E8"
	GenesisPublicKeyHex   = "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"
	Secp256k1PublicKeyHex = "0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	// ED prefix followed by the Ed25519 base point
	Ed25519PublicKeyHex = "ED5866666666666666666666666666666666666666666666666666666666666666"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// AccountIDBytes returns a 20-byte AccountID filled with b
func AccountIDBytes(b byte) []byte {
	return bytes.Repeat([]byte{b}, 20)
}

// HashHex returns a 64 character hex string filled with the hex digit pair for b
func HashHex(b byte) string {
	return strings.Repeat(fmt.Sprintf("%02X", b), 32)
}

// CompactJson strips insignificant whitespace from a JSON document, so fixtures can be
// written over several lines
func CompactJson(data string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(data)); err != nil {
		panic(fmt.Sprintf("error compacting JSON: %s", err))
	}
	return buf.String()
}
