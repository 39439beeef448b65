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

package main

import (
	"fmt"
	"os"

	"github.com/blinklabs-io/goxrpl/cmd/common"
	lcommon "github.com/blinklabs-io/goxrpl/ledger/common"
)

func main() {
	f := common.NewGlobalFlags()
	f.Parse()
	logger := f.Logger()

	if len(f.Flagset.Args()) == 0 {
		fmt.Printf("You must specify a subcommand (validate or derive)\n")
		os.Exit(1)
	}
	// The value can be given as an argument or through -input
	value := f.Flagset.Arg(1)
	if value == "" {
		tmp, err := f.ReadInputString()
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		value = tmp
	}
	switch f.Flagset.Arg(0) {
	case "validate":
		addr, err := lcommon.NewAddress(value)
		if err != nil {
			logger.Error("invalid address", "address", value, "error", err)
			os.Exit(1)
		}
		logger.Debug("decoded address", "account_id", fmt.Sprintf("%X", addr.Bytes()))
		fmt.Printf("Address: %s\n", addr.String())
		fmt.Printf("AccountID: %X\n", addr.Bytes())
		fmt.Printf("Account zero: %t\n", addr == lcommon.AccountZero)
	case "derive":
		pubKey, err := lcommon.NewPublicKey(value)
		if err != nil {
			logger.Error("invalid public key", "key", value, "error", err)
			os.Exit(1)
		}
		addr, err := lcommon.NewAddressFromPublicKey(pubKey)
		if err != nil {
			logger.Error("failed to derive address", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Key type: %s\n", pubKey.KeyType())
		fmt.Printf("Address: %s\n", addr.String())
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.Flagset.Arg(0))
		os.Exit(1)
	}
}
