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
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/goxrpl/cmd/common"
	"github.com/blinklabs-io/goxrpl/ledger"
	"github.com/blinklabs-io/goxrpl/ledger/transaction"
)

type txCodecFlags struct {
	*common.GlobalFlags
	unknownLast bool
}

func main() {
	// Parse commandline
	f := txCodecFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.BoolVar(
		&f.unknownLast,
		"unknown-last",
		false,
		"write unknown fields after the known fields",
	)
	f.Parse()
	logger := f.Logger()

	if len(f.Flagset.Args()) == 0 {
		fmt.Printf("You must specify a subcommand (canonicalize, to-cbor, to-json or type)\n")
		os.Exit(1)
	}
	var err error
	switch f.Flagset.Arg(0) {
	case "canonicalize", "to-json":
		err = canonicalize(f, logger)
	case "to-cbor":
		err = toCbor(f, logger)
	case "type":
		err = printType(f)
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.Flagset.Arg(0))
		os.Exit(1)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func (f txCodecFlags) codecOptions(logger *slog.Logger) []transaction.CodecOptionFunc {
	placement := transaction.UnknownFieldsFirst
	if f.unknownLast {
		placement = transaction.UnknownFieldsLast
	}
	return []transaction.CodecOptionFunc{
		transaction.WithLogger(logger),
		transaction.WithUnknownFieldPlacement(placement),
	}
}

func decodeInput(f txCodecFlags, logger *slog.Logger) (ledger.Transaction, error) {
	input, err := f.ReadInputString()
	if err != nil {
		return nil, err
	}
	data := []byte(input)
	// CBOR input is accepted as hex
	if ledger.DetermineTransactionFormat(data) != ledger.TransactionFormatJson {
		tmp, err := hex.DecodeString(input)
		if err != nil {
			return nil, fmt.Errorf("input is neither JSON nor hex CBOR: %w", err)
		}
		data = tmp
	}
	logger.Debug(
		"read transaction",
		"format", ledger.DetermineTransactionFormat(data).String(),
		"bytes", len(data),
	)
	return ledger.NewTransaction(data, f.codecOptions(logger)...)
}

func canonicalize(f txCodecFlags, logger *slog.Logger) error {
	tx, err := decodeInput(f, logger)
	if err != nil {
		return err
	}
	out, err := ledger.EncodeTransactionJson(tx, f.codecOptions(logger)...)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func toCbor(f txCodecFlags, logger *slog.Logger) error {
	tx, err := decodeInput(f, logger)
	if err != nil {
		return err
	}
	out, err := ledger.EncodeTransactionCbor(tx, f.codecOptions(logger)...)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(out))
	return nil
}

func printType(f txCodecFlags) error {
	input, err := f.ReadInputString()
	if err != nil {
		return err
	}
	data := []byte(input)
	if ledger.DetermineTransactionFormat(data) != ledger.TransactionFormatJson {
		tmp, err := hex.DecodeString(input)
		if err != nil {
			return fmt.Errorf("input is neither JSON nor hex CBOR: %w", err)
		}
		data = tmp
	}
	txType, err := ledger.DetermineTransactionType(data)
	if err != nil {
		return err
	}
	fmt.Printf("%s (pseudo: %t)\n", txType, txType.IsPseudo())
	return nil
}
