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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type GlobalFlags struct {
	Flagset *flag.FlagSet
	Input   string
	Debug   bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Input,
		"input",
		"-",
		"file to read input from (- for stdin)",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// Logger returns a text logger on stderr at the level selected by -debug
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

// ReadInput returns the contents of the -input file, or stdin
func (f *GlobalFlags) ReadInput() ([]byte, error) {
	if f.Input == "" || f.Input == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(f.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// ReadInputString returns the input with surrounding whitespace removed
func (f *GlobalFlags) ReadInputString() (string, error) {
	data, err := f.ReadInput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
