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

package transaction

import (
	"log/slog"
)

// UnknownFieldPlacement controls where unknown fields are written relative to the known fields
type UnknownFieldPlacement int

const (
	// UnknownFieldsFirst writes unknown fields ahead of every known field
	UnknownFieldsFirst UnknownFieldPlacement = iota
	// UnknownFieldsLast writes unknown fields after every known field
	UnknownFieldsLast
)

type codecConfig struct {
	unknownFieldPlacement UnknownFieldPlacement
	logger                *slog.Logger
}

// CodecOptionFunc is a type that represents functions that modify the codec config
type CodecOptionFunc func(*codecConfig)

func newCodecConfig(opts ...CodecOptionFunc) *codecConfig {
	c := &codecConfig{
		unknownFieldPlacement: UnknownFieldsFirst,
		logger:                slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithUnknownFieldPlacement specifies where unknown fields are placed when encoding
func WithUnknownFieldPlacement(placement UnknownFieldPlacement) CodecOptionFunc {
	return func(c *codecConfig) {
		c.unknownFieldPlacement = placement
	}
}

// WithLogger specifies the logger used for decode diagnostics. Nothing is logged by default.
func WithLogger(logger *slog.Logger) CodecOptionFunc {
	return func(c *codecConfig) {
		if logger == nil {
			return
		}
		c.logger = logger
	}
}
