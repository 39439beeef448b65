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
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/goxrpl/ledger/common"
)

const MaxSignerEntries = 32

var signerListSetFieldNames = []string{"SignerQuorum", "SignerEntries"}

// SignerEntry is one member of a multi-signing list
type SignerEntry struct {
	Account       common.Address
	SignerWeight  uint16
	WalletLocator *common.Hash256
}

type signerEntryFieldsJson struct {
	Account       *common.Address `json:"Account"`
	SignerWeight  *uint16         `json:"SignerWeight"`
	WalletLocator *common.Hash256 `json:"WalletLocator,omitempty"`
}

type signerEntryJson struct {
	SignerEntry *signerEntryFieldsJson `json:"SignerEntry"`
}

func (s SignerEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(signerEntryJson{
		SignerEntry: &signerEntryFieldsJson{
			Account:       &s.Account,
			SignerWeight:  &s.SignerWeight,
			WalletLocator: s.WalletLocator,
		},
	})
}

func (s *SignerEntry) UnmarshalJSON(data []byte) error {
	var tmp signerEntryJson
	if err := decodeStrict(data, &tmp); err != nil {
		return fmt.Errorf("invalid SignerEntry: %w", err)
	}
	if tmp.SignerEntry == nil ||
		tmp.SignerEntry.Account == nil ||
		tmp.SignerEntry.SignerWeight == nil {
		return &common.NotPresentError{Type: "SignerEntry"}
	}
	s.Account = *tmp.SignerEntry.Account
	s.SignerWeight = *tmp.SignerEntry.SignerWeight
	s.WalletLocator = tmp.SignerEntry.WalletLocator
	return nil
}

func cloneSignerEntries(entries []SignerEntry) []SignerEntry {
	if len(entries) == 0 {
		return nil
	}
	ret := make([]SignerEntry, 0, len(entries))
	for _, entry := range entries {
		entry.WalletLocator = clonePtr(entry.WalletLocator)
		ret = append(ret, entry)
	}
	return ret
}

// SignerListSet creates, replaces or (with a quorum of 0) removes the account's signer list
type SignerListSet struct {
	txBase
	signerQuorum  uint32
	signerEntries []SignerEntry
}

type SignerListSetBuilder struct {
	Envelope
	Flags common.Flags
	// SignerQuorum is required. Zero deletes the signer list and requires no entries.
	SignerQuorum  *uint32
	SignerEntries []SignerEntry
}

func (b *SignerListSetBuilder) Build() (*SignerListSet, error) {
	c := newBuildContext(TxTypeSignerListSet)
	c.requireEnvelope(&b.Envelope)
	c.require("SignerQuorum", b.SignerQuorum != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, signerListSetFieldNames)
	if *b.SignerQuorum == 0 {
		c.check(
			len(b.SignerEntries) == 0,
			"SignerEntries must be empty when SignerQuorum is 0.",
		)
	} else {
		c.check(
			len(b.SignerEntries) > 0,
			"SignerEntries must not be empty when SignerQuorum is greater than 0.",
		)
	}
	c.check(
		len(b.SignerEntries) <= MaxSignerEntries,
		"SignerEntries must have less than or equal to %d entries.",
		MaxSignerEntries,
	)
	var totalWeight uint64
	seen := make(map[common.Address]struct{}, len(b.SignerEntries))
	for _, entry := range b.SignerEntries {
		_, dup := seen[entry.Account]
		c.check(!dup, "SignerEntries should have unique accounts.")
		seen[entry.Account] = struct{}{}
		c.check(
			entry.Account != base.account,
			"SignerEntries must not include the sending account.",
		)
		totalWeight += uint64(entry.SignerWeight)
	}
	if len(b.SignerEntries) > 0 {
		c.check(
			uint64(*b.SignerQuorum) <= totalWeight,
			"SignerQuorum must not exceed the sum of SignerWeight values.",
		)
	}
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &SignerListSet{
		txBase:        base,
		signerQuorum:  *b.SignerQuorum,
		signerEntries: cloneSignerEntries(b.SignerEntries),
	}, nil
}

func (b *SignerListSetBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *SignerListSetBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.SignerQuorum = readPtr[uint32](r, "SignerQuorum", expectUint32)
	readInto(r, "SignerEntries", "array of SignerEntry objects", &b.SignerEntries)
}

func NewSignerListSetFromJson(
	data []byte,
	opts ...CodecOptionFunc,
) (*SignerListSet, error) {
	return decodeAs[*SignerListSet](TxTypeSignerListSet, data, opts...)
}

func (t *SignerListSet) SignerQuorum() uint32 { return t.signerQuorum }

func (t *SignerListSet) SignerEntries() []SignerEntry {
	return cloneSignerEntries(t.signerEntries)
}

func (t *SignerListSet) ToBuilder() *SignerListSetBuilder {
	return &SignerListSetBuilder{
		Envelope:      t.toEnvelope(),
		Flags:         t.flags,
		SignerQuorum:  clonePtr(&t.signerQuorum),
		SignerEntries: cloneSignerEntries(t.signerEntries),
	}
}

func (t *SignerListSet) writeFields(w *fieldWriter) {
	w.put("SignerQuorum", t.signerQuorum)
	putList(w, "SignerEntries", t.signerEntries)
}

func (t *SignerListSet) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *SignerListSet) UnmarshalJSON(data []byte) error {
	tmp, err := NewSignerListSetFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
