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
	"github.com/blinklabs-io/goxrpl/ledger/common"
)

// MaxAMMTradingFee is the largest AMM trading fee, in units of 1/100000
const MaxAMMTradingFee = 1000

var ammVoteFieldNames = []string{"Asset", "Asset2", "TradingFee"}

// AMMVote votes on the trading fee of the AMM for an asset pair
type AMMVote struct {
	txBase
	asset      common.Issue
	asset2     common.Issue
	tradingFee uint16
}

type AMMVoteBuilder struct {
	Envelope
	Flags common.Flags
	// Asset is required
	Asset *common.Issue
	// Asset2 is required
	Asset2 *common.Issue
	// TradingFee is required
	TradingFee *uint16
}

func (b *AMMVoteBuilder) Build() (*AMMVote, error) {
	c := newBuildContext(TxTypeAMMVote)
	c.requireEnvelope(&b.Envelope)
	c.require("Asset", b.Asset != nil)
	c.require("Asset2", b.Asset2 != nil)
	c.require("TradingFee", b.TradingFee != nil)
	if err := c.incomplete(); err != nil {
		return nil, err
	}
	base := c.envelope(&b.Envelope, b.Flags, 0, ammVoteFieldNames)
	validatePtr(c, b.Asset)
	validatePtr(c, b.Asset2)
	c.check(
		*b.TradingFee <= MaxAMMTradingFee,
		"TradingFee must be <= %d.",
		MaxAMMTradingFee,
	)
	c.check(*b.Asset != *b.Asset2, "Asset and Asset2 must be different.")
	if err := c.failed(); err != nil {
		return nil, err
	}
	return &AMMVote{
		txBase:     base,
		asset:      *b.Asset,
		asset2:     *b.Asset2,
		tradingFee: *b.TradingFee,
	}, nil
}

func (b *AMMVoteBuilder) buildTransaction() (Transaction, error) {
	return buildAs(b.Build)
}

func (b *AMMVoteBuilder) readFields(r *fieldReader) {
	readInto(r, "Flags", expectFlags, &b.Flags)
	b.Asset = readPtr[common.Issue](r, "Asset", expectIssue)
	b.Asset2 = readPtr[common.Issue](r, "Asset2", expectIssue)
	b.TradingFee = readPtr[uint16](r, "TradingFee", expectUint16)
}

func NewAMMVoteFromJson(data []byte, opts ...CodecOptionFunc) (*AMMVote, error) {
	return decodeAs[*AMMVote](TxTypeAMMVote, data, opts...)
}

func (t *AMMVote) Asset() common.Issue { return t.asset }

func (t *AMMVote) Asset2() common.Issue { return t.asset2 }

func (t *AMMVote) TradingFee() uint16 { return t.tradingFee }

func (t *AMMVote) ToBuilder() *AMMVoteBuilder {
	return &AMMVoteBuilder{
		Envelope:   t.toEnvelope(),
		Flags:      t.flags,
		Asset:      clonePtr(&t.asset),
		Asset2:     clonePtr(&t.asset2),
		TradingFee: clonePtr(&t.tradingFee),
	}
}

func (t *AMMVote) writeFields(w *fieldWriter) {
	w.put("Asset", t.asset)
	w.put("Asset2", t.asset2)
	w.put("TradingFee", t.tradingFee)
}

func (t *AMMVote) MarshalJSON() ([]byte, error) {
	return Encode(t)
}

func (t *AMMVote) UnmarshalJSON(data []byte) error {
	tmp, err := NewAMMVoteFromJson(data)
	if err != nil {
		return err
	}
	*t = *tmp
	return nil
}
