package util

import (
	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/contract/token"
	"github.com/meadowlabs/meadow/core/types"
)

// TestContext is an in-memory execution fixture. It holds the kernel
// context and the deployed main token and advances time explicitly.
type TestContext struct {
	Ctx       *types.Context
	MainToken common.Address
}

func NewTestContext() *TestContext {
	tc := &TestContext{
		Ctx: types.NewEmptyContext(),
	}
	tc.MainToken = tc.DeployContract(&token.TokenContract{}, &token.TokenContractConstruction{
		Name:   "MainToken",
		Symbol: "MAIN",
		InitialSupplyMap: map[common.Address]*amount.Amount{
			Admin: amount.MustParseAmount("100000000"),
		},
	})
	tc.Ctx.SetMainToken(tc.MainToken)
	return tc
}

// Sleep advances the clock and opens the next unit-of-work boundary.
func (tc *TestContext) Sleep(seconds uint64) {
	tc.Ctx = tc.Ctx.NextContext(tc.Ctx.LastTimestamp() + seconds)
}
