package test

import (
	"testing"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/contract/wnative"
	"github.com/meadowlabs/meadow/extern/test/util"
	"github.com/stretchr/testify/require"
)

func amt(str string) *amount.Amount {
	return amount.MustParseAmount(str)
}

func balanceOf(tc *util.TestContext, token common.Address, addr common.Address) *amount.Amount {
	return tc.MustExec(util.Admin, token, "BalanceOf", addr)[0].(*amount.Amount)
}

func TestWrapUnwrap(t *testing.T) {
	tc := util.NewTestContext()
	wrapped := tc.MakeToken("Wrapped Main", "WMAIN", "0")
	wnAddr := tc.DeployContract(&wnative.WNativeContract{}, &wnative.WNativeContractConstruction{
		Wrapped: wrapped,
	})
	tc.MustExec(util.Admin, wrapped, "SetMinter", wnAddr, true)

	user := util.Users[0]
	tc.MustExec(util.Admin, tc.MainToken, "Transfer", user, amt("100"))
	tc.MustExec(user, tc.MainToken, "Approve", wnAddr, amt("1000000"))
	tc.MustExec(user, wrapped, "Approve", wnAddr, amt("1000000"))

	tc.MustExec(user, wnAddr, "Wrap", amt("100"))
	require.True(t, balanceOf(tc, tc.MainToken, user).IsZero())
	require.Equal(t, amt("100").String(), balanceOf(tc, wrapped, user).String())

	tc.MustExec(user, wnAddr, "Unwrap", amt("40"))
	require.Equal(t, amt("40").String(), balanceOf(tc, tc.MainToken, user).String())
	require.Equal(t, amt("60").String(), balanceOf(tc, wrapped, user).String())

	// supply mirrors the custodied main token one to one
	supply := tc.MustExec(util.Admin, wrapped, "TotalSupply")[0].(*amount.Amount)
	require.Equal(t, amt("60").String(), supply.String())
	require.Equal(t, amt("60").String(), balanceOf(tc, tc.MainToken, wnAddr).String())

	_, err := tc.Exec(user, wnAddr, "Unwrap", amt("61"))
	require.Error(t, err)
}
