package test

import (
	"testing"

	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/extern/test/util"
	"github.com/stretchr/testify/require"
)

func amt(str string) *amount.Amount {
	return amount.MustParseAmount(str)
}

func TestTransfer(t *testing.T) {
	tc := util.NewTestContext()
	tokenAddr := tc.MakeToken("Test", "TST", "1000")

	tc.MustExec(util.Admin, tokenAddr, "Transfer", util.Users[0], amt("300"))

	bal := tc.MustExec(util.Admin, tokenAddr, "BalanceOf", util.Users[0])[0].(*amount.Amount)
	require.Equal(t, amt("300").String(), bal.String())
	bal = tc.MustExec(util.Admin, tokenAddr, "BalanceOf", util.Admin)[0].(*amount.Amount)
	require.Equal(t, amt("700").String(), bal.String())

	// a failed transfer leaves no state behind
	_, err := tc.Exec(util.Users[0], tokenAddr, "Transfer", util.Users[1], amt("301"))
	require.Error(t, err)
	bal = tc.MustExec(util.Admin, tokenAddr, "BalanceOf", util.Users[0])[0].(*amount.Amount)
	require.Equal(t, amt("300").String(), bal.String())
}

func TestApproveTransferFrom(t *testing.T) {
	tc := util.NewTestContext()
	tokenAddr := tc.MakeToken("Test", "TST", "1000")
	spender, to := util.Users[0], util.Users[1]

	tc.MustExec(util.Admin, tokenAddr, "Approve", spender, amt("100"))
	allowance := tc.MustExec(util.Admin, tokenAddr, "Allowance", util.Admin, spender)[0].(*amount.Amount)
	require.Equal(t, amt("100").String(), allowance.String())

	tc.MustExec(spender, tokenAddr, "TransferFrom", util.Admin, to, amt("60"))
	allowance = tc.MustExec(util.Admin, tokenAddr, "Allowance", util.Admin, spender)[0].(*amount.Amount)
	require.Equal(t, amt("40").String(), allowance.String())

	_, err := tc.Exec(spender, tokenAddr, "TransferFrom", util.Admin, to, amt("41"))
	require.Error(t, err)
}

func TestMintGating(t *testing.T) {
	tc := util.NewTestContext()
	tokenAddr := tc.MakeToken("Test", "TST", "1000")

	_, err := tc.Exec(util.Users[0], tokenAddr, "Mint", util.Users[0], amt("1"))
	require.Error(t, err)

	tc.MustExec(util.Admin, tokenAddr, "SetMinter", util.Users[0], true)
	tc.MustExec(util.Users[0], tokenAddr, "Mint", util.Users[0], amt("5"))

	supply := tc.MustExec(util.Admin, tokenAddr, "TotalSupply")[0].(*amount.Amount)
	require.Equal(t, amt("1005").String(), supply.String())
}

func TestBurn(t *testing.T) {
	tc := util.NewTestContext()
	tokenAddr := tc.MakeToken("Test", "TST", "1000")

	tc.MustExec(util.Admin, tokenAddr, "Burn", amt("100"))
	supply := tc.MustExec(util.Admin, tokenAddr, "TotalSupply")[0].(*amount.Amount)
	require.Equal(t, amt("900").String(), supply.String())
	bal := tc.MustExec(util.Admin, tokenAddr, "BalanceOf", util.Admin)[0].(*amount.Amount)
	require.Equal(t, amt("900").String(), bal.String())
}

func TestPauseBlocksTransfer(t *testing.T) {
	tc := util.NewTestContext()
	tokenAddr := tc.MakeToken("Test", "TST", "1000")

	tc.MustExec(util.Admin, tokenAddr, "Pause")
	_, err := tc.Exec(util.Admin, tokenAddr, "Transfer", util.Users[0], amt("1"))
	require.Error(t, err)

	tc.MustExec(util.Admin, tokenAddr, "Unpause")
	tc.MustExec(util.Admin, tokenAddr, "Transfer", util.Users[0], amt("1"))
}
