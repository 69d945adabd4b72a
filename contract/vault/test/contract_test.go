package test

import (
	"testing"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/contract/vault"
	"github.com/meadowlabs/meadow/extern/test/util"
	"github.com/stretchr/testify/require"
)

func amt(str string) *amount.Amount {
	return amount.MustParseAmount(str)
}

type vaultFixture struct {
	tc        *util.TestContext
	want      common.Address
	vaultAddr common.Address
}

// The farm slot is wired to the admin so the entry points can be
// driven directly.
func setupVault(t *testing.T) *vaultFixture {
	tc := util.NewTestContext()
	want := tc.MakeToken("Want", "WANT", "10000")
	vaultAddr := tc.DeployContract(&vault.VaultContract{}, &vault.VaultContractConstruction{
		Gov:            util.Admin,
		Farm:           util.Admin,
		Want:           want,
		FeeFundAddress: util.FeeFund,
	})
	tc.MustExec(util.Admin, want, "Approve", vaultAddr, amt("1000000"))
	return &vaultFixture{tc: tc, want: want, vaultAddr: vaultAddr}
}

func (f *vaultFixture) balanceOf(addr common.Address) *amount.Amount {
	return f.tc.MustExec(util.Admin, f.want, "BalanceOf", addr)[0].(*amount.Amount)
}

func TestDepositCreditsAmount(t *testing.T) {
	f := setupVault(t)

	credited := f.tc.MustExec(util.Admin, f.vaultAddr, "Deposit", util.Users[0], amt("100"))[0].(*amount.Amount)
	require.Equal(t, amt("100").String(), credited.String())

	locked := f.tc.MustExec(util.Admin, f.vaultAddr, "WantLockedTotal")[0].(*amount.Amount)
	require.Equal(t, amt("100").String(), locked.String())
	require.Equal(t, amt("100").String(), f.balanceOf(f.vaultAddr).String())
}

func TestWithdrawFeeSplit(t *testing.T) {
	f := setupVault(t)
	user := util.Users[0]

	f.tc.MustExec(util.Admin, f.vaultAddr, "Deposit", user, amt("1000"))

	// 25 per thousand
	released := f.tc.MustExec(util.Admin, f.vaultAddr, "Withdraw", user, amt("200"), uint16(25))[0].(*amount.Amount)
	require.Equal(t, amt("195").String(), released.String())
	require.Equal(t, amt("195").String(), f.balanceOf(user).String())
	require.Equal(t, amt("5").String(), f.balanceOf(util.FeeFund).String())

	locked := f.tc.MustExec(util.Admin, f.vaultAddr, "WantLockedTotal")[0].(*amount.Amount)
	require.Equal(t, amt("800").String(), locked.String())
}

func TestWithdrawFeeBoundaries(t *testing.T) {
	f := setupVault(t)
	user := util.Users[0]
	f.tc.MustExec(util.Admin, f.vaultAddr, "Deposit", user, amt("100"))

	released := f.tc.MustExec(util.Admin, f.vaultAddr, "Withdraw", user, amt("50"), uint16(0))[0].(*amount.Amount)
	require.Equal(t, amt("50").String(), released.String())

	released = f.tc.MustExec(util.Admin, f.vaultAddr, "Withdraw", user, amt("50"), uint16(1000))[0].(*amount.Amount)
	require.True(t, released.IsZero())
	require.Equal(t, amt("50").String(), f.balanceOf(util.FeeFund).String())

	_, err := f.tc.Exec(util.Admin, f.vaultAddr, "Withdraw", user, amt("1"), uint16(1001))
	require.Error(t, err)
}

func TestWithdrawCapsAtLockedTotal(t *testing.T) {
	f := setupVault(t)
	user := util.Users[0]
	f.tc.MustExec(util.Admin, f.vaultAddr, "Deposit", user, amt("100"))

	released := f.tc.MustExec(util.Admin, f.vaultAddr, "Withdraw", user, amt("500"), uint16(0))[0].(*amount.Amount)
	require.Equal(t, amt("100").String(), released.String())

	locked := f.tc.MustExec(util.Admin, f.vaultAddr, "WantLockedTotal")[0].(*amount.Amount)
	require.True(t, locked.IsZero())
}

func TestFarmGating(t *testing.T) {
	f := setupVault(t)

	_, err := f.tc.Exec(util.Users[0], f.vaultAddr, "Deposit", util.Users[0], amt("1"))
	require.Error(t, err)
	_, err = f.tc.Exec(util.Users[0], f.vaultAddr, "Withdraw", util.Users[0], amt("1"), uint16(0))
	require.Error(t, err)

	// gov can rewire the farm slot, others cannot
	_, err = f.tc.Exec(util.Users[0], f.vaultAddr, "SetFarm", util.Users[0])
	require.Error(t, err)
	f.tc.MustExec(util.Admin, f.vaultAddr, "SetFarm", util.Users[0])
	farmAddr := f.tc.MustExec(util.Admin, f.vaultAddr, "Farm")[0].(common.Address)
	require.Equal(t, util.Users[0], farmAddr)
}
