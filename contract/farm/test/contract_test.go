package test

import (
	"bytes"
	"testing"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/contract/farm"
	"github.com/meadowlabs/meadow/contract/vault"
	"github.com/meadowlabs/meadow/core/types"
	"github.com/meadowlabs/meadow/extern/test/util"
	"github.com/stretchr/testify/require"
)

func init() {
	util.RegisterContractClass(&ReenterVault{}, "ReenterVault")
}

func amt(str string) *amount.Amount {
	return amount.MustParseAmount(str)
}

type farmFixture struct {
	tc       *util.TestContext
	farmAddr common.Address
	stk      common.Address
	rew      common.Address
	vault    common.Address
}

// setupFarm deploys a farm with one pool (alloc 100, the given withdraw
// fee, one reward token at 10/sec), funds the farm with rewardFund and
// starts it at t=100.
func setupFarm(t *testing.T, bonusMultiplier uint32, withdrawFee uint16, rewardFund string) *farmFixture {
	tc := util.NewTestContext()

	rew := tc.MakeToken("Reward", "REW", "1000000")
	stk := tc.MakeToken("Stake", "STK", "1000000")

	farmAddr := tc.DeployContract(&farm.FarmContract{}, &farm.FarmContractConstruction{
		Owner:           util.Admin,
		FeeFund:         util.FeeFund,
		BonusMultiplier: bonusMultiplier,
	})
	vaultAddr := tc.DeployContract(&vault.VaultContract{}, &vault.VaultContractConstruction{
		Gov:            util.Admin,
		Farm:           farmAddr,
		Want:           stk,
		FeeFundAddress: util.FeeFund,
	})

	if rewardFund != "0" {
		tc.MustExec(util.Admin, rew, "Transfer", farmAddr, amt(rewardFund))
	}

	tc.Sleep(100)
	tc.MustExec(util.Admin, farmAddr, "SetStartTime", uint64(100))
	tc.MustExec(util.Admin, farmAddr, "AddPool", uint32(100), stk, vaultAddr, withdrawFee,
		[]common.Address{rew}, []*amount.Amount{amt("10")}, false)

	return &farmFixture{tc: tc, farmAddr: farmAddr, stk: stk, rew: rew, vault: vaultAddr}
}

func (f *farmFixture) fund(user common.Address, stkAmt string) {
	f.tc.MustExec(util.Admin, f.stk, "Transfer", user, amt(stkAmt))
	f.tc.MustExec(user, f.stk, "Approve", f.farmAddr, amt("1000000000"))
}

func balanceOf(tc *util.TestContext, token common.Address, addr common.Address) *amount.Amount {
	return tc.MustExec(util.Admin, token, "BalanceOf", addr)[0].(*amount.Amount)
}

func pending(tc *util.TestContext, farmAddr common.Address, pid uint64, user common.Address, token common.Address) *amount.Amount {
	return tc.MustExec(util.Admin, farmAddr, "PendingReward", pid, user, token)[0].(*amount.Amount)
}

func stakeOf(tc *util.TestContext, farmAddr common.Address, pid uint64, user common.Address) *amount.Amount {
	return tc.MustExec(util.Admin, farmAddr, "UserInfo", pid, user)[0].(*amount.Amount)
}

func TestAccrualAndHarvestIdempotence(t *testing.T) {
	f := setupFarm(t, 1, 0, "100000")
	user := util.Users[0]
	f.fund(user, "1000")

	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("1000"))
	f.tc.Sleep(10)

	// rate 10/s * 10s * 100/100 alloc share
	require.Equal(t, amt("100").String(), pending(f.tc, f.farmAddr, 0, user, f.rew).String())

	f.tc.MustExec(user, f.farmAddr, "Harvest", uint64(0))
	require.Equal(t, amt("100").String(), balanceOf(f.tc, f.rew, user).String())

	// second harvest at the same instant pays nothing
	f.tc.MustExec(user, f.farmAddr, "Harvest", uint64(0))
	require.Equal(t, amt("100").String(), balanceOf(f.tc, f.rew, user).String())
	require.True(t, pending(f.tc, f.farmAddr, 0, user, f.rew).IsZero())

	require.Equal(t, amt("100").String(),
		f.tc.MustExec(util.Admin, f.farmAddr, "TotalPaid", f.rew)[0].(*amount.Amount).String())
}

func TestEqualStakesEqualPending(t *testing.T) {
	f := setupFarm(t, 1, 0, "100000")
	a, b := util.Users[0], util.Users[1]
	f.fund(a, "500")
	f.fund(b, "500")

	f.tc.MustExec(a, f.farmAddr, "Deposit", uint64(0), amt("500"))
	f.tc.MustExec(b, f.farmAddr, "Deposit", uint64(0), amt("500"))
	f.tc.Sleep(10)

	pa := pending(f.tc, f.farmAddr, 0, a, f.rew)
	pb := pending(f.tc, f.farmAddr, 0, b, f.rew)
	require.Equal(t, pa.String(), pb.String())
	require.Equal(t, amt("50").String(), pa.String())
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	f := setupFarm(t, 1, 0, "100000")
	user := util.Users[0]
	f.fund(user, "1000")

	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("1000"))
	require.True(t, balanceOf(f.tc, f.stk, user).IsZero())

	// no time elapsed, zero fee: principal comes back exactly
	f.tc.MustExec(user, f.farmAddr, "Withdraw", uint64(0), amt("1000"))
	require.Equal(t, amt("1000").String(), balanceOf(f.tc, f.stk, user).String())
	require.True(t, balanceOf(f.tc, f.rew, user).IsZero())
	require.True(t, stakeOf(f.tc, f.farmAddr, 0, user).IsZero())
}

func TestWithdrawExceedsStake(t *testing.T) {
	f := setupFarm(t, 1, 0, "100000")
	user := util.Users[0]
	f.fund(user, "1000")
	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("1000"))

	_, err := f.tc.Exec(user, f.farmAddr, "Withdraw", uint64(0), amt("1001"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds stake")
	require.Equal(t, amt("1000").String(), stakeOf(f.tc, f.farmAddr, 0, user).String())
}

func TestWithdrawFeeBoundaries(t *testing.T) {
	// fee 1000: everything to the fee fund, nothing to the user
	f := setupFarm(t, 1, 1000, "100000")
	user := util.Users[0]
	f.fund(user, "200")

	feeFundBefore := balanceOf(f.tc, f.stk, util.FeeFund)
	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("100"))
	f.tc.MustExec(user, f.farmAddr, "Withdraw", uint64(0), amt("100"))

	require.Equal(t, amt("100").String(), balanceOf(f.tc, f.stk, user).String())
	require.Equal(t, feeFundBefore.Add(amt("100")).String(), balanceOf(f.tc, f.stk, util.FeeFund).String())

	// fee-aware pending view is net of the full fee
	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("100"))
	f.tc.Sleep(10)
	require.True(t, pending(f.tc, f.farmAddr, 0, user, f.rew).IsZero())

	// the full gross still leaves the farm, routed to the fee fund
	rewFeeFundBefore := balanceOf(f.tc, f.rew, util.FeeFund)
	f.tc.MustExec(user, f.farmAddr, "Harvest", uint64(0))
	require.True(t, balanceOf(f.tc, f.rew, user).IsZero())
	require.Equal(t, rewFeeFundBefore.Add(amt("100")).String(), balanceOf(f.tc, f.rew, util.FeeFund).String())
}

func TestBonusWindowStraddle(t *testing.T) {
	f := setupFarm(t, 2, 0, "100000")
	f.tc.MustExec(util.Admin, f.farmAddr, "SetBonusEndTime", uint64(105))
	user := util.Users[0]
	f.fund(user, "1000")

	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("1000"))
	f.tc.Sleep(10)

	// 5s doubled inside the window plus 5s plain after it
	require.Equal(t, amt("150").String(), pending(f.tc, f.farmAddr, 0, user, f.rew).String())
}

func TestLifecycleGates(t *testing.T) {
	tc := util.NewTestContext()
	rew := tc.MakeToken("Reward", "REW", "1000000")
	stk := tc.MakeToken("Stake", "STK", "1000000")
	farmAddr := tc.DeployContract(&farm.FarmContract{}, &farm.FarmContractConstruction{
		Owner:   util.Admin,
		FeeFund: util.FeeFund,
	})
	vaultAddr := tc.DeployContract(&vault.VaultContract{}, &vault.VaultContractConstruction{
		Gov:            util.Admin,
		Farm:           farmAddr,
		Want:           stk,
		FeeFundAddress: util.FeeFund,
	})
	tc.MustExec(util.Admin, farmAddr, "AddPool", uint32(100), stk, vaultAddr, uint16(0),
		[]common.Address{rew}, []*amount.Amount{amt("10")}, false)

	user := util.Users[0]
	tc.MustExec(util.Admin, stk, "Transfer", user, amt("100"))
	tc.MustExec(user, stk, "Approve", farmAddr, amt("1000000"))

	// bonus end cannot precede a start, start must exist first
	_, err := tc.Exec(util.Admin, farmAddr, "SetBonusEndTime", uint64(500))
	require.Error(t, err)

	// not started yet
	_, err = tc.Exec(user, farmAddr, "Deposit", uint64(0), amt("100"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not started")

	tc.Sleep(100)
	tc.MustExec(util.Admin, farmAddr, "SetStartTime", uint64(100))

	// start time is set at most once
	_, err = tc.Exec(util.Admin, farmAddr, "SetStartTime", uint64(200))
	require.Error(t, err)
	require.Contains(t, err.Error(), "already started")

	_, err = tc.Exec(util.Admin, farmAddr, "SetBonusEndTime", uint64(100))
	require.Error(t, err)
	tc.MustExec(util.Admin, farmAddr, "SetBonusEndTime", uint64(200))

	// paused blocks every user-facing mutation
	tc.MustExec(util.Admin, farmAddr, "Pause")
	_, err = tc.Exec(user, farmAddr, "Deposit", uint64(0), amt("100"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "paused")
	_, err = tc.Exec(user, farmAddr, "Harvest", uint64(0))
	require.Error(t, err)

	tc.MustExec(util.Admin, farmAddr, "Unpause")
	tc.MustExec(user, farmAddr, "Deposit", uint64(0), amt("100"))

	// duplicate want asset rejected
	_, err = tc.Exec(util.Admin, farmAddr, "AddPool", uint32(100), stk, vaultAddr, uint16(0),
		[]common.Address{rew}, []*amount.Amount{amt("10")}, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	// participant listing is owner only
	_, err = tc.Exec(user, farmAddr, "Participants", uint64(0))
	require.Error(t, err)
	users := tc.MustExec(util.Admin, farmAddr, "Participants", uint64(0))[0].([]common.Address)
	require.Equal(t, []common.Address{user}, users)
}

func TestRewardShortfallObservable(t *testing.T) {
	f := setupFarm(t, 1, 0, "30")
	user := util.Users[0]
	f.fund(user, "1000")

	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("1000"))
	f.tc.Sleep(10)
	require.Equal(t, amt("100").String(), pending(f.tc, f.farmAddr, 0, user, f.rew).String())

	// only 30 on hand: pay what is there, flag the rest
	f.tc.MustExec(user, f.farmAddr, "Harvest", uint64(0))
	require.Equal(t, amt("30").String(), balanceOf(f.tc, f.rew, user).String())
	require.Equal(t, amt("30").String(),
		f.tc.MustExec(util.Admin, f.farmAddr, "TotalPaid", f.rew)[0].(*amount.Amount).String())

	var shortfall *amount.Amount
	for _, ev := range f.tc.Ctx.Events() {
		if ev.Type != types.EventTagContract {
			continue
		}
		cev := &types.ContractEvent{}
		_, err := cev.ReadFrom(bytes.NewReader(ev.Result))
		require.NoError(t, err)
		if cev.Name == "RewardShortfall" {
			shortfall = cev.Args[3].(*amount.Amount)
		}
	}
	require.NotNil(t, shortfall)
	require.Equal(t, amt("70").String(), shortfall.String())

	// the debt baseline advanced as if fully paid
	require.True(t, pending(f.tc, f.farmAddr, 0, user, f.rew).IsZero())
}

func TestRemoveRewardTokenDrains(t *testing.T) {
	f := setupFarm(t, 1, 0, "100000")
	rew2 := f.tc.MakeToken("Reward2", "REW2", "1000000")
	f.tc.MustExec(util.Admin, rew2, "Transfer", f.farmAddr, amt("100000"))
	f.tc.MustExec(util.Admin, f.farmAddr, "AddRewardToken", uint64(0), rew2, amt("5"))

	user := util.Users[0]
	f.fund(user, "1000")
	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("1000"))
	f.tc.Sleep(10)

	require.Equal(t, amt("50").String(), pending(f.tc, f.farmAddr, 0, user, rew2).String())

	f.tc.MustExec(util.Admin, f.farmAddr, "RemoveRewardToken", uint64(0), rew2)
	require.Equal(t, amt("50").String(), balanceOf(f.tc, rew2, user).String())

	// token no longer tracked by the pool
	_, err := f.tc.Exec(util.Admin, f.farmAddr, "PendingReward", uint64(0), user, rew2)
	require.Error(t, err)

	// the other token keeps accruing
	require.Equal(t, amt("100").String(), pending(f.tc, f.farmAddr, 0, user, f.rew).String())

	// global registry keeps the removed token
	count := f.tc.MustExec(util.Admin, f.farmAddr, "RewardTokenCount")[0].(uint32)
	require.Equal(t, uint32(2), count)
}

func TestMultiPoolAllocation(t *testing.T) {
	f := setupFarm(t, 1, 0, "100000")
	user := util.Users[0]
	f.fund(user, "1000")

	stk2 := f.tc.MakeToken("Stake2", "STK2", "1000000")
	vault2 := f.tc.DeployContract(&vault.VaultContract{}, &vault.VaultContractConstruction{
		Gov:            util.Admin,
		Farm:           f.farmAddr,
		Want:           stk2,
		FeeFundAddress: util.FeeFund,
	})
	f.tc.MustExec(util.Admin, f.farmAddr, "AddPool", uint32(300), stk2, vault2, uint16(0),
		[]common.Address{f.rew}, []*amount.Amount{amt("10")}, true)
	f.tc.MustExec(util.Admin, stk2, "Transfer", user, amt("1000"))
	f.tc.MustExec(user, stk2, "Approve", f.farmAddr, amt("1000000"))

	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(0), amt("1000"))
	f.tc.MustExec(user, f.farmAddr, "Deposit", uint64(1), amt("1000"))
	f.tc.Sleep(10)

	// total alloc 400: pool0 gets a quarter, pool1 three quarters
	require.Equal(t, amt("25").String(), pending(f.tc, f.farmAddr, 0, user, f.rew).String())
	require.Equal(t, amt("75").String(), pending(f.tc, f.farmAddr, 1, user, f.rew).String())

	// pool totals track the position sums
	b := util.Users[1]
	f.fund(b, "400")
	f.tc.MustExec(b, f.farmAddr, "Deposit", uint64(0), amt("400"))
	poolAmt := f.tc.MustExec(util.Admin, f.farmAddr, "PoolAmount", uint64(0))[0].(*amount.Amount)
	sum := stakeOf(f.tc, f.farmAddr, 0, user).Add(stakeOf(f.tc, f.farmAddr, 0, b))
	require.Equal(t, sum.String(), poolAmt.String())
}

func TestReentrancyExclusion(t *testing.T) {
	tc := util.NewTestContext()
	rew := tc.MakeToken("Reward", "REW", "1000000")
	stk := tc.MakeToken("Stake", "STK", "1000000")
	farmAddr := tc.DeployContract(&farm.FarmContract{}, &farm.FarmContractConstruction{
		Owner:   util.Admin,
		FeeFund: util.FeeFund,
	})
	attacker := tc.DeployContract(&ReenterVault{}, &ReenterVaultConstruction{
		Farm: farmAddr,
		Want: stk,
	})
	tc.MustExec(util.Admin, rew, "Transfer", farmAddr, amt("100000"))
	tc.Sleep(100)
	tc.MustExec(util.Admin, farmAddr, "SetStartTime", uint64(100))
	tc.MustExec(util.Admin, farmAddr, "AddPool", uint32(100), stk, attacker, uint16(0),
		[]common.Address{rew}, []*amount.Amount{amt("10")}, false)

	user := util.Users[0]
	tc.MustExec(util.Admin, stk, "Transfer", user, amt("1000"))
	tc.MustExec(user, stk, "Approve", farmAddr, amt("1000000"))

	// passive vault behaves
	tc.MustExec(user, farmAddr, "Deposit", uint64(0), amt("500"))

	// armed vault calls Harvest back into the farm mid-deposit
	tc.MustExec(util.Admin, attacker, "SetAttack", "Harvest")
	_, err := tc.Exec(user, farmAddr, "Deposit", uint64(0), amt("100"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reentrant")

	// the failed unit of work left nothing behind, latch included
	require.Equal(t, amt("500").String(),
		tc.MustExec(util.Admin, farmAddr, "UserInfo", uint64(0), user)[0].(*amount.Amount).String())
	require.Equal(t, amt("500").String(), balanceOf(tc, stk, user).String())

	_, err = tc.Exec(user, farmAddr, "Withdraw", uint64(0), amt("100"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reentrant")

	// disarmed again, the same calls pass
	tc.MustExec(util.Admin, attacker, "SetAttack", "")
	tc.MustExec(user, farmAddr, "Withdraw", uint64(0), amt("100"))
	require.Equal(t, amt("600").String(), balanceOf(tc, stk, user).String())
}
