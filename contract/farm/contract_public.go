package farm

import (
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/core/types"
)

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Update reward variables for all pools. Be careful of gas spending!
func (cont *FarmContract) MassUpdatePools(cc *types.ContractContext) error {
	length := cont.PoolLength(cc)
	for pid := uint64(0); pid < length; pid++ {
		if err := cont.UpdatePool(cc, pid); err != nil {
			return err
		}
	}
	return nil
}

// Update reward variables of the given pool to be up-to-date.
func (cont *FarmContract) UpdatePool(cc *types.ContractContext, _pid uint64) error {
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	now := cc.LastTimestamp()
	if now <= pool.LastRewardTime {
		return nil
	}
	start := cont.StartTime(cc)
	if start == 0 || now <= start {
		pool.LastRewardTime = now
		return cont.setPoolInfo(cc, _pid, pool)
	}
	from := pool.LastRewardTime
	if start > from {
		from = start
	}

	staked := cont.PoolAmount(cc, _pid)
	totalAllocPoint := cont.TotalAllocPoint(cc)
	if !staked.IsPlus() || totalAllocPoint == 0 {
		// unstaked time earns nothing and is not credited later
		pool.LastRewardTime = now
		return cont.setPoolInfo(cc, _pid, pool)
	}

	multiplier := cont.GetMultiplier(cc, from, now)
	for _, ri := range pool.Rewards {
		delta := ri.RewardPerSec.MulC(int64(multiplier)).MulC(int64(pool.AllocPoint)).DivC(int64(totalAllocPoint))
		acc := cont.AccRewardPerShare(cc, _pid, ri.Token).Add(delta.Div(staked))
		cont.setAccPerShare(cc, _pid, ri.Token, acc)
	}
	pool.LastRewardTime = now
	return cont.setPoolInfo(cc, _pid, pool)
}

// Deposit pulls want tokens from the caller into the pool's vault and
// grows the position by the amount the vault actually credited.
func (cont *FarmContract) Deposit(cc *types.ContractContext, _pid uint64, _wantAmt *amount.Amount) error {
	if err := cont.enter(cc); err != nil {
		return err
	}
	if err := cont.deposit(cc, _pid, _wantAmt); err != nil {
		return err
	}
	cont.exit(cc)
	return nil
}

func (cont *FarmContract) deposit(cc *types.ContractContext, _pid uint64, _wantAmt *amount.Amount) error {
	if err := cont.checkRunning(cc); err != nil {
		return err
	}
	if _wantAmt == nil || _wantAmt.IsMinus() {
		return ErrInvalidArgument
	}
	if err := cont.UpdatePool(cc, _pid); err != nil {
		return err
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	if err := cont.checkRewardTokens(pool); err != nil {
		return err
	}

	user := cont._userInfo(cc, _pid, cc.From())
	if user.Amount.IsPlus() {
		if err := cont.settle(cc, _pid, pool, cc.From()); err != nil {
			return err
		}
	}

	credited := amount.NewAmount(0, 0)
	if _wantAmt.IsPlus() {
		if _, err := cc.Exec(cc, pool.Want, "TransferFrom", []interface{}{cc.From(), cont.addr, _wantAmt}); err != nil {
			return err
		}
		if err := cont.safeIncreaseAllowance(cc, pool.Want, pool.Vault, _wantAmt); err != nil {
			return err
		}
		credited, err = cont.callContAmountValue(cc, pool.Vault, "Deposit", cc.From(), _wantAmt)
		if err != nil {
			return err
		}
		user.Amount = user.Amount.Add(credited)
		cont.setPoolAmount(cc, _pid, cont.PoolAmount(cc, _pid).Add(credited))
	}

	cont.rebaseDebts(cc, _pid, pool, cc.From(), user.Amount)
	cont.setUserInfo(cc, _pid, cc.From(), user)
	cont.addParticipant(cc, _pid, cc.From())
	cc.EmitEvent("Deposit", _pid, cc.From(), credited)
	return nil
}

// Withdraw releases principal from the vault net of the pool's withdraw
// fee. The position shrinks by the requested amount.
func (cont *FarmContract) Withdraw(cc *types.ContractContext, _pid uint64, _wantAmt *amount.Amount) error {
	if err := cont.enter(cc); err != nil {
		return err
	}
	if err := cont.withdraw(cc, _pid, _wantAmt); err != nil {
		return err
	}
	cont.exit(cc)
	return nil
}

func (cont *FarmContract) withdraw(cc *types.ContractContext, _pid uint64, _wantAmt *amount.Amount) error {
	if err := cont.checkRunning(cc); err != nil {
		return err
	}
	if _wantAmt == nil || _wantAmt.IsMinus() {
		return ErrInvalidArgument
	}
	if err := cont.UpdatePool(cc, _pid); err != nil {
		return err
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	if err := cont.checkRewardTokens(pool); err != nil {
		return err
	}

	user := cont._userInfo(cc, _pid, cc.From())
	if user.Amount.Less(_wantAmt) {
		return ErrInsufficientBalance
	}

	if err := cont.settle(cc, _pid, pool, cc.From()); err != nil {
		return err
	}

	user.Amount = user.Amount.Sub(_wantAmt)
	cont.setPoolAmount(cc, _pid, cont.PoolAmount(cc, _pid).Sub(_wantAmt))
	cont.rebaseDebts(cc, _pid, pool, cc.From(), user.Amount)
	cont.setUserInfo(cc, _pid, cc.From(), user)

	if _wantAmt.IsPlus() {
		if _, err := cont.callContAmountValue(cc, pool.Vault, "Withdraw", cc.From(), _wantAmt, pool.WithdrawFee); err != nil {
			return err
		}
	}
	cc.EmitEvent("Withdraw", _pid, cc.From(), _wantAmt)
	return nil
}

func (cont *FarmContract) WithdrawAll(cc *types.ContractContext, _pid uint64) error {
	user := cont._userInfo(cc, _pid, cc.From())
	return cont.Withdraw(cc, _pid, user.Amount)
}

// Harvest settles outstanding rewards without touching the position.
// It accrues the pool first and runs under the same latch as deposit
// and withdraw.
func (cont *FarmContract) Harvest(cc *types.ContractContext, _pid uint64) error {
	if err := cont.enter(cc); err != nil {
		return err
	}
	if err := cont.harvest(cc, _pid); err != nil {
		return err
	}
	cont.exit(cc)
	return nil
}

func (cont *FarmContract) harvest(cc *types.ContractContext, _pid uint64) error {
	if err := cont.checkRunning(cc); err != nil {
		return err
	}
	if err := cont.UpdatePool(cc, _pid); err != nil {
		return err
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	return cont.settle(cc, _pid, pool, cc.From())
}
