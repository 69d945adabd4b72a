package farm

import (
	"bytes"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/common/bin"
	"github.com/meadowlabs/meadow/core/types"
	"github.com/pkg/errors"
)

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *FarmContract) isOwner(cc types.ContractLoader, owner common.Address) bool {
	return cont.Owner(cc) == owner
}

func (cont *FarmContract) checkOwner(cc *types.ContractContext) error {
	if cc.From() != cont.master && !cont.isOwner(cc, cc.From()) {
		return ErrUnauthorized
	}
	return nil
}

// checkRunning gates every user-facing mutation. The latch byte lives
// in contract data so a revert of the unit of work clears it with the
// rest of the overlay.
func (cont *FarmContract) checkRunning(cc *types.ContractContext) error {
	if cont.IsPaused(cc) {
		return ErrPaused
	}
	start := cont.StartTime(cc)
	if start == 0 || cc.LastTimestamp() < start {
		return ErrNotStarted
	}
	return nil
}

func (cont *FarmContract) enter(cc *types.ContractContext) error {
	if len(cc.ContractData([]byte{tagEntered})) > 0 {
		return ErrReentrantCall
	}
	cc.SetContractData([]byte{tagEntered}, []byte{1})
	return nil
}

func (cont *FarmContract) exit(cc *types.ContractContext) {
	cc.SetContractData([]byte{tagEntered}, nil)
}

func (cont *FarmContract) _poolInfo(cc types.ContractLoader, _pid uint64) (*PoolInfo, error) {
	bs := cc.ContractData(makePoolInfoKey(_pid))
	if len(bs) == 0 {
		return nil, errors.Wrapf(ErrNotExistPool, "pid %v", _pid)
	}
	data := &PoolInfo{}
	if _, err := data.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return data, nil
}

func (cont *FarmContract) setPoolInfo(cc *types.ContractContext, _pid uint64, pool *PoolInfo) error {
	bf := new(bytes.Buffer)
	if _, err := pool.WriteTo(bf); err != nil {
		return err
	}
	cc.SetContractData(makePoolInfoKey(_pid), bf.Bytes())
	return nil
}

func (cont *FarmContract) setPoolAmount(cc *types.ContractContext, _pid uint64, amt *amount.Amount) {
	cc.SetContractData(makePoolAmountKey(_pid), amt.Bytes())
}

func (cont *FarmContract) _userInfo(cc types.ContractLoader, _pid uint64, _user common.Address) *UserInfo {
	bs := cc.ContractData(makeUserInfoKey(_pid, _user))
	if len(bs) == 0 {
		return &UserInfo{Amount: amount.NewAmount(0, 0)}
	}
	user := &UserInfo{}
	if _, err := user.ReadFrom(bytes.NewReader(bs)); err != nil {
		return &UserInfo{Amount: amount.NewAmount(0, 0)}
	}
	return user
}

func (cont *FarmContract) setUserInfo(cc *types.ContractContext, _pid uint64, _user common.Address, user *UserInfo) {
	bf := new(bytes.Buffer)
	user.WriteTo(bf)
	cc.SetContractData(makeUserInfoKey(_pid, _user), bf.Bytes())
}

func (cont *FarmContract) setUserDebt(cc *types.ContractContext, _pid uint64, _user common.Address, token common.Address, debt *amount.Amount) {
	cc.SetContractData(makeUserDebtKey(_pid, _user, token), debt.Bytes())
}

func (cont *FarmContract) setAccPerShare(cc *types.ContractContext, _pid uint64, token common.Address, acc *amount.Amount) {
	cc.SetContractData(makeAccPerShareKey(_pid, token), acc.Bytes())
}

func (cont *FarmContract) setTotalAllocPoint(cc *types.ContractContext, totalAllocPoint uint32) {
	cc.SetContractData([]byte{tagTotalAllocPoint}, bin.Uint32Bytes(totalAllocPoint))
}

func (cont *FarmContract) addPoolLength(cc *types.ContractContext) uint64 {
	pl := cont.PoolLength(cc)
	pl++
	cc.SetContractData([]byte{tagPoolLength}, bin.Uint64Bytes(pl))
	return pl
}

func (cont *FarmContract) participantCount(cc types.ContractLoader, _pid uint64) uint32 {
	bs := cc.ContractData(makeParticipantCountKey(_pid))
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

func (cont *FarmContract) participantByIndex(cc types.ContractLoader, _pid uint64, index uint32) common.Address {
	bs := cc.ContractData(makeParticipantIndexKey(_pid, index))
	return bin.Address(bs)
}

// addParticipant appends the user to the pool's participant index once.
// Members are never removed, zero positions stay on the books.
func (cont *FarmContract) addParticipant(cc *types.ContractContext, _pid uint64, _user common.Address) {
	if len(cc.ContractData(makeParticipantFlagKey(_pid, _user))) > 0 {
		return
	}
	count := cont.participantCount(cc, _pid)
	cc.SetContractData(makeParticipantIndexKey(_pid, count), _user[:])
	cc.SetContractData(makeParticipantCountKey(_pid), bin.Uint32Bytes(count+1))
	cc.SetContractData(makeParticipantFlagKey(_pid, _user), []byte{1})
}

// registerRewardToken adds the token to the global append-only set.
// A token removed from a pool keeps its place and lifetime-paid total.
func (cont *FarmContract) registerRewardToken(cc *types.ContractContext, token common.Address) {
	if len(cc.ContractData(makeRewardTokenFlagKey(token))) > 0 {
		return
	}
	count := cont.RewardTokenCount(cc)
	cc.SetContractData(makeRewardTokenIndexKey(count), token[:])
	cc.SetContractData([]byte{tagRewardTokenCount}, bin.Uint32Bytes(count+1))
	cc.SetContractData(makeRewardTokenFlagKey(token), []byte{1})
}

func (cont *FarmContract) addTotalPaid(cc *types.ContractContext, token common.Address, amt *amount.Amount) {
	total := cont.TotalPaid(cc, token)
	cc.SetContractData(makeTotalPaidKey(token), total.Add(amt).Bytes())
}

// settle pays out every reward token of the pool against the user's
// pre-mutation stake and advances the debt baselines. Must run after
// UpdatePool and before any position change.
func (cont *FarmContract) settle(cc *types.ContractContext, _pid uint64, pool *PoolInfo, _user common.Address) error {
	user := cont._userInfo(cc, _pid, _user)
	for _, ri := range pool.Rewards {
		if err := cont.settleToken(cc, _pid, pool, _user, user, ri.Token); err != nil {
			return err
		}
	}
	return nil
}

func (cont *FarmContract) settleToken(cc *types.ContractContext, _pid uint64, pool *PoolInfo, _user common.Address, user *UserInfo, token common.Address) error {
	acc := cont.AccRewardPerShare(cc, _pid, token)
	debt := cont.RewardDebt(cc, _pid, _user, token)
	pending := user.Amount.Mul(acc).Sub(debt)
	if !pending.IsPlus() {
		return nil
	}
	cont.setUserDebt(cc, _pid, _user, token, user.Amount.Mul(acc))
	return cont.payReward(cc, _pid, pool, _user, token, pending)
}

// payReward transfers the entitlement capped at the farm's on-hand
// balance of the token. A shortfall pays what is available and emits
// RewardShortfall instead of failing; the fee leg of the capped gross
// goes to the fee fund.
func (cont *FarmContract) payReward(cc *types.ContractContext, _pid uint64, pool *PoolInfo, to common.Address, token common.Address, pending *amount.Amount) error {
	balance, err := cont.callContAmountValue(cc, token, "BalanceOf", cont.addr)
	if err != nil {
		return err
	}
	pay := pending
	if balance.Less(pending) {
		pay = balance
		cc.EmitEvent("RewardShortfall", _pid, to, token, pending.Sub(balance))
	}
	if !pay.IsPlus() {
		return nil
	}
	cont.addTotalPaid(cc, token, pay)

	fee := pay.MulC(int64(pool.WithdrawFee)).DivC(1000)
	if fee.IsPlus() {
		if _, err := cc.Exec(cc, token, "Transfer", []interface{}{cont.FeeFund(cc), fee}); err != nil {
			return err
		}
	}
	net := pay.Sub(fee)
	if net.IsPlus() {
		if _, err := cc.Exec(cc, token, "Transfer", []interface{}{to, net}); err != nil {
			return err
		}
	}
	return nil
}

// rebaseDebts zeroes the user's unrealized reward at the current
// accumulators for the given stake.
func (cont *FarmContract) rebaseDebts(cc *types.ContractContext, _pid uint64, pool *PoolInfo, _user common.Address, stake *amount.Amount) {
	for _, ri := range pool.Rewards {
		acc := cont.AccRewardPerShare(cc, _pid, ri.Token)
		cont.setUserDebt(cc, _pid, _user, ri.Token, stake.Mul(acc))
	}
}

func (cont *FarmContract) checkRewardTokens(pool *PoolInfo) error {
	for _, ri := range pool.Rewards {
		if ri.Token == common.ZeroAddr {
			return errors.Wrap(ErrInvalidArgument, "zero reward token")
		}
	}
	return nil
}

func (cont *FarmContract) safeIncreaseAllowance(cc *types.ContractContext, token common.Address, spender common.Address, inc *amount.Amount) error {
	allowance, err := cont.callContAmountValue(cc, token, "Allowance", cont.addr, spender)
	if err != nil {
		return err
	}
	allowance = allowance.Add(inc)
	if _, err := cc.Exec(cc, token, "Approve", []interface{}{spender, allowance}); err != nil {
		return err
	}
	return nil
}

func (cont *FarmContract) callContAmountValue(cc *types.ContractContext, conAddr common.Address, method string, params ...interface{}) (*amount.Amount, error) {
	if ins, err := cc.Exec(cc, conAddr, method, params); err != nil {
		return nil, err
	} else if len(ins) == 0 {
		return nil, errors.Errorf("invalid %v %v", conAddr.String(), method)
	} else if val, ok := ins[0].(*amount.Amount); !ok {
		return nil, errors.Errorf("invalid %v %v amount", conAddr.String(), method)
	} else {
		return val, nil
	}
}
