package farm

import (
	"bytes"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/common/bin"
	"github.com/meadowlabs/meadow/core/types"
)

type FarmContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FarmContract) Address() common.Address {
	return cont.addr
}

func (cont *FarmContract) Master() common.Address {
	return cont.master
}

func (cont *FarmContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *FarmContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FarmContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Owner == common.ZeroAddr {
		return ErrInvalidArgument
	}

	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagFeeFund}, data.FeeFund[:])
	cc.SetContractData([]byte{tagWNative}, data.WNative[:])
	cc.SetContractData([]byte{tagBonusMultiplier}, bin.Uint32Bytes(data.BonusMultiplier))
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *FarmContract) Owner(cc types.ContractLoader) common.Address {
	bs := cc.ContractData([]byte{tagOwner})
	return bin.Address(bs)
}

func (cont *FarmContract) FeeFund(cc types.ContractLoader) common.Address {
	bs := cc.ContractData([]byte{tagFeeFund})
	return bin.Address(bs)
}

func (cont *FarmContract) WNative(cc types.ContractLoader) common.Address {
	bs := cc.ContractData([]byte{tagWNative})
	return bin.Address(bs)
}

// BonusMultiplier never reads as zero. An unset or zero factor means no
// bonus regime, which is the same as a factor of one.
func (cont *FarmContract) BonusMultiplier(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagBonusMultiplier})
	if len(bs) == 0 {
		return 1
	}
	v := bin.Uint32(bs)
	if v == 0 {
		return 1
	}
	return v
}

func (cont *FarmContract) StartTime(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagStartTime})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint64(bs)
}

func (cont *FarmContract) BonusEndTime(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagBonusEndTime})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint64(bs)
}

func (cont *FarmContract) IsPaused(cc types.ContractLoader) bool {
	bs := cc.ContractData([]byte{tagPaused})
	return len(bs) > 0
}

func (cont *FarmContract) TotalAllocPoint(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagTotalAllocPoint})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

func (cont *FarmContract) PoolLength(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagPoolLength})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint64(bs)
}

func (cont *FarmContract) PoolInfo(cc types.ContractLoader, _pid uint64) (*PoolInfo, error) {
	return cont._poolInfo(cc, _pid)
}

func (cont *FarmContract) PoolAmount(cc types.ContractLoader, _pid uint64) *amount.Amount {
	bs := cc.ContractData(makePoolAmountKey(_pid))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) RewardTokens(cc types.ContractLoader, _pid uint64) ([]common.Address, []*amount.Amount, error) {
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return nil, nil, err
	}
	tokens := make([]common.Address, 0, len(pool.Rewards))
	rates := make([]*amount.Amount, 0, len(pool.Rewards))
	for _, ri := range pool.Rewards {
		tokens = append(tokens, ri.Token)
		rates = append(rates, ri.RewardPerSec)
	}
	return tokens, rates, nil
}

func (cont *FarmContract) AccRewardPerShare(cc types.ContractLoader, _pid uint64, _token common.Address) *amount.Amount {
	bs := cc.ContractData(makeAccPerShareKey(_pid, _token))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) UserInfo(cc types.ContractLoader, _pid uint64, _user common.Address) *amount.Amount {
	user := cont._userInfo(cc, _pid, _user)
	return user.Amount
}

func (cont *FarmContract) RewardDebt(cc types.ContractLoader, _pid uint64, _user common.Address, _token common.Address) *amount.Amount {
	bs := cc.ContractData(makeUserDebtKey(_pid, _user, _token))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) TotalPaid(cc types.ContractLoader, _token common.Address) *amount.Amount {
	bs := cc.ContractData(makeTotalPaidKey(_token))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) RewardTokenCount(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagRewardTokenCount})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

func (cont *FarmContract) RewardTokenByIndex(cc types.ContractLoader, _index uint32) common.Address {
	bs := cc.ContractData(makeRewardTokenIndexKey(_index))
	return bin.Address(bs)
}

// GetMultiplier maps the interval [_from, _to) to an accrual weight.
// Inside the bonus window seconds count BonusMultiplier times, after it
// they count once, and an interval straddling the boundary is split and
// summed. _to before _from weighs nothing.
func (cont *FarmContract) GetMultiplier(cc types.ContractLoader, _from uint64, _to uint64) uint64 {
	if _to <= _from {
		return 0
	}
	bonusEnd := cont.BonusEndTime(cc)
	factor := uint64(cont.BonusMultiplier(cc))
	if _to <= bonusEnd {
		return (_to - _from) * factor
	}
	if _from >= bonusEnd {
		return _to - _from
	}
	return (bonusEnd-_from)*factor + (_to - bonusEnd)
}

// PendingReward projects the pool accumulator to now without mutating
// state and returns the user's outstanding reward for the token, net of
// the pool's withdraw fee.
func (cont *FarmContract) PendingReward(cc types.ContractLoader, _pid uint64, _user common.Address, _token common.Address) (*amount.Amount, error) {
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return nil, err
	}
	for _, ri := range pool.Rewards {
		if ri.Token == _token {
			gross := cont.pendingOf(cc, pool, _pid, _user, ri)
			fee := gross.MulC(int64(pool.WithdrawFee)).DivC(1000)
			return gross.Sub(fee), nil
		}
	}
	return nil, ErrNotExistRewardToken
}

// PendingRewards returns the per-token pending vector of the user in
// the pool's reward token order.
func (cont *FarmContract) PendingRewards(cc types.ContractLoader, _pid uint64, _user common.Address) ([]common.Address, []*amount.Amount, error) {
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return nil, nil, err
	}
	tokens := make([]common.Address, 0, len(pool.Rewards))
	amts := make([]*amount.Amount, 0, len(pool.Rewards))
	for _, ri := range pool.Rewards {
		gross := cont.pendingOf(cc, pool, _pid, _user, ri)
		fee := gross.MulC(int64(pool.WithdrawFee)).DivC(1000)
		tokens = append(tokens, ri.Token)
		amts = append(amts, gross.Sub(fee))
	}
	return tokens, amts, nil
}

func (cont *FarmContract) pendingOf(cc types.ContractLoader, pool *PoolInfo, _pid uint64, _user common.Address, ri *RewardInfo) *amount.Amount {
	acc := cont.AccRewardPerShare(cc, _pid, ri.Token)
	staked := cont.PoolAmount(cc, _pid)
	totalAllocPoint := cont.TotalAllocPoint(cc)

	now := cc.LastTimestamp()
	from := pool.LastRewardTime
	if start := cont.StartTime(cc); start > from {
		from = start
	}
	if now > from && staked.IsPlus() && totalAllocPoint > 0 {
		multiplier := cont.GetMultiplier(cc, from, now)
		delta := ri.RewardPerSec.MulC(int64(multiplier)).MulC(int64(pool.AllocPoint)).DivC(int64(totalAllocPoint))
		acc = acc.Add(delta.Div(staked))
	}

	user := cont._userInfo(cc, _pid, _user)
	debt := cont.RewardDebt(cc, _pid, _user, ri.Token)
	pending := user.Amount.Mul(acc).Sub(debt)
	if pending.IsMinus() {
		return amount.NewAmount(0, 0)
	}
	return pending
}

// PoolTVL asks the pool's vault for the custodied value.
func (cont *FarmContract) PoolTVL(cc *types.ContractContext, _pid uint64) (*amount.Amount, error) {
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return nil, err
	}
	return cont.callContAmountValue(cc, pool.Vault, "Balance")
}

func (cont *FarmContract) TotalTVL(cc *types.ContractContext) (*amount.Amount, error) {
	sum := amount.NewAmount(0, 0)
	length := cont.PoolLength(cc)
	for pid := uint64(0); pid < length; pid++ {
		tvl, err := cont.PoolTVL(cc, pid)
		if err != nil {
			return nil, err
		}
		sum = sum.Add(tvl)
	}
	return sum, nil
}
