package farm

import (
	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/core/types"
)

func (cont *FarmContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FarmContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) MassUpdatePools(cc *types.ContractContext) error {
	return f.cont.MassUpdatePools(cc)
}

func (f *front) UpdatePool(cc *types.ContractContext, _pid uint64) error {
	return f.cont.UpdatePool(cc, _pid)
}

func (f *front) Deposit(cc *types.ContractContext, _pid uint64, _wantAmt *amount.Amount) error {
	return f.cont.Deposit(cc, _pid, _wantAmt)
}

func (f *front) Withdraw(cc *types.ContractContext, _pid uint64, _wantAmt *amount.Amount) error {
	return f.cont.Withdraw(cc, _pid, _wantAmt)
}

func (f *front) WithdrawAll(cc *types.ContractContext, _pid uint64) error {
	return f.cont.WithdrawAll(cc, _pid)
}

func (f *front) Harvest(cc *types.ContractContext, _pid uint64) error {
	return f.cont.Harvest(cc, _pid)
}

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

func (f *front) SetOwner(cc *types.ContractContext, To common.Address) error {
	return f.cont.SetOwner(cc, To)
}

func (f *front) SetFeeFund(cc *types.ContractContext, To common.Address) error {
	return f.cont.SetFeeFund(cc, To)
}

func (f *front) AddPool(cc *types.ContractContext, _allocPoint uint32, _want common.Address, _vault common.Address, _withdrawFee uint16, _rewardTokens []common.Address, _rewardRates []*amount.Amount, _withUpdate bool) error {
	return f.cont.AddPool(cc, _allocPoint, _want, _vault, _withdrawFee, _rewardTokens, _rewardRates, _withUpdate)
}

func (f *front) Set(cc *types.ContractContext, _pid uint64, _allocPoint uint32, _withUpdate bool) error {
	return f.cont.Set(cc, _pid, _allocPoint, _withUpdate)
}

func (f *front) SetWithdrawFee(cc *types.ContractContext, _pid uint64, _withdrawFee uint16) error {
	return f.cont.SetWithdrawFee(cc, _pid, _withdrawFee)
}

func (f *front) AddRewardToken(cc *types.ContractContext, _pid uint64, _token common.Address, _rewardPerSec *amount.Amount) error {
	return f.cont.AddRewardToken(cc, _pid, _token, _rewardPerSec)
}

func (f *front) RemoveRewardToken(cc *types.ContractContext, _pid uint64, _token common.Address) error {
	return f.cont.RemoveRewardToken(cc, _pid, _token)
}

func (f *front) SetRewardPerSec(cc *types.ContractContext, _pid uint64, _token common.Address, _rewardPerSec *amount.Amount) error {
	return f.cont.SetRewardPerSec(cc, _pid, _token, _rewardPerSec)
}

func (f *front) SetStartTime(cc *types.ContractContext, _startTime uint64) error {
	return f.cont.SetStartTime(cc, _startTime)
}

func (f *front) SetBonusEndTime(cc *types.ContractContext, _bonusEndTime uint64) error {
	return f.cont.SetBonusEndTime(cc, _bonusEndTime)
}

func (f *front) Pause(cc *types.ContractContext) error {
	return f.cont.Pause(cc)
}

func (f *front) Unpause(cc *types.ContractContext) error {
	return f.cont.Unpause(cc)
}

func (f *front) Participants(cc *types.ContractContext, _pid uint64) ([]common.Address, error) {
	return f.cont.Participants(cc, _pid)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) FeeFund(cc types.ContractLoader) common.Address {
	return f.cont.FeeFund(cc)
}

func (f *front) WNative(cc types.ContractLoader) common.Address {
	return f.cont.WNative(cc)
}

func (f *front) BonusMultiplier(cc types.ContractLoader) uint32 {
	return f.cont.BonusMultiplier(cc)
}

func (f *front) StartTime(cc types.ContractLoader) uint64 {
	return f.cont.StartTime(cc)
}

func (f *front) BonusEndTime(cc types.ContractLoader) uint64 {
	return f.cont.BonusEndTime(cc)
}

func (f *front) IsPaused(cc types.ContractLoader) bool {
	return f.cont.IsPaused(cc)
}

func (f *front) TotalAllocPoint(cc types.ContractLoader) uint32 {
	return f.cont.TotalAllocPoint(cc)
}

func (f *front) PoolLength(cc types.ContractLoader) uint64 {
	return f.cont.PoolLength(cc)
}

func (f *front) PoolInfo(cc types.ContractLoader, _pid uint64) (*PoolInfo, error) {
	return f.cont.PoolInfo(cc, _pid)
}

func (f *front) PoolAmount(cc types.ContractLoader, _pid uint64) *amount.Amount {
	return f.cont.PoolAmount(cc, _pid)
}

func (f *front) RewardTokens(cc types.ContractLoader, _pid uint64) ([]common.Address, []*amount.Amount, error) {
	return f.cont.RewardTokens(cc, _pid)
}

func (f *front) AccRewardPerShare(cc types.ContractLoader, _pid uint64, _token common.Address) *amount.Amount {
	return f.cont.AccRewardPerShare(cc, _pid, _token)
}

func (f *front) UserInfo(cc types.ContractLoader, _pid uint64, _user common.Address) *amount.Amount {
	return f.cont.UserInfo(cc, _pid, _user)
}

func (f *front) RewardDebt(cc types.ContractLoader, _pid uint64, _user common.Address, _token common.Address) *amount.Amount {
	return f.cont.RewardDebt(cc, _pid, _user, _token)
}

func (f *front) TotalPaid(cc types.ContractLoader, _token common.Address) *amount.Amount {
	return f.cont.TotalPaid(cc, _token)
}

func (f *front) RewardTokenCount(cc types.ContractLoader) uint32 {
	return f.cont.RewardTokenCount(cc)
}

func (f *front) RewardTokenByIndex(cc types.ContractLoader, _index uint32) common.Address {
	return f.cont.RewardTokenByIndex(cc, _index)
}

func (f *front) GetMultiplier(cc types.ContractLoader, _from uint64, _to uint64) uint64 {
	return f.cont.GetMultiplier(cc, _from, _to)
}

func (f *front) PendingReward(cc types.ContractLoader, _pid uint64, _user common.Address, _token common.Address) (*amount.Amount, error) {
	return f.cont.PendingReward(cc, _pid, _user, _token)
}

func (f *front) PendingRewards(cc types.ContractLoader, _pid uint64, _user common.Address) ([]common.Address, []*amount.Amount, error) {
	return f.cont.PendingRewards(cc, _pid, _user)
}

func (f *front) PoolTVL(cc *types.ContractContext, _pid uint64) (*amount.Amount, error) {
	return f.cont.PoolTVL(cc, _pid)
}

func (f *front) TotalTVL(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.TotalTVL(cc)
}
