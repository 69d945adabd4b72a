package farm

import (
	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/common/bin"
	"github.com/meadowlabs/meadow/core/types"
	"github.com/pkg/errors"
)

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

func (cont *FarmContract) SetOwner(cc *types.ContractContext, To common.Address) error {
	if cc.From() != cont.master {
		return errors.New("ownable: caller is not the master")
	}
	cc.SetContractData([]byte{tagOwner}, To[:])
	return nil
}

func (cont *FarmContract) SetFeeFund(cc *types.ContractContext, To common.Address) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagFeeFund}, To[:])
	return nil
}

// AddPool registers a staking cohort for one want asset. A second pool
// for the same asset is rejected.
func (cont *FarmContract) AddPool(cc *types.ContractContext, _allocPoint uint32, _want common.Address, _vault common.Address, _withdrawFee uint16, _rewardTokens []common.Address, _rewardRates []*amount.Amount, _withUpdate bool) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if _want == common.ZeroAddr || _vault == common.ZeroAddr {
		return errors.Wrap(ErrInvalidArgument, "zero address")
	}
	if _withdrawFee > 1000 {
		return errors.Wrap(ErrInvalidArgument, "withdraw fee over 1000")
	}
	if len(_rewardTokens) != len(_rewardRates) {
		return errors.Wrap(ErrInvalidArgument, "reward token/rate length mismatch")
	}
	if len(cc.ContractData(makePoolOfWantKey(_want))) > 0 {
		return ErrExistPoolOfWant
	}
	rewards := make([]*RewardInfo, 0, len(_rewardTokens))
	for i, token := range _rewardTokens {
		if token == common.ZeroAddr {
			return errors.Wrap(ErrInvalidArgument, "zero reward token")
		}
		if _rewardRates[i] == nil || !_rewardRates[i].IsPlus() {
			return errors.Wrap(ErrInvalidArgument, "zero reward rate")
		}
		rewards = append(rewards, &RewardInfo{Token: token, RewardPerSec: _rewardRates[i]})
	}

	if _withUpdate {
		if err := cont.MassUpdatePools(cc); err != nil {
			return err
		}
	}

	lastRewardTime := cc.LastTimestamp()
	if start := cont.StartTime(cc); start > lastRewardTime {
		lastRewardTime = start
	}

	cont.setTotalAllocPoint(cc, cont.TotalAllocPoint(cc)+_allocPoint)
	newPid := cont.PoolLength(cc)
	if err := cont.setPoolInfo(cc, newPid, &PoolInfo{
		Want:           _want,
		Vault:          _vault,
		AllocPoint:     _allocPoint,
		WithdrawFee:    _withdrawFee,
		LastRewardTime: lastRewardTime,
		Rewards:        rewards,
	}); err != nil {
		return err
	}
	cont.setPoolAmount(cc, newPid, amount.NewAmount(0, 0))
	for _, ri := range rewards {
		cont.setAccPerShare(cc, newPid, ri.Token, amount.NewAmount(0, 0))
		cont.registerRewardToken(cc, ri.Token)
	}
	cc.SetContractData(makePoolOfWantKey(_want), bin.Uint64Bytes(newPid))
	cont.addPoolLength(cc)
	return nil
}

// Set updates the pool's allocation point. Mass-accruing first keeps
// reward attribution before the change untouched.
func (cont *FarmContract) Set(cc *types.ContractContext, _pid uint64, _allocPoint uint32, _withUpdate bool) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if _withUpdate {
		if err := cont.MassUpdatePools(cc); err != nil {
			return err
		}
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	cont.setTotalAllocPoint(cc, cont.TotalAllocPoint(cc)-pool.AllocPoint+_allocPoint)
	pool.AllocPoint = _allocPoint
	return cont.setPoolInfo(cc, _pid, pool)
}

func (cont *FarmContract) SetWithdrawFee(cc *types.ContractContext, _pid uint64, _withdrawFee uint16) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if _withdrawFee > 1000 {
		return errors.Wrap(ErrInvalidArgument, "withdraw fee over 1000")
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	pool.WithdrawFee = _withdrawFee
	return cont.setPoolInfo(cc, _pid, pool)
}

func (cont *FarmContract) AddRewardToken(cc *types.ContractContext, _pid uint64, _token common.Address, _rewardPerSec *amount.Amount) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if _token == common.ZeroAddr {
		return errors.Wrap(ErrInvalidArgument, "zero reward token")
	}
	if _rewardPerSec == nil || !_rewardPerSec.IsPlus() {
		return errors.Wrap(ErrInvalidArgument, "zero reward rate")
	}
	if err := cont.UpdatePool(cc, _pid); err != nil {
		return err
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	for _, ri := range pool.Rewards {
		if ri.Token == _token {
			return ErrExistRewardToken
		}
	}
	pool.Rewards = append(pool.Rewards, &RewardInfo{Token: _token, RewardPerSec: _rewardPerSec})
	cont.setAccPerShare(cc, _pid, _token, amount.NewAmount(0, 0))
	cont.registerRewardToken(cc, _token)
	return cont.setPoolInfo(cc, _pid, pool)
}

// RemoveRewardToken drains every participant's outstanding entitlement
// of the token, then removes the descriptor by swapping with the last
// entry. The token keeps its place in the global registry.
func (cont *FarmContract) RemoveRewardToken(cc *types.ContractContext, _pid uint64, _token common.Address) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if err := cont.enter(cc); err != nil {
		return err
	}
	if err := cont.removeRewardToken(cc, _pid, _token); err != nil {
		return err
	}
	cont.exit(cc)
	return nil
}

func (cont *FarmContract) removeRewardToken(cc *types.ContractContext, _pid uint64, _token common.Address) error {
	if err := cont.UpdatePool(cc, _pid); err != nil {
		return err
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	index := -1
	for i, ri := range pool.Rewards {
		if ri.Token == _token {
			index = i
			break
		}
	}
	if index < 0 {
		return ErrNotExistRewardToken
	}

	count := cont.participantCount(cc, _pid)
	for i := uint32(0); i < count; i++ {
		user := cont.participantByIndex(cc, _pid, i)
		info := cont._userInfo(cc, _pid, user)
		if info.Amount.IsPlus() {
			if err := cont.settleToken(cc, _pid, pool, user, info, _token); err != nil {
				return err
			}
		}
		cc.SetContractData(makeUserDebtKey(_pid, user, _token), nil)
	}

	pool.Rewards[index] = pool.Rewards[len(pool.Rewards)-1]
	pool.Rewards = pool.Rewards[:len(pool.Rewards)-1]
	cc.SetContractData(makeAccPerShareKey(_pid, _token), nil)
	return cont.setPoolInfo(cc, _pid, pool)
}

// SetRewardPerSec mass-accrues all pools first so the rate change does
// not retroactively shift rewards already owed.
func (cont *FarmContract) SetRewardPerSec(cc *types.ContractContext, _pid uint64, _token common.Address, _rewardPerSec *amount.Amount) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if _rewardPerSec == nil || !_rewardPerSec.IsPlus() {
		return errors.Wrap(ErrInvalidArgument, "zero reward rate")
	}
	if err := cont.MassUpdatePools(cc); err != nil {
		return err
	}
	pool, err := cont._poolInfo(cc, _pid)
	if err != nil {
		return err
	}
	for _, ri := range pool.Rewards {
		if ri.Token == _token {
			ri.RewardPerSec = _rewardPerSec
			return cont.setPoolInfo(cc, _pid, pool)
		}
	}
	return ErrNotExistRewardToken
}

func (cont *FarmContract) SetStartTime(cc *types.ContractContext, _startTime uint64) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	if cont.StartTime(cc) != 0 {
		return ErrAlreadyStarted
	}
	if _startTime < cc.LastTimestamp() {
		return errors.Wrap(ErrInvalidArgument, "start time in the past")
	}
	cc.SetContractData([]byte{tagStartTime}, bin.Uint64Bytes(_startTime))
	return nil
}

func (cont *FarmContract) SetBonusEndTime(cc *types.ContractContext, _bonusEndTime uint64) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	start := cont.StartTime(cc)
	if start == 0 {
		return ErrNotStarted
	}
	if _bonusEndTime <= start {
		return errors.Wrap(ErrInvalidArgument, "bonus end not after start")
	}
	cc.SetContractData([]byte{tagBonusEndTime}, bin.Uint64Bytes(_bonusEndTime))
	return nil
}

func (cont *FarmContract) Pause(cc *types.ContractContext) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagPaused}, []byte{1})
	return nil
}

func (cont *FarmContract) Unpause(cc *types.ContractContext) error {
	if err := cont.checkOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagPaused}, nil)
	return nil
}

// Participants lists every address that ever deposited into the pool.
func (cont *FarmContract) Participants(cc *types.ContractContext, _pid uint64) ([]common.Address, error) {
	if err := cont.checkOwner(cc); err != nil {
		return nil, err
	}
	count := cont.participantCount(cc, _pid)
	users := make([]common.Address, 0, count)
	for i := uint32(0); i < count; i++ {
		users = append(users, cont.participantByIndex(cc, _pid, i))
	}
	return users, nil
}
