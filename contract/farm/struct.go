package farm

import (
	"io"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/common/bin"
)

type FarmContractConstruction struct {
	Owner           common.Address
	FeeFund         common.Address
	WNative         common.Address
	BonusMultiplier uint32
}

func (s *FarmContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if _, err := sw.Address(w, s.Owner); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Address(w, s.FeeFund); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Address(w, s.WNative); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Uint32(w, s.BonusMultiplier); err != nil {
		return sw.Sum(), err
	}
	return sw.Sum(), nil
}

func (s *FarmContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if _, err := sr.Address(r, &s.Owner); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Address(r, &s.FeeFund); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Address(r, &s.WNative); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Uint32(r, &s.BonusMultiplier); err != nil {
		return sr.Sum(), err
	}
	return sr.Sum(), nil
}

// RewardInfo is one emission leg of a pool. Token identity plus the
// reward units emitted per second across the whole farm.
type RewardInfo struct {
	Token        common.Address
	RewardPerSec *amount.Amount
}

func (s *RewardInfo) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if _, err := sw.Address(w, s.Token); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Amount(w, s.RewardPerSec); err != nil {
		return sw.Sum(), err
	}
	return sw.Sum(), nil
}

func (s *RewardInfo) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if _, err := sr.Address(r, &s.Token); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Amount(r, &s.RewardPerSec); err != nil {
		return sr.Sum(), err
	}
	return sr.Sum(), nil
}

type PoolInfo struct {
	Want           common.Address
	Vault          common.Address
	AllocPoint     uint32
	WithdrawFee    uint16
	LastRewardTime uint64
	Rewards        []*RewardInfo
}

func (s *PoolInfo) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if _, err := sw.Address(w, s.Want); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Address(w, s.Vault); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Uint32(w, s.AllocPoint); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Uint16(w, s.WithdrawFee); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Uint64(w, s.LastRewardTime); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Uint32(w, uint32(len(s.Rewards))); err != nil {
		return sw.Sum(), err
	}
	for _, ri := range s.Rewards {
		if _, err := sw.WriterTo(w, ri); err != nil {
			return sw.Sum(), err
		}
	}
	return sw.Sum(), nil
}

func (s *PoolInfo) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if _, err := sr.Address(r, &s.Want); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Address(r, &s.Vault); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Uint32(r, &s.AllocPoint); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Uint16(r, &s.WithdrawFee); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Uint64(r, &s.LastRewardTime); err != nil {
		return sr.Sum(), err
	}
	count, _, err := sr.GetUint32(r)
	if err != nil {
		return sr.Sum(), err
	}
	s.Rewards = make([]*RewardInfo, 0, count)
	for i := uint32(0); i < count; i++ {
		ri := &RewardInfo{}
		if _, err := sr.ReaderFrom(r, ri); err != nil {
			return sr.Sum(), err
		}
		s.Rewards = append(s.Rewards, ri)
	}
	return sr.Sum(), nil
}

type UserInfo struct {
	Amount *amount.Amount
}

func (s *UserInfo) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if _, err := sw.Amount(w, s.Amount); err != nil {
		return sw.Sum(), err
	}
	return sw.Sum(), nil
}

func (s *UserInfo) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if _, err := sr.Amount(r, &s.Amount); err != nil {
		return sr.Sum(), err
	}
	return sr.Sum(), nil
}
