package farm

import (
	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/bin"
)

var (
	tagOwner           = byte(0x01)
	tagFeeFund         = byte(0x02)
	tagStartTime       = byte(0x03)
	tagBonusEndTime    = byte(0x04)
	tagBonusMultiplier = byte(0x05)
	tagTotalAllocPoint = byte(0x06)
	tagPaused          = byte(0x07)
	tagWNative         = byte(0x08)

	tagPoolLength = byte(0x09)
	tagPoolInfo   = byte(0x10)
	tagPoolAmount = byte(0x11)
	tagPoolOfWant = byte(0x12)

	tagAccPerShare = byte(0x13)
	tagUserInfo    = byte(0x14)
	tagUserDebt    = byte(0x15)

	tagParticipantCount = byte(0x16)
	tagParticipantIndex = byte(0x17)
	tagParticipantFlag  = byte(0x18)

	tagRewardTokenCount = byte(0x19)
	tagRewardTokenIndex = byte(0x1a)
	tagRewardTokenFlag  = byte(0x1b)
	tagTotalPaid        = byte(0x1c)

	tagEntered = byte(0x1d)
)

func makeFarmKey(key byte, body []byte) []byte {
	bs := make([]byte, 1+len(body))
	bs[0] = key
	copy(bs[1:], body[:])
	return bs
}

func makePoolInfoKey(pid uint64) []byte {
	return makeFarmKey(tagPoolInfo, bin.Uint64Bytes(pid))
}

func makePoolAmountKey(pid uint64) []byte {
	return makeFarmKey(tagPoolAmount, bin.Uint64Bytes(pid))
}

func makePoolOfWantKey(want common.Address) []byte {
	return makeFarmKey(tagPoolOfWant, want[:])
}

func makeAccPerShareKey(pid uint64, token common.Address) []byte {
	bs := append(bin.Uint64Bytes(pid), token[:]...)
	return makeFarmKey(tagAccPerShare, bs)
}

func makeUserInfoKey(pid uint64, user common.Address) []byte {
	bs := append(bin.Uint64Bytes(pid), user[:]...)
	return makeFarmKey(tagUserInfo, bs)
}

func makeUserDebtKey(pid uint64, user common.Address, token common.Address) []byte {
	bs := append(bin.Uint64Bytes(pid), user[:]...)
	bs = append(bs, token[:]...)
	return makeFarmKey(tagUserDebt, bs)
}

func makeParticipantCountKey(pid uint64) []byte {
	return makeFarmKey(tagParticipantCount, bin.Uint64Bytes(pid))
}

func makeParticipantIndexKey(pid uint64, index uint32) []byte {
	bs := append(bin.Uint64Bytes(pid), bin.Uint32Bytes(index)...)
	return makeFarmKey(tagParticipantIndex, bs)
}

func makeParticipantFlagKey(pid uint64, user common.Address) []byte {
	bs := append(bin.Uint64Bytes(pid), user[:]...)
	return makeFarmKey(tagParticipantFlag, bs)
}

func makeRewardTokenIndexKey(index uint32) []byte {
	return makeFarmKey(tagRewardTokenIndex, bin.Uint32Bytes(index))
}

func makeRewardTokenFlagKey(token common.Address) []byte {
	return makeFarmKey(tagRewardTokenFlag, token[:])
}

func makeTotalPaidKey(token common.Address) []byte {
	return makeFarmKey(tagTotalPaid, token[:])
}
