package types

import (
	"github.com/meadowlabs/meadow/common"
)

// Contract defines the ledger contract functions
type Contract interface {
	Address() common.Address
	Master() common.Address
	Init(addr common.Address, master common.Address)
	OnCreate(cc *ContractContext, Args []byte) error
	Front() interface{}
}
