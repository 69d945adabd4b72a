package vault

import (
	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/core/types"
)

func (cont *VaultContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *VaultContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) Deposit(cc *types.ContractContext, _userAddress common.Address, _wantAmt *amount.Amount) (*amount.Amount, error) {
	return f.cont.Deposit(cc, _userAddress, _wantAmt)
}

func (f *front) Withdraw(cc *types.ContractContext, _userAddress common.Address, _wantAmt *amount.Amount, _feeFactor uint16) (*amount.Amount, error) {
	return f.cont.Withdraw(cc, _userAddress, _wantAmt, _feeFactor)
}

func (f *front) SetFarm(cc *types.ContractContext, To common.Address) error {
	return f.cont.setFarm(cc, To)
}

func (f *front) SetGov(cc *types.ContractContext, To common.Address) error {
	return f.cont.setGov(cc, To)
}

func (f *front) SetFeeFundAddress(cc *types.ContractContext, val common.Address) error {
	return f.cont.setFeeFundAddress(cc, val)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Gov(cc *types.ContractContext) common.Address {
	return f.cont.Gov(cc)
}

func (f *front) Farm(cc *types.ContractContext) common.Address {
	return f.cont.Farm(cc)
}

func (f *front) Want(cc *types.ContractContext) common.Address {
	return f.cont.Want(cc)
}

func (f *front) FeeFundAddress(cc *types.ContractContext) common.Address {
	return f.cont.FeeFundAddress(cc)
}

func (f *front) WantLockedTotal(cc *types.ContractContext) *amount.Amount {
	return f.cont.WantLockedTotal(cc)
}

func (f *front) Balance(cc *types.ContractContext) *amount.Amount {
	return f.cont.WantLockedTotal(cc)
}
