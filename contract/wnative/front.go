package wnative

import (
	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/core/types"
)

func (cont *WNativeContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *WNativeContract
}

func (f *front) Wrap(cc *types.ContractContext, _amt *amount.Amount) error {
	return f.cont.Wrap(cc, _amt)
}

func (f *front) Unwrap(cc *types.ContractContext, _amt *amount.Amount) error {
	return f.cont.Unwrap(cc, _amt)
}

func (f *front) Wrapped(cc types.ContractLoader) common.Address {
	return f.cont.Wrapped(cc)
}
