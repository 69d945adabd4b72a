package wnative

import (
	"bytes"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/common/bin"
	"github.com/meadowlabs/meadow/core/types"
	"github.com/pkg/errors"
)

var (
	tagWrapped = byte(0x01)
)

// WNativeContract swaps the chain main token and its wrapped token one
// to one. It must be a minter of the wrapped token.
type WNativeContract struct {
	addr   common.Address
	master common.Address
}

func (cont *WNativeContract) Address() common.Address {
	return cont.addr
}

func (cont *WNativeContract) Master() common.Address {
	return cont.master
}

func (cont *WNativeContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *WNativeContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &WNativeContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Wrapped == common.ZeroAddr {
		return errors.New("wnative: zero wrapped token")
	}
	cc.SetContractData([]byte{tagWrapped}, data.Wrapped[:])
	return nil
}

func (cont *WNativeContract) Wrapped(cc types.ContractLoader) common.Address {
	return bin.Address(cc.ContractData([]byte{tagWrapped}))
}

// Wrap pulls main token from the caller and mints the same amount of
// the wrapped token back to the caller.
func (cont *WNativeContract) Wrap(cc *types.ContractContext, _amt *amount.Amount) error {
	if _amt == nil || !_amt.IsPlus() {
		return errors.New("wnative: invalid amount")
	}
	mainToken := cc.MainToken()
	if mainToken == nil {
		return errors.New("wnative: no main token")
	}
	if _, err := cc.Exec(cc, *mainToken, "TransferFrom", []interface{}{cc.From(), cont.addr, _amt}); err != nil {
		return err
	}
	if _, err := cc.Exec(cc, cont.Wrapped(cc), "Mint", []interface{}{cc.From(), _amt}); err != nil {
		return err
	}
	return nil
}

// Unwrap pulls the wrapped token from the caller, burns it and pays
// out the custodied main token.
func (cont *WNativeContract) Unwrap(cc *types.ContractContext, _amt *amount.Amount) error {
	if _amt == nil || !_amt.IsPlus() {
		return errors.New("wnative: invalid amount")
	}
	mainToken := cc.MainToken()
	if mainToken == nil {
		return errors.New("wnative: no main token")
	}
	wrapped := cont.Wrapped(cc)
	if _, err := cc.Exec(cc, wrapped, "TransferFrom", []interface{}{cc.From(), cont.addr, _amt}); err != nil {
		return err
	}
	if _, err := cc.Exec(cc, wrapped, "Burn", []interface{}{_amt}); err != nil {
		return err
	}
	if _, err := cc.Exec(cc, *mainToken, "Transfer", []interface{}{cc.From(), _amt}); err != nil {
		return err
	}
	return nil
}
