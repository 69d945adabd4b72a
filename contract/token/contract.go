package token

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/core/types"
)

type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	for k, v := range data.InitialSupplyMap {
		if err := cont.addBalance(cc, k, v); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	if cont.isPause(cc) {
		return errors.New("paused")
	}
	bal := cont.BalanceOf(cc, addr)

	bal = bal.Add(am)

	cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())

	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	total := amount.NewAmountFromBytes(bs).Add(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())

	return nil
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	if cont.isPause(cc) {
		return errors.New("paused")
	}
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Errorf("invalid transfer amount %v less then %v", am.String(), bal.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())
	}

	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	total := amount.NewAmountFromBytes(bs).Sub(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())

	return nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.New("Token: TRANSFER_FROM_ZEROADDRESS")
	}

	if To == common.ZeroAddr {
		return errors.New("Token: TRANSFER_TO_ZEROADDRESS")
	}

	if Amount.IsMinus() {
		return errors.New("minus amount")
	}

	fromBalance := cont.BalanceOf(cc, cc.From())
	if fromBalance.Cmp(Amount.Int) < 0 {
		return fmt.Errorf("Token: TRANSFER_EXCEED_BALANCE %v %v %v %v", cc.From().String(), To.String(), fromBalance.String(), Amount.String())
	}

	if Amount.IsZero() {
		return nil
	}
	if err := cont.subBalance(cc, cc.From(), Amount); err != nil {
		return err
	}
	return cont.addBalance(cc, To, Amount)
}

func (cont *TokenContract) Burn(cc *types.ContractContext, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.New("minus amount")
	}
	return cont.subBalance(cc, cc.From(), am)
}

func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	isMinter := cont.IsMinter(cc, cc.From())
	if cc.From() != cont.Master() && !isMinter {
		return errors.New(cc.From().String() + ": not token minter")
	}
	if Amount.IsPlus() {
		return cont.addBalance(cc, To, Amount)
	}
	return nil
}

func (cont *TokenContract) MintBatch(cc *types.ContractContext, Tos []common.Address, Amounts []*amount.Amount) error {
	isMinter := cont.IsMinter(cc, cc.From())
	if cc.From() != cont.Master() && !isMinter {
		return errors.New("not token minter")
	}
	if len(Tos) != len(Amounts) {
		return errors.New("not match To and Amount")
	}
	for i, To := range Tos {
		if err := cont.addBalance(cc, To, Amounts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (cont *TokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if cc.From() != cont.Master() {
		return errors.New("not token master")
	}

	isMinter := cont.IsMinter(cc, To)

	if Is {
		if isMinter {
			return errors.New("already token minter")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, []byte{1})
	} else {
		if !isMinter {
			return errors.New("not token minter")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, nil)
	}
	return nil
}

func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.New("Token: APPROVE_FROM_ZEROADDRESS")
	}

	if spender == common.ZeroAddr {
		return errors.New("Token: APPROVE_TO_ZEROADDRESS")
	}

	if Amount.IsMinus() {
		return errors.New("Token: APPROVE_NEGATIVE_AMOUNT")
	}

	cont._approve(cc, cc.From(), spender, Amount)
	return nil
}

func (cont *TokenContract) _approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) {
	cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), Amount.Bytes())
}

func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if Amount.IsZero() {
		return nil
	}
	balance := cont.BalanceOf(cc, From)
	if Amount.Cmp(balance.Int) > 0 {
		return errors.Errorf("the token holding quantity is insufficient balance: %v Amount: %v From: %v cont: %v", balance.String(), Amount.String(), From.String(), cont.addr.String())
	}

	allowedValue := cont.Allowance(cc, From, cc.From())
	if Amount.Cmp(allowedValue.Int) > 0 {
		return errors.Errorf("the token allowance is insufficient token: %v cc.From: %v from: %v to: %v Amount: %v allowedValue: %v", cont.addr.String(), cc.From().String(), From.String(), To.String(), Amount, allowedValue)
	}
	nAllow := allowedValue.Sub(Amount)
	cc.SetAccountData(From, MakeAllowanceTokenKey(cc.From()), nAllow.Bytes())

	if err := cont.subBalance(cc, From, Amount); err != nil {
		return err
	}
	if err := cont.addBalance(cc, To, Amount); err != nil {
		return err
	}
	return nil
}

func (cont *TokenContract) SetName(cc *types.ContractContext, name string) error {
	if cc.From() != cont.Master() {
		return errors.New("not token master")
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(name))
	return nil
}

func (cont *TokenContract) SetSymbol(cc *types.ContractContext, symbol string) error {
	if cc.From() != cont.Master() {
		return errors.New("not token master")
	}
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(symbol))
	return nil
}

func (cont *TokenContract) isPause(cc types.ContractLoader) bool {
	bs := cc.ContractData([]byte{tagPause})
	if len(bs) == 1 && bs[0] == 1 {
		return true
	}
	return false
}

func (cont *TokenContract) Pause(cc *types.ContractContext) error {
	if cc.From() != cont.Master() {
		return errors.New("not token master")
	}
	cc.SetContractData([]byte{tagPause}, []byte{1})
	return nil
}

func (cont *TokenContract) Unpause(cc *types.ContractContext) error {
	if cc.From() != cont.Master() {
		return errors.New("not token master")
	}
	cc.SetContractData([]byte{tagPause}, nil)
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) TotalSupply(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) Decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(amount.FractionalCount)
}

func (cont *TokenContract) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	bs := cc.AccountData(from, []byte{tagTokenAmount})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) IsMinter(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagTokenMinter})
	if len(bs) == 1 && bs[0] == 1 {
		return true
	}
	return false
}

func (cont *TokenContract) Allowance(cc types.ContractLoader, _owner common.Address, _spender common.Address) *amount.Amount {
	bs := cc.AccountData(_owner, MakeAllowanceTokenKey(_spender))
	return amount.NewAmountFromBytes(bs)
}
