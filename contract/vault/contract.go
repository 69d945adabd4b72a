package vault

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/core/types"
)

const (
	factorMax uint16 = 1000
)

// VaultContract keeps custody of one staking token for its farm. Only the
// farm may move funds in or out.
type VaultContract struct {
	addr   common.Address
	master common.Address
}

func (cont *VaultContract) Address() common.Address {
	return cont.addr
}

func (cont *VaultContract) Master() common.Address {
	return cont.master
}

func (cont *VaultContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *VaultContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &VaultContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}

	cc.SetContractData([]byte{tagGov}, data.Gov[:])
	cc.SetContractData([]byte{tagFarm}, data.Farm[:])
	cc.SetContractData([]byte{tagWant}, data.Want[:])
	cc.SetContractData([]byte{tagFeeFundAddress}, data.FeeFundAddress[:])
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *VaultContract) isGov(cc *types.ContractContext) bool {
	return cont.Gov(cc) == cc.From()
}

func (cont *VaultContract) isFarm(cc *types.ContractContext) bool {
	return cont.Farm(cc) == cc.From()
}

func (cont *VaultContract) setWantLockedTotal(cc *types.ContractContext, val *amount.Amount) {
	cc.SetContractData([]byte{tagWantLockedTotal}, val.Bytes())
}

func (cont *VaultContract) balanceOfWant(cc *types.ContractContext, addr common.Address) (*amount.Amount, error) {
	want := cont.Want(cc)
	ins, err := cc.Exec(cc, want, "BalanceOf", []interface{}{addr})
	if err != nil {
		return nil, err
	}
	if len(ins) == 0 {
		return nil, errors.New("invalid Want BalanceOf")
	}
	bal, ok := ins[0].(*amount.Amount)
	if !ok {
		return nil, errors.New("invalid Want BalanceOf !amount")
	}
	return bal, nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Deposit receives a new deposit from the farm and returns the amount
// actually credited, measured from the custody balance change
func (cont *VaultContract) Deposit(cc *types.ContractContext, _userAddress common.Address, _wantAmt *amount.Amount) (*amount.Amount, error) {
	if !cont.isFarm(cc) {
		return nil, errors.New("ownable: Deposit are only possible using owner contract")
	}
	if !_wantAmt.IsPlus() {
		return nil, errors.New("wantAmt must plus")
	}
	want := cont.Want(cc)

	before, err := cont.balanceOfWant(cc, cont.addr)
	if err != nil {
		return nil, err
	}
	if _, err := cc.Exec(cc, want, "TransferFrom", []interface{}{cc.From(), cont.addr, _wantAmt}); err != nil {
		return nil, err
	}
	after, err := cont.balanceOfWant(cc, cont.addr)
	if err != nil {
		return nil, err
	}
	credited := after.Sub(before)

	wantLockedTotal := cont.WantLockedTotal(cc).Add(credited)
	cont.setWantLockedTotal(cc, wantLockedTotal)
	return credited, nil
}

// Withdraw releases the requested amount to the user minus the per-thousand
// withdrawal fee, sends the fee leg to the fee fund and returns the net
func (cont *VaultContract) Withdraw(cc *types.ContractContext, _userAddress common.Address, _wantAmt *amount.Amount, _feeFactor uint16) (*amount.Amount, error) {
	if !cont.isFarm(cc) {
		return nil, errors.New("ownable: Withdraw are only possible using owner contract")
	}
	if !_wantAmt.IsPlus() {
		return nil, errors.New("_wantAmt <= 0")
	}
	if _feeFactor > factorMax {
		return nil, errors.New("invalid fee factor")
	}

	wantLockedTotal := cont.WantLockedTotal(cc)
	if wantLockedTotal.Cmp(_wantAmt.Int) < 0 {
		_wantAmt = wantLockedTotal
	}
	balance, err := cont.balanceOfWant(cc, cont.addr)
	if err != nil {
		return nil, err
	}
	if _wantAmt.Cmp(balance.Int) > 0 {
		_wantAmt = balance
	}

	wantLockedTotal = wantLockedTotal.Sub(_wantAmt)
	cont.setWantLockedTotal(cc, wantLockedTotal)

	want := cont.Want(cc)
	fee := _wantAmt.MulC(int64(_feeFactor)).DivC(int64(factorMax))
	net := _wantAmt.Sub(fee)

	if fee.IsPlus() {
		feeFund := cont.FeeFundAddress(cc)
		if _, err := cc.Exec(cc, want, "Transfer", []interface{}{feeFund, fee}); err != nil {
			return nil, err
		}
	}
	if net.IsPlus() {
		if _, err := cc.Exec(cc, want, "Transfer", []interface{}{_userAddress, net}); err != nil {
			return nil, err
		}
	}
	return net, nil
}

//////////////////////////////////////////////////
// Public Writer only owner Functions
//////////////////////////////////////////////////

func (cont *VaultContract) setFarm(cc *types.ContractContext, To common.Address) error {
	if cc.From() != cont.master && !cont.isGov(cc) {
		return errors.New("ownable: caller is not the master")
	}
	cc.SetContractData([]byte{tagFarm}, To[:])
	return nil
}

func (cont *VaultContract) setGov(cc *types.ContractContext, To common.Address) error {
	if cc.From() != cont.master && !cont.isGov(cc) {
		return errors.New("ownable: caller is not the master")
	}
	cc.SetContractData([]byte{tagGov}, To[:])
	return nil
}

func (cont *VaultContract) setFeeFundAddress(cc *types.ContractContext, val common.Address) error {
	if cc.From() != cont.master && !cont.isGov(cc) {
		return errors.New("ownable: caller is not the master")
	}
	cc.SetContractData([]byte{tagFeeFundAddress}, val[:])
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *VaultContract) Gov(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagGov})
	var gov common.Address
	copy(gov[:], bs)
	return gov
}

func (cont *VaultContract) Farm(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagFarm})
	var farm common.Address
	copy(farm[:], bs)
	return farm
}

func (cont *VaultContract) Want(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagWant})
	var want common.Address
	copy(want[:], bs)
	return want
}

func (cont *VaultContract) FeeFundAddress(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagFeeFundAddress})
	var addr common.Address
	copy(addr[:], bs)
	return addr
}

func (cont *VaultContract) WantLockedTotal(cc *types.ContractContext) *amount.Amount {
	bs := cc.ContractData([]byte{tagWantLockedTotal})
	return amount.NewAmountFromBytes(bs)
}
