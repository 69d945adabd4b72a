package test

import (
	"bytes"
	"io"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/common/bin"
	"github.com/meadowlabs/meadow/core/types"
	"github.com/pkg/errors"
)

var (
	tagReenterFarm   = byte(0x01)
	tagReenterWant   = byte(0x02)
	tagReenterAttack = byte(0x03)
)

type ReenterVaultConstruction struct {
	Farm common.Address
	Want common.Address
}

func (s *ReenterVaultConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if _, err := sw.Address(w, s.Farm); err != nil {
		return sw.Sum(), err
	}
	if _, err := sw.Address(w, s.Want); err != nil {
		return sw.Sum(), err
	}
	return sw.Sum(), nil
}

func (s *ReenterVaultConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if _, err := sr.Address(r, &s.Farm); err != nil {
		return sr.Sum(), err
	}
	if _, err := sr.Address(r, &s.Want); err != nil {
		return sr.Sum(), err
	}
	return sr.Sum(), nil
}

// ReenterVault acts as a plain custody vault until an attack method is
// armed, then calls back into the farm while a farm operation is still
// in flight.
type ReenterVault struct {
	addr   common.Address
	master common.Address
}

func (cont *ReenterVault) Address() common.Address {
	return cont.addr
}

func (cont *ReenterVault) Master() common.Address {
	return cont.master
}

func (cont *ReenterVault) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *ReenterVault) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &ReenterVaultConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagReenterFarm}, data.Farm[:])
	cc.SetContractData([]byte{tagReenterWant}, data.Want[:])
	return nil
}

func (cont *ReenterVault) Front() interface{} {
	return &reenterFront{cont: cont}
}

type reenterFront struct {
	cont *ReenterVault
}

func (f *reenterFront) farm(cc *types.ContractContext) common.Address {
	return bin.Address(cc.ContractData([]byte{tagReenterFarm}))
}

func (f *reenterFront) want(cc *types.ContractContext) common.Address {
	return bin.Address(cc.ContractData([]byte{tagReenterWant}))
}

func (f *reenterFront) attack(cc *types.ContractContext) error {
	method := string(cc.ContractData([]byte{tagReenterAttack}))
	if len(method) == 0 {
		return nil
	}
	if _, err := cc.Exec(cc, f.farm(cc), method, []interface{}{uint64(0)}); err != nil {
		return err
	}
	return errors.New("reentry allowed")
}

func (f *reenterFront) SetAttack(cc *types.ContractContext, method string) error {
	cc.SetContractData([]byte{tagReenterAttack}, []byte(method))
	return nil
}

func (f *reenterFront) Deposit(cc *types.ContractContext, _userAddress common.Address, _wantAmt *amount.Amount) (*amount.Amount, error) {
	if err := f.attack(cc); err != nil {
		return nil, err
	}
	if _, err := cc.Exec(cc, f.want(cc), "TransferFrom", []interface{}{cc.From(), f.cont.addr, _wantAmt}); err != nil {
		return nil, err
	}
	return _wantAmt, nil
}

func (f *reenterFront) Withdraw(cc *types.ContractContext, _userAddress common.Address, _wantAmt *amount.Amount, _feeFactor uint16) (*amount.Amount, error) {
	if err := f.attack(cc); err != nil {
		return nil, err
	}
	if _, err := cc.Exec(cc, f.want(cc), "Transfer", []interface{}{_userAddress, _wantAmt}); err != nil {
		return nil, err
	}
	return _wantAmt, nil
}

func (f *reenterFront) Balance(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmount(0, 0)
}
