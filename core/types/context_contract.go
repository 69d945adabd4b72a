package types

import (
	"bytes"

	"github.com/meadowlabs/meadow/common"
)

// ContractContext is an context for the contract
type ContractContext struct {
	cont common.Address
	from common.Address
	ctx  *Context
	Exec ExecFunc
}

// TargetHeight returns the recorded target height when ContractContext generation
func (cc *ContractContext) TargetHeight() uint32 {
	return cc.ctx.TargetHeight()
}

// LastTimestamp returns the recorded prev timestamp when ContractContext generation
func (cc *ContractContext) LastTimestamp() uint64 {
	return cc.ctx.LastTimestamp()
}

// From returns current signer address
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// MainToken returns the MainToken
func (cc *ContractContext) MainToken() *common.Address {
	return cc.ctx.Top().MainToken()
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.Top().SetData(cc.cont, common.Address{}, name, value)
}

// ContractDataKeys returns the contract data keys under the prefix
func (cc *ContractContext) ContractDataKeys(Prefix []byte) [][]byte {
	return cc.ctx.Top().DataKeys(cc.cont, common.Address{}, Prefix)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.Top().SetData(cc.cont, addr, name, value)
}

// IsContract returns is the contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.Top().IsContract(addr)
}

// DeployContractWithAddress deploy contract to the ledger with the address
func (cc *ContractContext) DeployContractWithAddress(owner common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	return cc.ctx.Top().DeployContractWithAddress(cc.ctx, owner, ClassID, addr, Args)
}

// EmitEvent records a contract notification to the top snapshot
func (cc *ContractContext) EmitEvent(Name string, Args ...interface{}) {
	ev := &ContractEvent{
		From: cc.cont,
		Name: Name,
		Args: Args,
	}
	bf := &bytes.Buffer{}
	if _, err := ev.WriteTo(bf); err != nil {
		panic(err)
	}
	cc.ctx.EmitEvent(&Event{
		Type:   EventTagContract,
		Result: bf.Bytes(),
	})
}
