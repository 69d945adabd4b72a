package types

import (
	"github.com/meadowlabs/meadow/common"
)

// Context is an in-memory ledger state using the context data stack.
// Every unit of work runs between a Snapshot and a matching Commit or
// Revert, so a failed operation leaves no partial writes behind.
type Context struct {
	genTargetHeight uint32
	genTimestamp    uint64
	stack           []*ContextData
}

// NewContext returns a Context at the height with the timestamp
func NewContext(TargetHeight uint32, Timestamp uint64) *Context {
	ctx := &Context{
		genTargetHeight: TargetHeight,
		genTimestamp:    Timestamp,
	}
	ctx.stack = []*ContextData{NewContextData(nil)}
	return ctx
}

// NewEmptyContext returns an empty Context
func NewEmptyContext() *Context {
	return NewContext(1, 0)
}

// NextContext returns the next Context inheriting the current state
func (ctx *Context) NextContext(Timestamp uint64) *Context {
	ctd := NewContextData(ctx.Top())
	nctx := &Context{
		genTargetHeight: ctx.genTargetHeight + 1,
		genTimestamp:    Timestamp,
		stack:           []*ContextData{ctd},
	}
	return nctx
}

// TargetHeight returns the recorded target height when context generation
func (ctx *Context) TargetHeight() uint32 {
	return ctx.genTargetHeight
}

// LastTimestamp returns the last timestamp of the ledger
func (ctx *Context) LastTimestamp() uint64 {
	return ctx.genTimestamp
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// MainToken returns the main token address
func (ctx *Context) MainToken() *common.Address {
	return ctx.Top().MainToken()
}

// SetMainToken sets the main token address
func (ctx *Context) SetMainToken(addr common.Address) {
	ctx.Top().SetMainToken(addr)
}

// IsContract returns is the contract
func (ctx *Context) IsContract(addr common.Address) bool {
	return ctx.Top().IsContract(addr)
}

// Contract returns the contract of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	return ctx.Top().Contract(addr)
}

// DeployContract deploy the contract to the ledger
func (ctx *Context) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	return ctx.Top().DeployContract(ctx, sender, ClassID, Args)
}

// DeployContractWithAddress deploy the contract to the ledger with the address
func (ctx *Context) DeployContractWithAddress(sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	return ctx.Top().DeployContractWithAddress(ctx, sender, ClassID, addr, Args)
}

// Data returns the data from the top snapshot
func (ctx *Context) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return ctx.Top().Data(cont, addr, name)
}

// SetData inserts the data to the top snapshot
func (ctx *Context) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	ctx.Top().SetData(cont, addr, name, value)
}

// DataKeys returns the data keys of the contract under the prefix
func (ctx *Context) DataKeys(cont common.Address, addr common.Address, Prefix []byte) [][]byte {
	return ctx.Top().DataKeys(cont, addr, Prefix)
}

// EmitEvent creates the event to the top snapshot
func (ctx *Context) EmitEvent(e *Event) {
	ctx.Top().EmitEvent(e)
}

// Events returns the events of the top snapshot and its parents
func (ctx *Context) Events() []*Event {
	evs := []*Event{}
	for _, ctd := range ctx.stack {
		evs = append(evs, ctd.Events...)
	}
	return evs
}

// ContractContext returns a ContractContext of the contract with the sender
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	cc := &ContractContext{
		cont: cont.Address(),
		from: from,
		ctx:  ctx,
	}
	return cc
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctd := NewContextData(ctx.Top())
	ctx.stack[len(ctx.stack)-1].isTop = false
	ctx.stack = append(ctx.stack, ctd)
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	for len(ctx.stack) >= sn {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		top := ctx.Top()
		if ctd.mainToken != nil {
			top.mainToken = ctd.mainToken
		}
		for addr, cd := range ctd.ContractDefineMap {
			top.ContractDefineMap[addr] = cd
		}
		ctd.DataMap.EachAll(func(key string, value []byte) bool {
			top.DataMap.Put(key, value)
			delete(top.DeletedDataMap, key)
			return true
		})
		for key := range ctd.DeletedDataMap {
			top.DataMap.Delete(key)
			top.DeletedDataMap[key] = true
		}
		top.Events = append(top.Events, ctd.Events...)
		top.EventN = ctd.EventN
		top.seq = ctd.seq
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}
