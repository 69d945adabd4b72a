package types

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/bin"
	"github.com/meadowlabs/meadow/common/hash"
)

// ContextData is a state overlay of the context. Reads fall through to the
// parent overlay, writes stay in this overlay until commit.
type ContextData struct {
	Parent            *ContextData
	mainToken         *common.Address
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           *StringBytesMap
	DeletedDataMap    map[string]bool
	Events            []*Event
	EventN            uint16
	isTop             bool
	seq               uint32
}

// NewContextData returns a ContextData
func NewContextData(Parent *ContextData) *ContextData {
	ctd := &ContextData{
		Parent:            Parent,
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           NewStringBytesMap(),
		DeletedDataMap:    map[string]bool{},
		isTop:             true,
	}
	if Parent != nil {
		ctd.EventN = Parent.EventN
		ctd.seq = Parent.seq
	}
	return ctd
}

// MainToken returns the MainToken
func (ctd *ContextData) MainToken() *common.Address {
	if ctd.mainToken != nil {
		return ctd.mainToken
	}
	if ctd.Parent != nil {
		return ctd.Parent.MainToken()
	}
	return nil
}

// SetMainToken is set the maintoken
func (ctd *ContextData) SetMainToken(addr common.Address) {
	ctd.mainToken = &addr
}

// IsContract returns is the contract
func (ctd *ContextData) IsContract(addr common.Address) bool {
	if _, has := ctd.ContractDefineMap[addr]; has {
		return true
	} else if ctd.Parent != nil {
		return ctd.Parent.IsContract(addr)
	}
	return false
}

// Contract returns the contract of the address
func (ctd *ContextData) Contract(addr common.Address) (Contract, error) {
	if cd, has := ctd.ContractDefineMap[addr]; has {
		return CreateContract(cd)
	} else if ctd.Parent != nil {
		return ctd.Parent.Contract(addr)
	}
	return nil, errors.WithStack(ErrNotExistContract)
}

// NextSeq returns the next squence number
func (ctd *ContextData) NextSeq() uint32 {
	ctd.seq++
	return ctd.seq
}

// DeployContract deploy contract with an address derived from the sender,
// the class and the deploy sequence
func (ctd *ContextData) DeployContract(ctx *Context, sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, errors.WithStack(ErrInvalidClassID)
	}

	base := make([]byte, 1+common.AddressLength+8+4)
	base[0] = 0xff
	copy(base[1:], sender[:])
	copy(base[1+common.AddressLength:], bin.Uint64Bytes(ClassID))
	copy(base[1+common.AddressLength+8:], bin.Uint32Bytes(ctd.NextSeq()))
	height := ctx.TargetHeight()
	if height > 0 {
		bs := bin.Uint32Bytes(height)
		base = append(base, bs...)
	}
	h := hash.Hash(base)
	addr := common.BytesToAddress(h[12:])
	return ctd.DeployContractWithAddress(ctx, sender, ClassID, addr, Args)
}

// DeployContractWithAddress deploy contract with the given address
func (ctd *ContextData) DeployContractWithAddress(ctx *Context, sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	ctd.ContractDefineMap[addr] = cd
	if err := cont.OnCreate(ctx.ContractContext(cont, sender), Args); err != nil {
		delete(ctd.ContractDefineMap, addr)
		return nil, err
	}
	return cont, nil
}

// Data returns the data
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	if value, has := ctd.DataMap.Get(key); has {
		return value
	} else if ctd.Parent != nil {
		value := ctd.Parent.Data(cont, addr, name)
		if len(value) > 0 {
			if ctd.isTop {
				nvalue := make([]byte, len(value))
				copy(nvalue, value)
				return nvalue
			} else {
				return value
			}
		}
		return nil
	}
	return nil
}

// SetData inserts the data. An empty value removes the key.
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if len(value) == 0 {
		ctd.DataMap.Delete(key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap.Put(key, value)
	}
}

// DataKeys returns the visible data keys of the contract under the prefix
func (ctd *ContextData) DataKeys(cont common.Address, addr common.Address, Prefix []byte) [][]byte {
	prefix := string(cont[:]) + string(addr[:]) + string(Prefix)
	mp := map[string]bool{}
	ctd.collectKeys(prefix, mp)
	head := len(cont) + len(addr)
	sorted := make([]string, 0, len(mp))
	for key := range mp {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)
	keys := make([][]byte, 0, len(sorted))
	for _, key := range sorted {
		keys = append(keys, []byte(key[head:]))
	}
	return keys
}

func (ctd *ContextData) collectKeys(prefix string, mp map[string]bool) {
	if ctd.Parent != nil {
		ctd.Parent.collectKeys(prefix, mp)
	}
	ctd.DataMap.EachPrefix(prefix, func(key string, value []byte) bool {
		mp[key] = true
		return true
	})
	for key := range ctd.DeletedDataMap {
		if strings.HasPrefix(key, prefix) {
			delete(mp, key)
		}
	}
}

// EmitEvent records the event to this overlay
func (ctd *ContextData) EmitEvent(e *Event) {
	e.Index = ctd.EventN
	ctd.EventN++
	ctd.Events = append(ctd.Events, e)
}
