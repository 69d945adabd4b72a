package types

import "github.com/meadowlabs/meadow/common"

// ContractLoader defines functions that loads state data from the ledger
type ContractLoader interface {
	TargetHeight() uint32
	LastTimestamp() uint64
	MainToken() *common.Address
	ContractData(name []byte) []byte
	ContractDataKeys(Prefix []byte) [][]byte
	AccountData(addr common.Address, name []byte) []byte
	IsContract(addr common.Address) bool
}
