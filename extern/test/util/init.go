package util

import (
	"math/big"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/contract/farm"
	"github.com/meadowlabs/meadow/contract/token"
	"github.com/meadowlabs/meadow/contract/vault"
	"github.com/meadowlabs/meadow/contract/wnative"
	"github.com/meadowlabs/meadow/core/types"
)

var (
	Admin   = common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	FeeFund = common.HexToAddress("0x0000000000000000000000000000000000000Fee")
	Users   []common.Address
)

var ClassMap map[string]uint64

func init() {
	ClassMap = map[string]uint64{}
	RegisterContractClass(&token.TokenContract{}, "Token")
	RegisterContractClass(&farm.FarmContract{}, "Farm")
	RegisterContractClass(&vault.VaultContract{}, "Vault")
	RegisterContractClass(&wnative.WNativeContract{}, "WNative")

	Users = []common.Address{}
	for i := 0; i < 10; i++ {
		Users = append(Users, common.BigToAddress(big.NewInt(int64(0xa0000+i))))
	}
}

func RegisterContractClass(cont types.Contract, className string) uint64 {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	ClassMap[className] = ClassID
	return ClassID
}
