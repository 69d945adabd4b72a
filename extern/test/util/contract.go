package util

import (
	"bytes"
	"io"
	"reflect"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/meadowlabs/meadow/common/bin"
	"github.com/meadowlabs/meadow/common/hash"
	"github.com/meadowlabs/meadow/contract/token"
	"github.com/meadowlabs/meadow/core/types"
)

func (tc *TestContext) DeployContract(contType types.Contract, contArgs io.WriterTo) common.Address {
	var classID uint64
	{
		rt := reflect.TypeOf(contType)
		for rt.Kind() == reflect.Ptr {
			rt = rt.Elem()
		}
		name := rt.Name()
		if pkgPath := rt.PkgPath(); len(pkgPath) > 0 {
			name = pkgPath + "." + name
		}
		h := hash.Hash([]byte(name))
		classID = bin.Uint64(h[len(h)-8:])
	}

	bf := &bytes.Buffer{}
	if _, err := contArgs.WriteTo(bf); err != nil {
		panic(err)
	}
	cont, err := tc.Ctx.DeployContract(Admin, classID, bf.Bytes())
	if err != nil {
		panic(err)
	}
	return cont.Address()
}

// Exec runs one method call as a full unit of work. A failed call
// leaves no state behind.
func (tc *TestContext) Exec(from common.Address, contAddr common.Address, methodName string, args ...interface{}) ([]interface{}, error) {
	cont, err := tc.Ctx.Contract(contAddr)
	if err != nil {
		return nil, err
	}
	cc := tc.Ctx.ContractContext(cont, from)
	intr := types.NewInteractor(tc.Ctx, cont, cc, true)
	cc.Exec = intr.Exec
	is, err := intr.Exec(cc, contAddr, methodName, args)
	intr.Distroy()
	return is, err
}

func (tc *TestContext) MustExec(from common.Address, contAddr common.Address, methodName string, args ...interface{}) []interface{} {
	is, err := tc.Exec(from, contAddr, methodName, args...)
	if err != nil {
		panic(err)
	}
	return is
}

func (tc *TestContext) MakeToken(name string, symbol string, amt string) common.Address {
	tokenContArgs := &token.TokenContractConstruction{
		Name:   name,
		Symbol: symbol,
		InitialSupplyMap: map[common.Address]*amount.Amount{
			Admin: amount.MustParseAmount(amt),
		},
	}
	tokenContType := &token.TokenContract{}
	return tc.DeployContract(tokenContType, tokenContArgs)
}
