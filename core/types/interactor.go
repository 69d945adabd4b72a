package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

type IInteractor interface {
	Distroy()
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
	EventList() []*Event
	AddEvent(*Event)
}

type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

type interactor struct {
	ctx       *Context
	cont      Contract
	conMap    map[common.Address]Contract
	exit      bool
	index     uint16
	eventList []*Event
	saveEvent bool
}

var bigIntType = reflect.TypeOf(&big.Int{}).String()
var amountType = reflect.TypeOf(&amount.Amount{}).String()

func NewInteractor(ctx *Context, cont Contract, cc *ContractContext, saveEvent bool) IInteractor {
	return &interactor{
		ctx:       ctx,
		cont:      cont,
		conMap:    map[common.Address]Contract{},
		eventList: []*Event{},
		saveEvent: saveEvent,
	}
}

func (i *interactor) Distroy() {
	i.exit = true
}

func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) (result []interface{}, err error) {
	if i.exit {
		return nil, errors.New("expired")
	}
	if MethodName == "" {
		return nil, errors.New("method not given")
	}
	if !Cc.IsContract(ContAddr) {
		return nil, errors.WithStack(ErrNotExistContract)
	}
	cont, err := i.getContract(ContAddr)
	if err != nil {
		return nil, err
	}
	MethodName = strings.ToUpper(string(MethodName[0])) + MethodName[1:]

	ecc := i.currentContractContext(Cc, ContAddr)
	var enResult []interface{}
	if i.saveEvent {
		en := i.addCallEvent(ecc, ContAddr, MethodName, Args)
		defer func() {
			if err != nil {
				return
			}
			_err := insertResultEvent(en, enResult, err)
			if _err != nil {
				err = _err
			}
		}()
	}
	result, enResult, err = _exec(ecc, cont, MethodName, Args)
	return
}

func _exec(ecc *ContractContext, cont Contract, MethodName string, Args []interface{}) (result []interface{}, enResult []interface{}, err error) {
	ContAddr := cont.Address()
	rMethod, _err := methodByName(cont, ContAddr, MethodName)
	if _err != nil {
		err = _err
		return
	}

	in, _err := ContractInputsConv(Args, rMethod)
	if _err != nil {
		err = _err
		return
	}
	in = append([]reflect.Value{reflect.ValueOf(ecc)}, in...)

	sn := ecc.ctx.Snapshot()

	vs, _err := func() (vs []reflect.Value, err error) {
		defer func() {
			v := recover()
			if v != nil {
				err = fmt.Errorf("occur error call method(%v) of contract(%v) message: %v", MethodName, ContAddr.String(), v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if _err != nil {
		ecc.ctx.Revert(sn)
		err = _err
		return
	}

	mtype := rMethod.Type()
	result, enResult, err = getResults(mtype, vs)
	if err != nil {
		ecc.ctx.Revert(sn)
		return
	}
	ecc.ctx.Commit(sn)
	return
}

func ContractInputsConv(Args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	if rMethod.Type().NumIn() != len(Args)+1 {
		return nil, errors.Errorf("invalid inputs count got %v want %v", len(Args), rMethod.Type().NumIn()-1)
	}
	if rMethod.Type().NumIn() < 1 {
		return nil, errors.New("not found")
	}
	in := make([]reflect.Value, len(Args))
	for i, v := range Args {
		param := reflect.ValueOf(v)
		mType := rMethod.Type().In(i + 1)

		if param.Type() != mType {
			switch pv := v.(type) {
			case *big.Int:
				switch mType.String() {
				case amountType:
					param = reflect.ValueOf(amount.NewAmountFromBytes(pv.Bytes()))
				case reflect.Uint.String():
					param = reflect.ValueOf(uint(pv.Uint64()))
				case reflect.Uint8.String():
					param = reflect.ValueOf(uint8(pv.Uint64()))
				case reflect.Uint16.String():
					param = reflect.ValueOf(uint16(pv.Uint64()))
				case reflect.Uint32.String():
					param = reflect.ValueOf(uint32(pv.Uint64()))
				case reflect.Uint64.String():
					param = reflect.ValueOf(pv.Uint64())
				case reflect.Int.String():
					param = reflect.ValueOf(int(pv.Int64()))
				case reflect.Int64.String():
					param = reflect.ValueOf(pv.Int64())
				case "common.Address":
					param = reflect.ValueOf(common.BytesToAddress(pv.Bytes()))
				}
			case *amount.Amount:
				switch mType.String() {
				case bigIntType:
					param = reflect.ValueOf(big.NewInt(0).SetBytes(pv.Bytes()))
				case "string":
					param = reflect.ValueOf(big.NewInt(0).SetBytes(pv.Bytes()).String())
				}
			case []interface{}:
				switch mType.String() {
				case "[]common.Address":
					as := []common.Address{}
					for _, t := range pv {
						switch addr := t.(type) {
						case common.Address:
							as = append(as, addr)
						case string:
							as = append(as, common.HexToAddress(addr))
						case *big.Int:
							as = append(as, common.BytesToAddress(addr.Bytes()))
						default:
							return nil, errors.Errorf("invalid input addr type(%v) get %v want %v(%v)", i, param.Type(), mType, mType.String())
						}
					}
					param = reflect.ValueOf(as)
				case "[]*amount.Amount":
					as := []*amount.Amount{}
					for _, t := range pv {
						am, ok := t.(*amount.Amount)
						if !ok {
							trfv := reflect.ValueOf(t)
							return nil, errors.Errorf("invalid input amount type get %v(%v) want []*amount.Amount", t, trfv.Type().String())
						}
						as = append(as, am)
					}
					param = reflect.ValueOf(as)
				}
			case []*big.Int:
				switch mType.String() {
				case "[]*amount.Amount":
					as := []*amount.Amount{}
					for _, t := range pv {
						as = append(as, amount.NewAmountFromBytes(t.Bytes()))
					}
					param = reflect.ValueOf(as)
				}
			case uint8:
				if mType.String() == bigIntType {
					param = reflect.ValueOf(big.NewInt(0).SetInt64(int64(pv)))
				}
			case uint16:
				if mType.String() == bigIntType {
					param = reflect.ValueOf(big.NewInt(0).SetInt64(int64(pv)))
				}
			case uint32:
				if mType.String() == bigIntType {
					param = reflect.ValueOf(big.NewInt(0).SetInt64(int64(pv)))
				}
			case uint64:
				if mType.String() == bigIntType {
					param = reflect.ValueOf(big.NewInt(0).SetInt64(int64(pv)))
				}
			case int:
				switch mType.String() {
				case reflect.Uint8.String():
					param = reflect.ValueOf(uint8(pv))
				case reflect.Uint16.String():
					param = reflect.ValueOf(uint16(pv))
				case reflect.Uint32.String():
					param = reflect.ValueOf(uint32(pv))
				case reflect.Uint64.String():
					param = reflect.ValueOf(uint64(pv))
				case bigIntType:
					param = reflect.ValueOf(big.NewInt(int64(pv)))
				}
			case string:
				switch mType.String() {
				case "bool":
					param = reflect.ValueOf(strings.EqualFold(pv, "true"))
				case "common.Address":
					param = reflect.ValueOf(common.HexToAddress(pv))
				case amountType:
					am, err := amount.ParseAmount(pv)
					if err == nil {
						param = reflect.ValueOf(am)
					}
				case "[]byte", "[]uint8":
					bs, err := hex.DecodeString(pv)
					if err == nil {
						param = reflect.ValueOf(bs)
					}
				}
			case []byte:
				switch mType.String() {
				case "common.Address":
					param = reflect.ValueOf(common.BytesToAddress(pv))
				case amountType:
					param = reflect.ValueOf(amount.NewAmountFromBytes(pv))
				case bigIntType:
					param = reflect.ValueOf(big.NewInt(0).SetBytes(pv))
				}
			default:
			}
		}
		if param.Type() != mType {
			return nil, errors.Errorf("invalid input type(%v) get %v want %v(%v) value %v", i, param.Type(), mType, mType.String(), v)
		}

		in[i] = param
	}
	return in, nil
}

func (i *interactor) EventList() []*Event {
	return i.eventList
}

func (i *interactor) AddEvent(en *Event) {
	i.eventList = append(i.eventList, en)
}

func getResults(mType reflect.Type, vs []reflect.Value) (params []interface{}, result []interface{}, err error) {
	params = []interface{}{}
	result = []interface{}{}
	for i, v := range vs {
		vi := v.Interface()
		params = append(params, v.Interface())
		if mType.Out(i).Kind() == reflect.Interface && mType.Out(i).Implements(errType) { // is error type
			if _err, ok := vi.(error); ok {
				err = _err
			}
			continue
		}
		result = append(result, vi)
	}
	return
}

func (i *interactor) addCallEvent(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) *Event {
	mc := MethodCallEvent{
		From:   Cc.From(),
		To:     Addr,
		Method: MethodName,
		Args:   Args,
	}
	bf := &bytes.Buffer{}
	_, err := mc.WriteTo(bf)
	if err != nil {
		panic(err)
	}
	rv := &Event{
		Index:  i.index,
		Type:   EventTagCallHistory,
		Result: bf.Bytes(),
	}
	i.eventList = append(i.eventList, rv)
	return rv
}

func insertResultEvent(en *Event, Results []interface{}, Err error) error {
	bf := bytes.NewBuffer(en.Result)

	mc := &MethodCallEvent{}
	_, err := mc.ReadFrom(bf)
	if err != nil {
		return err
	}

	if Err != nil {
		mc.Error = Err.Error()
	} else {
		mc.Result = Results
	}

	wbf := &bytes.Buffer{}
	_, err = mc.WriteTo(wbf)
	if err != nil {
		panic(err)
	}
	en.Result = wbf.Bytes()
	return err
}

func methodByName(cont Contract, Addr common.Address, MethodName string) (reflect.Value, error) {
	_cont := cont.Front()

	method, err := contractMethod(_cont, Addr, MethodName)
	if err != nil {
		return reflect.Value{}, err
	}
	return method, nil
}

func (i *interactor) getContract(Addr common.Address) (Contract, error) {
	var cont Contract
	if _cont, ok := i.conMap[Addr]; ok {
		cont = _cont
	} else {
		_cont, err := i.ctx.Contract(Addr)
		if err != nil {
			return nil, err
		}
		i.conMap[Addr] = _cont
		cont = _cont
	}
	return cont, nil
}

func contractMethod(cont interface{}, addr common.Address, MethodName string) (reflect.Value, error) {
	vo := reflect.ValueOf(cont)
	if !vo.IsValid() {
		return reflect.Value{}, errors.New("wrong contract")
	}
	if vo.IsNil() {
		return reflect.Value{}, errors.New("nil contract")
	}

	method := vo.MethodByName(MethodName)
	if !method.IsValid() || method.IsNil() {
		return reflect.Value{}, errors.New("method not exist: " + MethodName + " cont" + addr.String())
	}
	return method, nil
}

func (i *interactor) currentContractContext(Cc *ContractContext, Addr common.Address) *ContractContext {
	if i.cont != nil && i.cont.Address() == Addr && Cc.cont == Addr {
		return Cc
	}
	return &ContractContext{
		cont: Addr,
		from: Cc.cont,
		ctx:  Cc.ctx,
		Exec: i.Exec,
	}
}
