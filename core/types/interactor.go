package types

import (
	"reflect"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/pkg/errors"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

type IInteractor interface {
	Distroy()
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
}

type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

type interactor struct {
	ctx    *Context
	conMap map[common.Address]Contract
	exit   bool
}

// NewInteractor returns an IInteractor over the context
func NewInteractor(ctx *Context) IInteractor {
	return &interactor{
		ctx:    ctx,
		conMap: map[common.Address]Contract{},
	}
}

func (i *interactor) Distroy() {
	i.exit = true
}

// Exec runs the method of the target contract inside its own snapshot.
// The snapshot is merged down on success and dropped entirely on error.
func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	if i.exit {
		return nil, errors.New("expired")
	}
	if MethodName == "" {
		return nil, errors.New("method not given")
	}
	cont, err := i.getContract(ContAddr)
	if err != nil {
		return nil, err
	}
	ecc := i.currentContractContext(Cc, ContAddr)
	sn := i.ctx.Snapshot()
	result, err := execMethod(ecc, cont, MethodName, Args)
	if err != nil {
		i.ctx.Revert(sn)
		return nil, err
	}
	i.ctx.Commit(sn)
	return result, nil
}

func (i *interactor) getContract(addr common.Address) (Contract, error) {
	if cont, has := i.conMap[addr]; has {
		return cont, nil
	}
	cont, err := i.ctx.Top().Contract(addr)
	if err != nil {
		return nil, err
	}
	i.conMap[addr] = cont
	return cont, nil
}

func (i *interactor) currentContractContext(Cc *ContractContext, ContAddr common.Address) *ContractContext {
	if Cc.cont == ContAddr {
		Cc.Exec = i.Exec
		return Cc
	}
	return &ContractContext{
		cont: ContAddr,
		from: Cc.cont,
		ctx:  i.ctx,
		Exec: i.Exec,
	}
}

func execMethod(cc *ContractContext, cont Contract, MethodName string, Args []interface{}) ([]interface{}, error) {
	method := reflect.ValueOf(cont.Front()).MethodByName(MethodName)
	if !method.IsValid() {
		return nil, errors.Wrap(ErrNotExistContractMethod, MethodName)
	}
	mt := method.Type()
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Wrap(ErrInvalidMethodArguments, MethodName)
	}
	in := make([]reflect.Value, len(Args)+1)
	in[0] = reflect.ValueOf(cc)
	for idx, arg := range Args {
		rArg := reflect.ValueOf(arg)
		if !rArg.IsValid() || !rArg.Type().AssignableTo(mt.In(idx+1)) {
			return nil, errors.Wrap(ErrInvalidMethodArguments, MethodName)
		}
		in[idx+1] = rArg
	}
	outs := method.Call(in)
	result := []interface{}{}
	for _, out := range outs {
		if out.Type() == errType {
			if !out.IsNil() {
				return nil, out.Interface().(error)
			}
		} else {
			result = append(result, out.Interface())
		}
	}
	return result, nil
}
