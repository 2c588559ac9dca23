package util

import (
	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

// TestContext drives deployed contracts over an in-memory state context,
// one interactor call per simulated transaction
type TestContext struct {
	Ctx *types.Context
}

func NewTestContext() *TestContext {
	return &TestContext{
		Ctx: types.NewEmptyContext(),
	}
}

// Exec calls the contract method as the given sender. The interactor
// snapshots the state, so a failed call leaves nothing behind.
func (tc *TestContext) Exec(from common.Address, contAddr common.Address, methodName string, args ...interface{}) ([]interface{}, error) {
	cont, err := tc.Ctx.Contract(contAddr)
	if err != nil {
		return nil, err
	}
	inter := types.NewInteractor(tc.Ctx)
	defer inter.Distroy()
	cc := tc.Ctx.ContractContext(cont, from)
	if args == nil {
		args = []interface{}{}
	}
	return inter.Exec(cc, contAddr, methodName, args)
}

// MustExec is Exec that panics on error, for fixture setup
func (tc *TestContext) MustExec(from common.Address, contAddr common.Address, methodName string, args ...interface{}) []interface{} {
	is, err := tc.Exec(from, contAddr, methodName, args...)
	if err != nil {
		panic(err)
	}
	return is
}

// ReadCC returns a contract context for direct reader calls in tests
func (tc *TestContext) ReadCC(contAddr common.Address) *types.ContractContext {
	cont, err := tc.Ctx.Contract(contAddr)
	if err != nil {
		panic(err)
	}
	return tc.Ctx.ContractContext(cont, Admin)
}
