package util

import (
	"bytes"
	"io"
	"reflect"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/common/bin"
	"github.com/fragwuerdig/cw20-taxed/common/hash"
	"github.com/fragwuerdig/cw20-taxed/contract/taxedtoken"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

// ContractClassID derives the class id of a contract type the same way
// registration does
func ContractClassID(contType interface{}) uint64 {
	rt := reflect.TypeOf(contType)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	name := rt.Name()
	if pkgPath := rt.PkgPath(); len(pkgPath) > 0 {
		name = pkgPath + "." + name
	}
	h := hash.Hash([]byte(name))
	return bin.Uint64(h[len(h)-8:])
}

func (tc *TestContext) DeployContract(contType interface{}, contArgs io.WriterTo) common.Address {
	classID := ContractClassID(contType)

	bf := &bytes.Buffer{}
	if _, err := contArgs.WriteTo(bf); err != nil {
		panic(err)
	}

	sn := tc.Ctx.Snapshot()
	cont, err := tc.Ctx.DeployContract(Admin, classID, bf.Bytes())
	if err != nil {
		tc.Ctx.Revert(sn)
		panic(err)
	}
	tc.Ctx.Commit(sn)
	return cont.Address()
}

// EmptyConstruction is the deploy payload of contracts without arguments
type EmptyConstruction struct{}

func (s *EmptyConstruction) WriteTo(w io.Writer) (int64, error) {
	return 0, nil
}

// MakeToken deploys a token without tax rules, the whole supply on Admin
func (tc *TestContext) MakeToken(name string, symbol string, amt string) common.Address {
	return tc.MakeTaxedToken(name, symbol, amt, nil)
}

// MakeTaxedToken deploys a token with the given tax map JSON installed
func (tc *TestContext) MakeTaxedToken(name string, symbol string, amt string, taxMapJSON []byte) common.Address {
	tokenContArgs := &taxedtoken.TokenContractConstruction{
		Name:   name,
		Symbol: symbol,
		InitialBalances: []taxedtoken.InitialBalance{
			{Address: Admin, Amount: amount.MustParseAmount(amt)},
		},
		TaxMapJSON: taxMapJSON,
	}
	tokenContType := &taxedtoken.TokenContract{}

	return tc.DeployContract(tokenContType, tokenContArgs)
}

var _ types.Contract = (*taxedtoken.TokenContract)(nil)
