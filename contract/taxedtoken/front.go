package taxedtoken

import (
	"math/big"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

func (cont *TokenContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *TokenContract
}

func (f *front) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.Transfer(cc, To, Amount)
	return err == nil, err
}

func (f *front) Send(cc *types.ContractContext, To common.Address, Amount *amount.Amount, Msg []byte) (bool, error) {
	err := f.cont.Send(cc, To, Amount, Msg)
	return err == nil, err
}

func (f *front) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.TransferFrom(cc, From, To, Amount)
	return err == nil, err
}

func (f *front) SendFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount, Msg []byte) (bool, error) {
	err := f.cont.SendFrom(cc, From, To, Amount, Msg)
	return err == nil, err
}

func (f *front) Approve(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.Approve(cc, To, Amount)
	return err == nil, err
}

func (f *front) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return f.cont.Mint(cc, To, Amount)
}

func (f *front) Burn(cc *types.ContractContext, am *amount.Amount) error {
	return f.cont.Burn(cc, am)
}

func (f *front) BurnFrom(cc *types.ContractContext, From common.Address, am *amount.Amount) error {
	return f.cont.BurnFrom(cc, From, am)
}

func (f *front) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	return f.cont.SetMinter(cc, To, Is)
}

func (f *front) SetTaxMap(cc *types.ContractContext, TaxMapJSON []byte) error {
	return f.cont.SetTaxMap(cc, TaxMapJSON)
}

func (f *front) SetTaxAdmin(cc *types.ContractContext, Admin common.Address) error {
	return f.cont.SetTaxAdmin(cc, Admin)
}

func (f *front) SetWhaleInfo(cc *types.ContractContext, WhaleInfoJSON []byte) error {
	return f.cont.SetWhaleInfo(cc, WhaleInfoJSON)
}

func (f *front) Migrate(cc *types.ContractContext, TaxMapJSON []byte) error {
	return f.cont.Migrate(cc, TaxMapJSON)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Name(cc types.ContractLoader) string {
	return f.cont.Name(cc)
}

func (f *front) Symbol(cc types.ContractLoader) string {
	return f.cont.Symbol(cc)
}

func (f *front) TotalSupply(cc types.ContractLoader) *amount.Amount {
	return f.cont.TotalSupply(cc)
}

func (f *front) Decimals(cc types.ContractLoader) *big.Int {
	return f.cont.Decimals(cc)
}

func (f *front) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	return f.cont.BalanceOf(cc, from)
}

func (f *front) IsMinter(cc types.ContractLoader, addr common.Address) bool {
	return f.cont.IsMinter(cc, addr)
}

func (f *front) MintCap(cc types.ContractLoader) *amount.Amount {
	return f.cont.MintCap(cc)
}

func (f *front) Allowance(cc types.ContractLoader, _owner common.Address, _spender common.Address) *amount.Amount {
	return f.cont.Allowance(cc, _owner, _spender)
}

func (f *front) TaxMap(cc types.ContractLoader) (*TaxMap, error) {
	return f.cont.TaxMap(cc)
}

func (f *front) WhaleInfo(cc types.ContractLoader) (*WhaleInfo, error) {
	return f.cont.WhaleInfo(cc)
}

func (f *front) Version(cc types.ContractLoader) string {
	return f.cont.Version(cc)
}
