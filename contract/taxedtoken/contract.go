package taxedtoken

import (
	"bytes"
	"encoding/json"
	"log"
	"math/big"

	"github.com/pkg/errors"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if len(data.Name) == 0 || len(data.Symbol) == 0 {
		return errors.New("token name and symbol required")
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	for _, v := range data.InitialBalances {
		if len(cc.AccountData(v.Address, []byte{tagTokenAmount})) > 0 {
			return errors.Errorf("duplicate initial balance address %v", v.Address.String())
		}
		if err := cont.addBalance(cc, v.Address, v.Amount); err != nil {
			return err
		}
	}
	if data.Minter != common.ZeroAddr {
		cc.SetAccountData(data.Minter, []byte{tagTokenMinter}, []byte{1})
	}
	if data.MintCap != nil && data.MintCap.IsPlus() {
		if data.MintCap.Less(cont.TotalSupply(cc)) {
			return errors.New("initial supply greater than cap")
		}
		cc.SetContractData([]byte{tagTokenMintCap}, data.MintCap.Bytes())
	}

	taxMap := DefaultTaxMap()
	if len(data.TaxMapJSON) > 0 {
		taxMap = &TaxMap{}
		if err := json.Unmarshal(data.TaxMapJSON, taxMap); err != nil {
			return errors.Wrap(ErrInvalidTaxMap, err.Error())
		}
	}
	if err := cont.storeTaxMap(cc, taxMap); err != nil {
		return err
	}

	if len(data.WhaleInfoJSON) > 0 {
		wi := &WhaleInfo{}
		if err := json.Unmarshal(data.WhaleInfoJSON, wi); err != nil {
			return err
		}
		if err := cont.storeWhaleInfo(cc, wi); err != nil {
			return err
		}
	}

	cc.SetContractData([]byte{tagVersion}, []byte(ContractVersion))
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr)

	bal = bal.Add(am)

	cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())

	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	total := amount.NewAmountFromBytes(bs).Add(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())

	return nil
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Wrapf(ErrInsufficientFunds, "amount %v balance %v addr %v", am.String(), bal.String(), addr.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())
	}

	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	total := amount.NewAmountFromBytes(bs).Sub(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())

	return nil
}

func (cont *TokenContract) storeTaxMap(cc *types.ContractContext, m *TaxMap) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bs, err := json.Marshal(m)
	if err != nil {
		return err
	}
	cc.SetContractData([]byte{tagTaxMap}, bs)
	return nil
}

func (cont *TokenContract) loadTaxMap(cc types.ContractLoader) (*TaxMap, error) {
	bs := cc.ContractData([]byte{tagTaxMap})
	if len(bs) == 0 {
		return DefaultTaxMap(), nil
	}
	m := &TaxMap{}
	if err := json.Unmarshal(bs, m); err != nil {
		return nil, errors.Wrap(ErrInvalidTaxMap, err.Error())
	}
	return m, nil
}

func (cont *TokenContract) storeWhaleInfo(cc *types.ContractContext, wi *WhaleInfo) error {
	if err := wi.Validate(); err != nil {
		return err
	}
	bs, err := json.Marshal(wi)
	if err != nil {
		return err
	}
	cc.SetContractData([]byte{tagWhaleInfo}, bs)
	return nil
}

func (cont *TokenContract) loadWhaleInfo(cc types.ContractLoader) (*WhaleInfo, error) {
	bs := cc.ContractData([]byte{tagWhaleInfo})
	if len(bs) == 0 {
		return nil, nil
	}
	wi := &WhaleInfo{}
	if err := json.Unmarshal(bs, wi); err != nil {
		return nil, err
	}
	return wi, nil
}

// taxedTransfer is the single balance-moving path behind the four transfer
// endpoints. It debits the full gross amount from the sender, credits the
// net to the recipient and the tax to the proceeds account, then enforces
// the holding cap on every credited account. Every state write happens inside the
// caller's snapshot so a failure anywhere leaves no partial effects.
func (cont *TokenContract) taxedTransfer(cc *types.ContractContext, kind EventKind, sender common.Address, To common.Address, Amount *amount.Amount) (*amount.Amount, error) {
	if sender == common.ZeroAddr {
		return nil, errors.New("Token: TRANSFER_FROM_ZEROADDRESS")
	}
	if To == common.ZeroAddr {
		return nil, errors.New("Token: TRANSFER_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return nil, errors.New("minus amount")
	}

	fromBalance := cont.BalanceOf(cc, sender)
	if fromBalance.Less(Amount) {
		return nil, errors.Wrapf(ErrInsufficientFunds, "from %v to %v balance %v amount %v", sender.String(), To.String(), fromBalance.String(), Amount.String())
	}
	if Amount.IsZero() {
		return Amount.Clone(), nil
	}

	taxMap, err := cont.loadTaxMap(cc)
	if err != nil {
		return nil, err
	}
	rule := taxMap.Rule(kind)
	net, tax, err := rule.Deduct(cc, sender, To, Amount)
	if err != nil {
		return nil, err
	}

	if err := cont.subBalance(cc, sender, Amount); err != nil {
		return nil, err
	}
	if net.IsPlus() {
		if err := cont.addBalance(cc, To, net); err != nil {
			return nil, err
		}
	}
	if tax.IsPlus() {
		if err := cont.addBalance(cc, rule.Proceeds, tax); err != nil {
			return nil, err
		}
	}

	wi, err := cont.loadWhaleInfo(cc)
	if err != nil {
		return nil, err
	}
	if wi != nil {
		if err := wi.AssertNoWhale(To, cont.BalanceOf(cc, To), cont.TotalSupply(cc)); err != nil {
			return nil, err
		}
		if tax.IsPlus() {
			if err := wi.AssertNoWhale(rule.Proceeds, cont.BalanceOf(cc, rule.Proceeds), cont.TotalSupply(cc)); err != nil {
				return nil, err
			}
		}
	}
	return net, nil
}

// spendAllowance checks and reduces the owner's allowance toward the
// caller by the full gross amount, tax included
func (cont *TokenContract) spendAllowance(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) error {
	allowedValue := cont.Allowance(cc, owner, spender)
	if allowedValue.Less(Amount) {
		return errors.Wrapf(ErrInsufficientAllowance, "owner %v spender %v allowance %v amount %v", owner.String(), spender.String(), allowedValue.String(), Amount.String())
	}
	nAllow := allowedValue.Sub(Amount)
	if nAllow.IsZero() {
		cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), nil)
	} else {
		cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), nAllow.Bytes())
	}
	return nil
}

// notifyReceiver runs the recipient contract's receive hook with the net
// amount actually credited
func (cont *TokenContract) notifyReceiver(cc *types.ContractContext, sender common.Address, To common.Address, net *amount.Amount, Msg []byte) error {
	if !cc.IsContract(To) {
		return errors.Errorf("send target %v is not a contract", To.String())
	}
	_, err := cc.Exec(cc, To, "OnTokenReceived", []interface{}{sender, net, Msg})
	return err
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	_, err := cont.taxedTransfer(cc, EventTransfer, cc.From(), To, Amount)
	return err
}

func (cont *TokenContract) Send(cc *types.ContractContext, To common.Address, Amount *amount.Amount, Msg []byte) error {
	net, err := cont.taxedTransfer(cc, EventSend, cc.From(), To, Amount)
	if err != nil {
		return err
	}
	return cont.notifyReceiver(cc, cc.From(), To, net, Msg)
}

func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if err := cont.spendAllowance(cc, From, cc.From(), Amount); err != nil {
		return err
	}
	_, err := cont.taxedTransfer(cc, EventTransferFrom, From, To, Amount)
	return err
}

func (cont *TokenContract) SendFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount, Msg []byte) error {
	if err := cont.spendAllowance(cc, From, cc.From(), Amount); err != nil {
		return err
	}
	net, err := cont.taxedTransfer(cc, EventSendFrom, From, To, Amount)
	if err != nil {
		return err
	}
	return cont.notifyReceiver(cc, From, To, net, Msg)
}

func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.New("Token: APPROVE_FROM_ZEROADDRESS")
	}
	if spender == common.ZeroAddr {
		return errors.New("Token: APPROVE_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("Token: APPROVE_NEGATIVE_AMOUNT")
	}
	cont._approve(cc, cc.From(), spender, Amount)
	return nil
}

func (cont *TokenContract) _approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) {
	cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), Amount.Bytes())
}

func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	isMinter := cont.IsMinter(cc, cc.From())
	if cc.From() != cont.Master() && !isMinter {
		return errors.Wrap(ErrUnauthorized, cc.From().String()+": not token minter")
	}
	if !Amount.IsPlus() {
		return nil
	}
	cap := cont.MintCap(cc)
	if cap.IsPlus() && cap.Less(cont.TotalSupply(cc).Add(Amount)) {
		return errors.New("cannot exceed cap")
	}
	return cont.addBalance(cc, To, Amount)
}

func (cont *TokenContract) Burn(cc *types.ContractContext, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.New("minus amount")
	}
	return cont.subBalance(cc, cc.From(), am)
}

func (cont *TokenContract) BurnFrom(cc *types.ContractContext, From common.Address, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.New("minus amount")
	}
	if err := cont.spendAllowance(cc, From, cc.From(), am); err != nil {
		return err
	}
	return cont.subBalance(cc, From, am)
}

func (cont *TokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if cc.From() != cont.Master() {
		return errors.Wrap(ErrUnauthorized, "not token master")
	}

	isMinter := cont.IsMinter(cc, To)

	if Is {
		if isMinter {
			return errors.New("already token minter")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, []byte{1})
	} else {
		if !isMinter {
			return errors.New("not token minter")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, nil)
	}
	return nil
}

// SetTaxMap replaces the whole tax configuration. Only the current tax
// admin may call it. An empty payload resets to the inert default while
// keeping the current admin.
func (cont *TokenContract) SetTaxMap(cc *types.ContractContext, TaxMapJSON []byte) error {
	curr, err := cont.loadTaxMap(cc)
	if err != nil {
		return err
	}
	admin := cont.taxAdmin(cc, curr)
	if admin == common.ZeroAddr || cc.From() != admin {
		log.Println("err not tax admin", cc.From())
		return errors.Wrap(ErrUnauthorized, "not tax admin")
	}

	var next *TaxMap
	if len(TaxMapJSON) == 0 {
		next = DefaultTaxMap()
		next.Admin = curr.Admin
	} else {
		next = &TaxMap{}
		if err := json.Unmarshal(TaxMapJSON, next); err != nil {
			return errors.Wrap(ErrInvalidTaxMap, err.Error())
		}
	}
	if err := cont.storeTaxMap(cc, next); err != nil {
		return err
	}
	log.Println("SetTaxMap", next.Admin)
	return nil
}

// SetTaxAdmin hands tax configuration control to another account. Passing
// the zero address locks the tax map permanently.
func (cont *TokenContract) SetTaxAdmin(cc *types.ContractContext, Admin common.Address) error {
	curr, err := cont.loadTaxMap(cc)
	if err != nil {
		return err
	}
	currAdmin := cont.taxAdmin(cc, curr)
	if currAdmin == common.ZeroAddr || cc.From() != currAdmin {
		return errors.Wrap(ErrUnauthorized, "not tax admin")
	}
	curr.Admin = Admin
	return cont.storeTaxMap(cc, curr)
}

// taxAdmin resolves the account allowed to change the tax map. The master
// governs only while no map was ever stored; once one exists its admin
// field is authoritative, so a cleared admin can never be a caller and the
// map stays frozen.
func (cont *TokenContract) taxAdmin(cc types.ContractLoader, m *TaxMap) common.Address {
	if len(cc.ContractData([]byte{tagTaxMap})) == 0 {
		return cont.Master()
	}
	return m.Admin
}

func (cont *TokenContract) SetWhaleInfo(cc *types.ContractContext, WhaleInfoJSON []byte) error {
	curr, err := cont.loadWhaleInfo(cc)
	if err != nil {
		return err
	}
	admin := cont.Master()
	if curr != nil && curr.Admin != common.ZeroAddr {
		admin = curr.Admin
	}
	if cc.From() != admin {
		return errors.Wrap(ErrUnauthorized, "not whale admin")
	}
	if len(WhaleInfoJSON) == 0 {
		cc.SetContractData([]byte{tagWhaleInfo}, nil)
		return nil
	}
	wi := &WhaleInfo{}
	if err := json.Unmarshal(WhaleInfoJSON, wi); err != nil {
		return err
	}
	return cont.storeWhaleInfo(cc, wi)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) TotalSupply(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) Decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(amount.FractionalCount)
}

func (cont *TokenContract) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	bs := cc.AccountData(from, []byte{tagTokenAmount})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) IsMinter(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagTokenMinter})
	if len(bs) == 1 && bs[0] == 1 {
		return true
	}
	return false
}

func (cont *TokenContract) MintCap(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagTokenMintCap})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) Allowance(cc types.ContractLoader, _owner common.Address, _spender common.Address) *amount.Amount {
	bs := cc.AccountData(_owner, MakeAllowanceTokenKey(_spender))
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) TaxMap(cc types.ContractLoader) (*TaxMap, error) {
	return cont.loadTaxMap(cc)
}

func (cont *TokenContract) WhaleInfo(cc types.ContractLoader) (*WhaleInfo, error) {
	return cont.loadWhaleInfo(cc)
}

func (cont *TokenContract) Version(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagVersion}))
}
