package taxedtoken

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

// mapClassifier serves classifications from a fixed table, unknown
// addresses are wallets
type mapClassifier map[common.Address]types.Classification

func (m mapClassifier) Classify(addr common.Address) (types.Classification, error) {
	if cl, has := m[addr]; has {
		return cl, nil
	}
	return types.Wallet(), nil
}

var (
	alice    = common.HexToAddress("0x0000000000000000000000000000000000000001")
	bob      = common.HexToAddress("0x0000000000000000000000000000000000000002")
	proceeds = common.HexToAddress("0x00000000000000000000000000000000000000fe")
	pair     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
)

func TestConditionEvaluate(t *testing.T) {
	rate := amount.MustParseAmount("0.05")

	never := NeverCondition()
	if r, ok := never.Evaluate(types.Wallet()); ok || r != nil {
		t.Fatalf("never condition matched: %v %v", r, ok)
	}

	always := AlwaysCondition(rate)
	r, ok := always.Evaluate(types.Wallet())
	require.True(t, ok)
	assert.True(t, rate.Equal(r))
	_, ok = always.Evaluate(types.ContractInstance(42))
	assert.True(t, ok)

	byCode := ContractCodeCondition([]uint64{3, 42}, rate)
	_, ok = byCode.Evaluate(types.Wallet())
	assert.False(t, ok, "wallet must not match a contract code condition")
	_, ok = byCode.Evaluate(types.ContractInstance(7))
	assert.False(t, ok, "code id outside the set must not match")
	r, ok = byCode.Evaluate(types.ContractInstance(42))
	require.True(t, ok)
	assert.True(t, rate.Equal(r))
}

func TestConditionValidate(t *testing.T) {
	assert.NoError(t, NeverCondition().Validate())
	assert.NoError(t, AlwaysCondition(amount.MustParseAmount("0")).Validate())
	assert.NoError(t, AlwaysCondition(amount.MustParseAmount("1")).Validate())
	assert.Error(t, AlwaysCondition(amount.MustParseAmount("1.000000000000000001")).Validate())
	assert.Error(t, AlwaysCondition(nil).Validate())
	assert.Error(t, TaxCondition{}.Validate(), "empty variant set")
	assert.Error(t, TaxCondition{
		Always: &TaxAlwaysCondition{TaxRate: amount.MustParseAmount("0.1")},
		Never:  &TaxNeverCondition{},
	}.Validate(), "two variants at once")
}

func TestDeductBothSidesTaxed(t *testing.T) {
	cl := mapClassifier{}
	ti := TaxInfo{
		SrcCond:  AlwaysCondition(amount.MustParseAmount("0.05")),
		DstCond:  AlwaysCondition(amount.MustParseAmount("0")),
		Proceeds: proceeds,
	}

	gross := amount.NewAmount(1000, 0)
	net, tax, err := ti.Deduct(cl, alice, bob, gross)
	require.NoError(t, err)
	assert.Equal(t, "950", net.String())
	assert.Equal(t, "50", tax.String())
	assert.True(t, net.Add(tax).Equal(gross), "net + tax must equal gross")
}

func TestDeductAdditiveRates(t *testing.T) {
	cl := mapClassifier{pair: types.ContractInstance(42)}
	ti := TaxInfo{
		SrcCond:  AlwaysCondition(amount.MustParseAmount("0.02")),
		DstCond:  ContractCodeCondition([]uint64{42}, amount.MustParseAmount("0.03")),
		Proceeds: proceeds,
	}

	gross := amount.NewAmount(1000, 0)
	net, tax, err := ti.Deduct(cl, alice, pair, gross)
	require.NoError(t, err)
	assert.Equal(t, "50", tax.String(), "rates add when both sides match")
	assert.Equal(t, "950", net.String())

	// same rule against a wallet recipient leaves the transfer untaxed
	net, tax, err = ti.Deduct(cl, alice, bob, gross)
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
	assert.True(t, net.Equal(gross))
}

func TestDeductCodeSetMismatch(t *testing.T) {
	cl := mapClassifier{pair: types.ContractInstance(7)}
	ti := TaxInfo{
		SrcCond:  AlwaysCondition(amount.MustParseAmount("0.05")),
		DstCond:  ContractCodeCondition([]uint64{3, 42}, amount.MustParseAmount("0.05")),
		Proceeds: proceeds,
	}

	gross := amount.NewAmount(1000, 0)
	net, tax, err := ti.Deduct(cl, alice, pair, gross)
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
	assert.True(t, net.Equal(gross))
}

func TestDeductNeverSide(t *testing.T) {
	cl := mapClassifier{}
	ti := TaxInfo{
		SrcCond:  NeverCondition(),
		DstCond:  AlwaysCondition(amount.MustParseAmount("0.5")),
		Proceeds: proceeds,
	}

	gross := amount.NewAmount(1000, 0)
	net, tax, err := ti.Deduct(cl, alice, bob, gross)
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
	assert.True(t, net.Equal(gross))
}

func TestDeductFloorRounding(t *testing.T) {
	cl := mapClassifier{}
	ti := TaxInfo{
		SrcCond:  AlwaysCondition(amount.MustParseAmount("0.03")),
		DstCond:  AlwaysCondition(amount.MustParseAmount("0")),
		Proceeds: proceeds,
	}

	// 1e-18 of a coin at 3 percent floors to zero tax
	gross := amount.NewAmount(0, 1)
	net, tax, err := ti.Deduct(cl, alice, bob, gross)
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
	assert.True(t, net.Equal(gross))

	// an odd amount keeps conservation under flooring
	gross = amount.NewAmount(0, 33333333)
	net, tax, err = ti.Deduct(cl, alice, bob, gross)
	require.NoError(t, err)
	assert.True(t, net.Add(tax).Equal(gross))
	assert.False(t, tax.IsMinus())
}

func TestDeductProceedsRecipientExempt(t *testing.T) {
	cl := mapClassifier{}
	ti := TaxInfo{
		SrcCond:  AlwaysCondition(amount.MustParseAmount("0.05")),
		DstCond:  AlwaysCondition(amount.MustParseAmount("0")),
		Proceeds: proceeds,
	}

	gross := amount.NewAmount(1000, 0)
	net, tax, err := ti.Deduct(cl, alice, proceeds, gross)
	require.NoError(t, err)
	assert.True(t, tax.IsZero(), "transfers into the proceeds account are exempt")
	assert.True(t, net.Equal(gross))
}

func TestDeductMissingProceeds(t *testing.T) {
	cl := mapClassifier{}
	ti := TaxInfo{
		SrcCond: AlwaysCondition(amount.MustParseAmount("0.05")),
		DstCond: AlwaysCondition(amount.MustParseAmount("0")),
	}

	_, _, err := ti.Deduct(cl, alice, bob, amount.NewAmount(1000, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingProceeds)
}

func TestTaxInfoValidate(t *testing.T) {
	assert.NoError(t, NeverTaxInfo().Validate())

	// taxing rule without proceeds is rejected at write time
	assert.ErrorIs(t, TaxInfo{
		SrcCond: AlwaysCondition(amount.MustParseAmount("0.05")),
		DstCond: AlwaysCondition(amount.MustParseAmount("0")),
	}.Validate(), ErrMissingProceeds)

	// a never side makes proceeds unnecessary
	assert.NoError(t, TaxInfo{
		SrcCond: NeverCondition(),
		DstCond: AlwaysCondition(amount.MustParseAmount("0.05")),
	}.Validate())

	// combined maximum above one is rejected
	assert.ErrorIs(t, TaxInfo{
		SrcCond:  AlwaysCondition(amount.MustParseAmount("0.6")),
		DstCond:  AlwaysCondition(amount.MustParseAmount("0.5")),
		Proceeds: proceeds,
	}.Validate(), ErrInvalidTaxRate)

	assert.NoError(t, TaxInfo{
		SrcCond:  AlwaysCondition(amount.MustParseAmount("0.5")),
		DstCond:  AlwaysCondition(amount.MustParseAmount("0.5")),
		Proceeds: proceeds,
	}.Validate())
}

func TestTaxMapDefaultAndRule(t *testing.T) {
	m := DefaultTaxMap()
	require.NoError(t, m.Validate())
	assert.Equal(t, common.ZeroAddr, m.Admin)

	for _, kind := range []EventKind{EventTransfer, EventSend, EventTransferFrom, EventSendFrom} {
		rule := m.Rule(kind)
		assert.NotNil(t, rule.SrcCond.Never)
		assert.NotNil(t, rule.DstCond.Never)
	}
}

func TestTaxMapJSONShape(t *testing.T) {
	in := []byte(`{
		"on_transfer": {
			"src_cond": {"Always": {"tax_rate": "0.05"}},
			"dst_cond": {"Always": {"tax_rate": "0"}},
			"proceeds": "0x00000000000000000000000000000000000000fe"
		},
		"on_send": {
			"src_cond": {"Never": {}},
			"dst_cond": {"ContractCode": {"code_ids": [3, 42], "tax_rate": "0.1"}},
			"proceeds": "0x00000000000000000000000000000000000000fe"
		},
		"on_transfer_from": {
			"src_cond": {"Never": {}},
			"dst_cond": {"Never": {}},
			"proceeds": "0x0000000000000000000000000000000000000000"
		},
		"on_send_from": {
			"src_cond": {"Never": {}},
			"dst_cond": {"Never": {}},
			"proceeds": "0x0000000000000000000000000000000000000000"
		},
		"admin": "0x0000000000000000000000000000000000000001"
	}`)

	m := &TaxMap{}
	require.NoError(t, json.Unmarshal(in, m))
	require.NoError(t, m.Validate())

	require.NotNil(t, m.OnTransfer.SrcCond.Always)
	assert.Equal(t, "0.05", m.OnTransfer.SrcCond.Always.TaxRate.String())
	assert.Equal(t, proceeds, m.OnTransfer.Proceeds)
	require.NotNil(t, m.OnSend.DstCond.ContractCode)
	assert.Equal(t, []uint64{3, 42}, m.OnSend.DstCond.ContractCode.CodeIDs)
	assert.Equal(t, alice, m.Admin)

	bs, err := json.Marshal(m)
	require.NoError(t, err)
	back := &TaxMap{}
	require.NoError(t, json.Unmarshal(bs, back))
	assert.NotNil(t, back.OnTransfer.SrcCond.Always)
	assert.Nil(t, back.OnTransfer.SrcCond.Never)
	assert.Equal(t, "0.1", back.OnSend.DstCond.ContractCode.TaxRate.String())
}
