package taxedtoken

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragwuerdig/cw20-taxed/common/amount"
)

func TestConstructionRoundTrip(t *testing.T) {
	in := &TokenContractConstruction{
		Name:   "Taxed Token",
		Symbol: "TXD",
		InitialBalances: []InitialBalance{
			{Address: alice, Amount: amount.MustParseAmount("1000")},
			{Address: bob, Amount: amount.MustParseAmount("0.5")},
		},
		Minter:     alice,
		MintCap:    amount.MustParseAmount("5000"),
		TaxMapJSON: []byte(`{"admin":"0x0000000000000000000000000000000000000001"}`),
	}

	bf := &bytes.Buffer{}
	_, err := in.WriteTo(bf)
	require.NoError(t, err)

	out := &TokenContractConstruction{}
	_, err = out.ReadFrom(bytes.NewReader(bf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Symbol, out.Symbol)
	assert.Equal(t, in.Minter, out.Minter)
	assert.True(t, in.MintCap.Equal(out.MintCap))
	assert.Equal(t, in.TaxMapJSON, out.TaxMapJSON)
	require.Len(t, out.InitialBalances, 2)
	assert.Equal(t, alice, out.InitialBalances[0].Address)
	assert.True(t, out.InitialBalances[0].Amount.Equal(amount.MustParseAmount("1000")))
	assert.Equal(t, bob, out.InitialBalances[1].Address)
	assert.True(t, out.InitialBalances[1].Amount.Equal(amount.MustParseAmount("0.5")))
}
