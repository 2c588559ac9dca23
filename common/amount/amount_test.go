package amount

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	am, err := ParseAmount("123.456")
	require.NoError(t, err)
	assert.Equal(t, "123.456", am.String())

	am, err = ParseAmount("0.05")
	require.NoError(t, err)
	assert.Equal(t, "0.05", am.String())

	am, err = ParseAmount("1000")
	require.NoError(t, err)
	assert.Equal(t, "1000", am.String())

	_, err = ParseAmount("abc")
	assert.Error(t, err)
	_, err = ParseAmount("1.2.3")
	assert.Error(t, err)
	_, err = ParseAmount("-5")
	assert.Error(t, err)
}

func TestAmountArithmetic(t *testing.T) {
	a := MustParseAmount("10.5")
	b := MustParseAmount("0.5")

	assert.Equal(t, "11", a.Add(b).String())
	assert.Equal(t, "10", a.Sub(b).String())
	assert.Equal(t, "10.5", a.String(), "operations do not mutate the receiver")

	// rate application used by the tax engine
	gross := NewAmount(1000, 0)
	rate := MustParseAmount("0.05")
	tax := gross.Mul(rate).DivC(FractionalMax)
	assert.Equal(t, "50", tax.String())
	assert.Equal(t, "950", gross.Sub(tax).String())
}

func TestAmountCompare(t *testing.T) {
	assert.True(t, NewAmount(0, 0).IsZero())
	assert.True(t, NewAmount(1, 0).IsPlus())
	assert.True(t, NewAmount(1, 0).Sub(NewAmount(2, 0)).IsMinus())
	assert.True(t, MustParseAmount("0.1").Less(MustParseAmount("0.2")))
	assert.True(t, COIN.Equal(NewAmount(1, 0)))
}

func TestAmountJSON(t *testing.T) {
	am := MustParseAmount("0.05")
	bs, err := json.Marshal(am)
	require.NoError(t, err)
	assert.Equal(t, `"0.05"`, string(bs))

	var back Amount
	require.NoError(t, json.Unmarshal([]byte(`"123.456"`), &back))
	assert.Equal(t, "123.456", back.String())

	assert.Error(t, json.Unmarshal([]byte(`0.05`), &back), "amounts are quoted strings")
}

func TestAmountBytesRoundTrip(t *testing.T) {
	am := MustParseAmount("98765.4321")
	back := NewAmountFromBytes(am.Bytes())
	assert.True(t, am.Equal(back))
}
