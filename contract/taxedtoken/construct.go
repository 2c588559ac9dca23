package taxedtoken

import (
	"io"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/common/bin"
)

// InitialBalance is one funded account of a fresh token
type InitialBalance struct {
	Address common.Address
	Amount  *amount.Amount
}

// TokenContractConstruction carries the deploy arguments. InitialBalances
// keeps its wire order and must not name an address twice. TaxMapJSON and
// WhaleInfoJSON hold the documented JSON shapes and may be empty, in which
// case the inert defaults are installed.
type TokenContractConstruction struct {
	Name            string
	Symbol          string
	InitialBalances []InitialBalance
	Minter          common.Address
	MintCap         *amount.Amount
	TaxMapJSON      []byte
	WhaleInfoJSON   []byte
}

func (s *TokenContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, uint32(len(s.InitialBalances))); err != nil {
		return sum, err
	}
	for _, v := range s.InitialBalances {
		if sum, err := sw.Address(w, v.Address); err != nil {
			return sum, err
		}
		if sum, err := sw.Amount(w, v.Amount); err != nil {
			return sum, err
		}
	}
	if sum, err := sw.Address(w, s.Minter); err != nil {
		return sum, err
	}
	mintCap := s.MintCap
	if mintCap == nil {
		mintCap = amount.NewAmount(0, 0)
	}
	if sum, err := sw.Amount(w, mintCap); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, s.TaxMapJSON); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, s.WhaleInfoJSON); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *TokenContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	if Len, sum, err := sr.GetUint32(r); err != nil {
		return sum, err
	} else {
		s.InitialBalances = make([]InitialBalance, 0, Len)
		for i := uint32(0); i < Len; i++ {
			var addr common.Address
			if sum, err := sr.Address(r, &addr); err != nil {
				return sum, err
			}
			var am *amount.Amount
			if sum, err := sr.Amount(r, &am); err != nil {
				return sum, err
			}
			s.InitialBalances = append(s.InitialBalances, InitialBalance{Address: addr, Amount: am})
		}
	}
	if sum, err := sr.Address(r, &s.Minter); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.MintCap); err != nil {
		return sum, err
	}
	if sum, err := sr.Bytes(r, &s.TaxMapJSON); err != nil {
		return sum, err
	}
	if sum, err := sr.Bytes(r, &s.WhaleInfoJSON); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
