package apiserver

import (
	"fmt"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/contract/taxedtoken"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

// TokenAPI exposes the read surface of a deployed token over json rpc.
// Query results are cached per state generation, so repeated reads of an
// unchanged context never touch contract storage twice.
type TokenAPI struct {
	ctx   *types.Context
	token common.Address
	cache gcache.Cache
}

type tokenInfoResult struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    int64  `json:"decimals"`
	TotalSupply string `json:"total_supply"`
}

// SetupTokenAPI registers the taxedtoken query methods on the server
func SetupTokenAPI(api *APIServer, ctx *types.Context, token common.Address) (*TokenAPI, error) {
	s, err := api.JRPC("taxedtoken")
	if err != nil {
		return nil, err
	}
	t := &TokenAPI{
		ctx:   ctx,
		token: token,
		cache: gcache.New(500).LRU().Build(),
	}

	s.Set("tokenInfo", func(ID interface{}, arg *Argument) (interface{}, error) {
		return t.cached("tokenInfo", func(cont *taxedtoken.TokenContract, cc *types.ContractContext) (interface{}, error) {
			return &tokenInfoResult{
				Name:        cont.Name(cc),
				Symbol:      cont.Symbol(cc),
				Decimals:    cont.Decimals(cc).Int64(),
				TotalSupply: cont.TotalSupply(cc).String(),
			}, nil
		})
	})
	s.Set("balanceOf", func(ID interface{}, arg *Argument) (interface{}, error) {
		addr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return t.cached("balanceOf:"+addr.String(), func(cont *taxedtoken.TokenContract, cc *types.ContractContext) (interface{}, error) {
			return cont.BalanceOf(cc, addr).String(), nil
		})
	})
	s.Set("allowance", func(ID interface{}, arg *Argument) (interface{}, error) {
		owner, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		spender, err := arg.Address(1)
		if err != nil {
			return nil, err
		}
		return t.cached("allowance:"+owner.String()+":"+spender.String(), func(cont *taxedtoken.TokenContract, cc *types.ContractContext) (interface{}, error) {
			return cont.Allowance(cc, owner, spender).String(), nil
		})
	})
	s.Set("taxMap", func(ID interface{}, arg *Argument) (interface{}, error) {
		return t.cached("taxMap", func(cont *taxedtoken.TokenContract, cc *types.ContractContext) (interface{}, error) {
			return cont.TaxMap(cc)
		})
	})
	s.Set("whaleInfo", func(ID interface{}, arg *Argument) (interface{}, error) {
		return t.cached("whaleInfo", func(cont *taxedtoken.TokenContract, cc *types.ContractContext) (interface{}, error) {
			return cont.WhaleInfo(cc)
		})
	})
	s.Set("version", func(ID interface{}, arg *Argument) (interface{}, error) {
		return t.cached("version", func(cont *taxedtoken.TokenContract, cc *types.ContractContext) (interface{}, error) {
			return cont.Version(cc), nil
		})
	})
	return t, nil
}

func (t *TokenAPI) cached(key string, fn func(cont *taxedtoken.TokenContract, cc *types.ContractContext) (interface{}, error)) (interface{}, error) {
	genKey := fmt.Sprintf("%v:%s", t.ctx.Hash(), key)
	if v, err := t.cache.Get(genKey); err == nil {
		return v, nil
	}

	cont, err := t.ctx.Contract(t.token)
	if err != nil {
		return nil, err
	}
	token, ok := cont.(*taxedtoken.TokenContract)
	if !ok {
		return nil, errors.Errorf("%v is not a token contract", t.token.String())
	}
	cc := t.ctx.ContractContext(cont, common.ZeroAddr)

	v, err := fn(token, cc)
	if err != nil {
		return nil, err
	}
	if err := t.cache.Set(genKey, v); err != nil {
		return nil, err
	}
	return v, nil
}
