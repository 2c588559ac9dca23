package taxedtoken

import (
	"github.com/pkg/errors"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
)

// WhaleInfo caps how much of the total supply a single account may hold.
// Threshold is the fraction of total supply allowed, whitelisted accounts
// bypass the cap.
type WhaleInfo struct {
	Threshold *amount.Amount   `json:"threshold"`
	Whitelist []common.Address `json:"whitelist"`
	Admin     common.Address   `json:"admin"`
}

func (wi *WhaleInfo) Validate() error {
	if wi.Threshold == nil || wi.Threshold.Int == nil {
		return errors.New("threshold must be between 0 and 1")
	}
	if wi.Threshold.IsMinus() || amount.COIN.Less(wi.Threshold) {
		return errors.New("threshold must be between 0 and 1")
	}
	return nil
}

func (wi *WhaleInfo) IsAllowed(addr common.Address) bool {
	for _, a := range wi.Whitelist {
		if a == addr {
			return true
		}
	}
	return false
}

// AssertNoWhale fails when the account would end up holding more than the
// allowed share of the total supply
func (wi *WhaleInfo) AssertNoWhale(addr common.Address, holding *amount.Amount, totalSupply *amount.Amount) error {
	if wi.IsAllowed(addr) {
		return nil
	}
	maxAllowed := totalSupply.Mul(wi.Threshold).DivC(amount.FractionalMax)
	if maxAllowed.Less(holding) {
		return errors.Wrapf(ErrWhaleLimit, "addr %v max allowed %v tx results in %v", addr.String(), maxAllowed.String(), holding.String())
	}
	return nil
}
