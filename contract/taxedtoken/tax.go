package taxedtoken

import (
	"github.com/pkg/errors"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

// EventKind selects which transfer endpoint a tax rule is bound to
type EventKind uint8

const (
	EventTransfer EventKind = iota
	EventSend
	EventTransferFrom
	EventSendFrom
)

type TaxNeverCondition struct{}

type TaxAlwaysCondition struct {
	TaxRate *amount.Amount `json:"tax_rate"`
}

type TaxContractCodeCondition struct {
	CodeIDs []uint64       `json:"code_ids"`
	TaxRate *amount.Amount `json:"tax_rate"`
}

// TaxCondition is a closed three-way variant. Exactly one of the fields is
// non-nil; the JSON shape is the variant name wrapping its body, e.g.
// {"Always":{"tax_rate":"0.05"}} or {"Never":{}}.
type TaxCondition struct {
	Always       *TaxAlwaysCondition       `json:"Always,omitempty"`
	Never        *TaxNeverCondition        `json:"Never,omitempty"`
	ContractCode *TaxContractCodeCondition `json:"ContractCode,omitempty"`
}

func AlwaysCondition(rate *amount.Amount) TaxCondition {
	return TaxCondition{Always: &TaxAlwaysCondition{TaxRate: rate}}
}

func NeverCondition() TaxCondition {
	return TaxCondition{Never: &TaxNeverCondition{}}
}

func ContractCodeCondition(codeIDs []uint64, rate *amount.Amount) TaxCondition {
	return TaxCondition{ContractCode: &TaxContractCodeCondition{CodeIDs: codeIDs, TaxRate: rate}}
}

// Evaluate returns the contributing rate of the condition for the
// classification. The second return is false when the condition does not
// hold for the address, which makes the whole rule tax-free.
func (c TaxCondition) Evaluate(cl types.Classification) (*amount.Amount, bool) {
	switch {
	case c.Never != nil:
		return nil, false
	case c.Always != nil:
		return c.Always.TaxRate, true
	case c.ContractCode != nil:
		if !cl.IsContract {
			return nil, false
		}
		for _, id := range c.ContractCode.CodeIDs {
			if id == cl.CodeID {
				return c.ContractCode.TaxRate, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// maxRate returns the largest rate the condition can ever contribute
func (c TaxCondition) maxRate() *amount.Amount {
	switch {
	case c.Always != nil:
		return c.Always.TaxRate
	case c.ContractCode != nil:
		return c.ContractCode.TaxRate
	default:
		return amount.NewAmount(0, 0)
	}
}

// canMatch reports whether any address can satisfy the condition
func (c TaxCondition) canMatch() bool {
	return c.Never == nil
}

func (c TaxCondition) Validate() error {
	count := 0
	if c.Always != nil {
		count++
	}
	if c.Never != nil {
		count++
	}
	if c.ContractCode != nil {
		count++
	}
	if count != 1 {
		return errors.WithStack(ErrInvalidTaxCondition)
	}
	if c.Never != nil {
		return nil
	}
	rate := c.maxRate()
	if rate == nil || rate.Int == nil {
		return errors.WithStack(ErrInvalidTaxRate)
	}
	if rate.IsMinus() || amount.COIN.Less(rate) {
		return errors.WithStack(ErrInvalidTaxRate)
	}
	return nil
}

// TaxInfo binds a source-side and a destination-side condition to the
// account receiving the deducted tax
type TaxInfo struct {
	SrcCond  TaxCondition   `json:"src_cond"`
	DstCond  TaxCondition   `json:"dst_cond"`
	Proceeds common.Address `json:"proceeds"`
}

func NeverTaxInfo() TaxInfo {
	return TaxInfo{
		SrcCond: NeverCondition(),
		DstCond: NeverCondition(),
	}
}

// Validate rejects the rule when a condition is malformed, when the two
// contributing rates could combine above 1, or when the rule can tax but
// routes proceeds nowhere. All of this runs at tax-map-write time so the
// transfer path never has to resolve a malformed rule.
func (ti TaxInfo) Validate() error {
	if err := ti.SrcCond.Validate(); err != nil {
		return err
	}
	if err := ti.DstCond.Validate(); err != nil {
		return err
	}
	if !ti.SrcCond.canMatch() || !ti.DstCond.canMatch() {
		return nil
	}
	combined := ti.SrcCond.maxRate().Add(ti.DstCond.maxRate())
	if amount.COIN.Less(combined) {
		return errors.WithStack(ErrInvalidTaxRate)
	}
	if ti.Proceeds == common.ZeroAddr {
		return errors.WithStack(ErrMissingProceeds)
	}
	return nil
}

// Deduct splits the gross amount into the net amount for the recipient and
// the tax for the proceeds account. The transfer is taxed only when both
// sides hold; the effective rate is the sum of the two contributing rates
// and the tax is floored, so net + tax always equals gross.
func (ti TaxInfo) Deduct(cl types.Classifier, sender common.Address, recipient common.Address, gross *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	if gross.IsMinus() {
		return nil, nil, errors.Errorf("invalid transfer amount %v", gross.String())
	}
	srcClass, err := cl.Classify(sender)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "classify sender %v", sender.String())
	}
	dstClass, err := cl.Classify(recipient)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "classify recipient %v", recipient.String())
	}
	srcRate, srcTaxed := ti.SrcCond.Evaluate(srcClass)
	dstRate, dstTaxed := ti.DstCond.Evaluate(dstClass)
	if !srcTaxed || !dstTaxed || recipient == ti.Proceeds {
		return gross.Clone(), amount.NewAmount(0, 0), nil
	}
	rate := srcRate.Add(dstRate)
	tax := gross.Mul(rate).DivC(amount.FractionalMax)
	net := gross.Sub(tax)
	if tax.IsPlus() && ti.Proceeds == common.ZeroAddr {
		return nil, nil, errors.WithStack(ErrMissingProceeds)
	}
	return net, tax, nil
}

// TaxMap is the whole mutable tax configuration. One rule per transfer
// endpoint, always all four, plus the only account allowed to replace it.
type TaxMap struct {
	OnTransfer     TaxInfo        `json:"on_transfer"`
	OnSend         TaxInfo        `json:"on_send"`
	OnTransferFrom TaxInfo        `json:"on_transfer_from"`
	OnSendFrom     TaxInfo        `json:"on_send_from"`
	Admin          common.Address `json:"admin"`
}

// DefaultTaxMap returns the inert map: every rule Never/Never
func DefaultTaxMap() *TaxMap {
	return &TaxMap{
		OnTransfer:     NeverTaxInfo(),
		OnSend:         NeverTaxInfo(),
		OnTransferFrom: NeverTaxInfo(),
		OnSendFrom:     NeverTaxInfo(),
	}
}

// Rule returns the rule bound to the event kind
func (m *TaxMap) Rule(kind EventKind) TaxInfo {
	switch kind {
	case EventSend:
		return m.OnSend
	case EventTransferFrom:
		return m.OnTransferFrom
	case EventSendFrom:
		return m.OnSendFrom
	default:
		return m.OnTransfer
	}
}

func (m *TaxMap) Validate() error {
	if err := m.OnTransfer.Validate(); err != nil {
		return errors.Wrap(ErrInvalidTaxMap, err.Error())
	}
	if err := m.OnSend.Validate(); err != nil {
		return errors.Wrap(ErrInvalidTaxMap, err.Error())
	}
	if err := m.OnTransferFrom.Validate(); err != nil {
		return errors.Wrap(ErrInvalidTaxMap, err.Error())
	}
	if err := m.OnSendFrom.Validate(); err != nil {
		return errors.Wrap(ErrInvalidTaxMap, err.Error())
	}
	return nil
}
