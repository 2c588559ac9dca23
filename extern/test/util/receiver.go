package util

import (
	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/amount"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

var (
	tagReceivedFrom   = byte(0x01)
	tagReceivedAmount = byte(0x02)
	tagReceivedMsg    = byte(0x03)
)

// ReceiverContract records the last token delivery it was notified of.
// Tests deploy it as the target of Send and SendFrom.
type ReceiverContract struct {
	addr   common.Address
	master common.Address
}

func (cont *ReceiverContract) Address() common.Address {
	return cont.addr
}

func (cont *ReceiverContract) Master() common.Address {
	return cont.master
}

func (cont *ReceiverContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *ReceiverContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	return nil
}

func (cont *ReceiverContract) OnTokenReceived(cc *types.ContractContext, From common.Address, Amount *amount.Amount, Msg []byte) error {
	cc.SetContractData([]byte{tagReceivedFrom}, From[:])
	cc.SetContractData([]byte{tagReceivedAmount}, Amount.Bytes())
	cc.SetContractData([]byte{tagReceivedMsg}, Msg)
	return nil
}

func (cont *ReceiverContract) ReceivedFrom(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagReceivedFrom}))
}

func (cont *ReceiverContract) ReceivedAmount(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagReceivedAmount}))
}

func (cont *ReceiverContract) ReceivedMsg(cc types.ContractLoader) []byte {
	return cc.ContractData([]byte{tagReceivedMsg})
}

func (cont *ReceiverContract) Front() interface{} {
	return &receiverFront{cont: cont}
}

type receiverFront struct {
	cont *ReceiverContract
}

func (f *receiverFront) OnTokenReceived(cc *types.ContractContext, From common.Address, Amount *amount.Amount, Msg []byte) error {
	return f.cont.OnTokenReceived(cc, From, Amount, Msg)
}

func (f *receiverFront) ReceivedFrom(cc types.ContractLoader) common.Address {
	return f.cont.ReceivedFrom(cc)
}

func (f *receiverFront) ReceivedAmount(cc types.ContractLoader) *amount.Amount {
	return f.cont.ReceivedAmount(cc)
}

func (f *receiverFront) ReceivedMsg(cc types.ContractLoader) []byte {
	return f.cont.ReceivedMsg(cc)
}
