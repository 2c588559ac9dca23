package util

import (
	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/contract/taxedtoken"
	"github.com/fragwuerdig/cw20-taxed/core/types"
)

var (
	Admin = common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	Users = []common.Address{
		common.HexToAddress("0x06EbF5A4C02a8F37a82594389Fc3A9A1700ab1aF"),
		common.HexToAddress("0x1E4551184bCD0ec2BdEdA2B0A4AF6C099e47D636"),
		common.HexToAddress("0x2eF368cBd4bA8D422f85C9Becbd2e7FF2b8e7f1b"),
		common.HexToAddress("0x3981D32f0e2E13a4C4aFe68f5cbB180f3f0fA6A1"),
	}
)

var ClassMap map[string]uint64

func init() {
	ClassMap = map[string]uint64{}
	RegisterContractClass(&taxedtoken.TokenContract{}, "TaxedToken")
	RegisterContractClass(&ReceiverContract{}, "Receiver")
}

// RegisterContractClass registers the contract type and memoizes its class id
func RegisterContractClass(cont types.Contract, name string) uint64 {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	if name != "" {
		ClassMap[name] = ClassID
	}
	return ClassID
}
