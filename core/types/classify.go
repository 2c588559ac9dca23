package types

import (
	"github.com/fragwuerdig/cw20-taxed/common"
)

// Classification is the resolved kind of an address: either a plain wallet
// account or an instance of a deployed contract class.
type Classification struct {
	IsContract bool
	CodeID     uint64
}

// Wallet returns the classification of a plain account
func Wallet() Classification {
	return Classification{}
}

// ContractInstance returns the classification of a contract instantiated from the class
func ContractInstance(codeID uint64) Classification {
	return Classification{
		IsContract: true,
		CodeID:     codeID,
	}
}

// Classifier resolves an address to its classification
type Classifier interface {
	Classify(addr common.Address) (Classification, error)
}
