package types

import "github.com/fragwuerdig/cw20-taxed/common"

// ContractLoader defines functions that loads state data from the target chain
type ContractLoader interface {
	Version() uint16
	TargetHeight() uint32
	ContractData(name []byte) []byte
	AccountData(addr common.Address, name []byte) []byte
}
