package types

import (
	"github.com/fragwuerdig/cw20-taxed/common"
)

// internalLoader is the read-only source of committed state under a context
type internalLoader interface {
	Name() string
	Version() uint16
	TargetHeight() uint32
	Data(cont common.Address, addr common.Address, name []byte) []byte
	ContractDefine(addr common.Address) *ContractDefine
}

type emptyLoader struct {
}

// newEmptyLoader is used for generating genesis state
func newEmptyLoader() internalLoader {
	return &emptyLoader{}
}

// Name returns ""
func (st *emptyLoader) Name() string {
	return ""
}

// Version returns 0
func (st *emptyLoader) Version() uint16 {
	return 0
}

// TargetHeight returns 0
func (st *emptyLoader) TargetHeight() uint32 {
	return 0
}

// Data returns nil
func (st *emptyLoader) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return nil
}

// ContractDefine returns nil
func (st *emptyLoader) ContractDefine(addr common.Address) *ContractDefine {
	return nil
}
