package types

import (
	"github.com/fragwuerdig/cw20-taxed/common"
)

type contextCache struct {
	ctx       *Context
	DataMap   map[string][]byte
	DefineMap map[common.Address]*ContractDefine
}

func newContextCache(ctx *Context) *contextCache {
	return &contextCache{
		ctx:       ctx,
		DataMap:   map[string][]byte{},
		DefineMap: map[common.Address]*ContractDefine{},
	}
}

// Data returns the data of the key from the loader with caching
func (cc *contextCache) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if value, has := cc.DataMap[key]; has {
		return value
	} else {
		value := cc.ctx.loader.Data(cont, addr, name)
		cc.DataMap[key] = value
		return value
	}
}

// ContractDefine returns the deploy record of the address from the loader with caching
func (cc *contextCache) ContractDefine(addr common.Address) *ContractDefine {
	if cd, has := cc.DefineMap[addr]; has {
		return cd
	} else {
		cd := cc.ctx.loader.ContractDefine(addr)
		cc.DefineMap[addr] = cd
		return cd
	}
}
