package types

import (
	"sort"

	"github.com/fragwuerdig/cw20-taxed/common"
	"github.com/fragwuerdig/cw20-taxed/common/bin"
	"github.com/fragwuerdig/cw20-taxed/common/hash"
	"github.com/pkg/errors"
)

// ContextData is a state data of the context
type ContextData struct {
	cache             *contextCache
	Parent            *ContextData
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
	isTop             bool
	seq               uint32
}

// NewContextData returns a ContextData
func NewContextData(cache *contextCache, Parent *ContextData) *ContextData {
	ctd := &ContextData{
		cache:             cache,
		Parent:            Parent,
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
		isTop:             true,
	}
	return ctd
}

// NextSeq returns the next sequence number used for address derivation
func (ctd *ContextData) NextSeq() uint32 {
	if ctd.Parent != nil {
		return ctd.Parent.NextSeq()
	}
	ctd.seq++
	return ctd.seq
}

// ContractDefine returns the deploy record of the address
func (ctd *ContextData) ContractDefine(addr common.Address) *ContractDefine {
	if cd, has := ctd.ContractDefineMap[addr]; has {
		return cd
	}
	if ctd.Parent != nil {
		return ctd.Parent.ContractDefine(addr)
	}
	return ctd.cache.ContractDefine(addr)
}

// IsContract returns the address is a deployed contract or not
func (ctd *ContextData) IsContract(addr common.Address) bool {
	return ctd.ContractDefine(addr) != nil
}

// Classify resolves the address to a wallet or a contract instance
func (ctd *ContextData) Classify(addr common.Address) (Classification, error) {
	cd := ctd.ContractDefine(addr)
	if cd == nil {
		return Wallet(), nil
	}
	return ContractInstance(cd.ClassID), nil
}

// Contract returns the contract instance of the address
func (ctd *ContextData) Contract(addr common.Address) (Contract, error) {
	cd := ctd.ContractDefine(addr)
	if cd == nil {
		return nil, errors.WithStack(ErrNotExistContract)
	}
	return CreateContract(cd)
}

// DeployContract deploys a contract and runs its OnCreate
func (ctd *ContextData) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, errors.WithStack(ErrInvalidClassID)
	}

	base := make([]byte, 1+common.AddressLength+8+4)
	base[0] = 0xff
	copy(base[1:], sender[:])
	copy(base[1+common.AddressLength:], bin.Uint64Bytes(ClassID))
	copy(base[1+common.AddressLength+8:], bin.Uint32Bytes(ctd.NextSeq()))
	h := hash.Hash(base)
	addr := common.BytesToAddress(h[12:])

	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	ctd.ContractDefineMap[addr] = cd
	if err := cont.OnCreate(ctd.cache.ctx.ContractContext(cont, sender), Args); err != nil {
		return nil, err
	}
	return cont, nil
}

// Data returns the data
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	if value, has := ctd.DataMap[key]; has {
		return value
	} else if ctd.Parent != nil {
		value := ctd.Parent.Data(cont, addr, name)
		if len(value) > 0 {
			if ctd.isTop {
				nvalue := make([]byte, len(value))
				copy(nvalue, value)
				return nvalue
			} else {
				return value
			}
		} else {
			return nil
		}
	} else {
		value := ctd.cache.Data(cont, addr, name)
		if len(value) > 0 {
			if ctd.isTop {
				nvalue := make([]byte, len(value))
				copy(nvalue, value)
				return nvalue
			} else {
				return value
			}
		} else {
			return nil
		}
	}
}

// SetData inserts the data
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap[key] = value
	}
}

// Hash returns the hash value of the snapshot data
func (ctd *ContextData) Hash() hash.Hash256 {
	keys := make([]string, 0, len(ctd.DataMap)+len(ctd.DeletedDataMap))
	for k := range ctd.DataMap {
		keys = append(keys, k)
	}
	for k := range ctd.DeletedDataMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := []byte{}
	for _, k := range keys {
		data = append(data, []byte(k)...)
		data = append(data, ctd.DataMap[k]...)
	}
	addrs := make([]string, 0, len(ctd.ContractDefineMap))
	for addr := range ctd.ContractDefineMap {
		addrs = append(addrs, string(addr[:]))
	}
	sort.Strings(addrs)
	for _, a := range addrs {
		cd := ctd.ContractDefineMap[common.BytesToAddress([]byte(a))]
		data = append(data, []byte(a)...)
		data = append(data, bin.Uint64Bytes(cd.ClassID)...)
	}
	return hash.Hash(data)
}
