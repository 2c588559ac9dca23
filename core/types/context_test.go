package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragwuerdig/cw20-taxed/common"
)

var (
	testCont = common.HexToAddress("0x00000000000000000000000000000000000000c0")
	testAddr = common.HexToAddress("0x0000000000000000000000000000000000000001")
)

func TestContextDataSetGetDelete(t *testing.T) {
	ctx := NewEmptyContext()

	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("v1"))
	assert.Equal(t, []byte("v1"), ctx.Data(testCont, testAddr, []byte{0x01}))

	ctx.SetData(testCont, testAddr, []byte{0x01}, nil)
	assert.Nil(t, ctx.Data(testCont, testAddr, []byte{0x01}))
}

func TestContextSnapshotRevert(t *testing.T) {
	ctx := NewEmptyContext()
	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("base"))

	sn := ctx.Snapshot()
	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("changed"))
	ctx.SetData(testCont, testAddr, []byte{0x02}, []byte("extra"))
	assert.Equal(t, []byte("changed"), ctx.Data(testCont, testAddr, []byte{0x01}))

	ctx.Revert(sn)
	assert.Equal(t, []byte("base"), ctx.Data(testCont, testAddr, []byte{0x01}))
	assert.Nil(t, ctx.Data(testCont, testAddr, []byte{0x02}))
	assert.Equal(t, 1, ctx.StackSize())
}

func TestContextSnapshotCommit(t *testing.T) {
	ctx := NewEmptyContext()
	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("base"))

	sn := ctx.Snapshot()
	ctx.SetData(testCont, testAddr, []byte{0x01}, nil)
	ctx.SetData(testCont, testAddr, []byte{0x02}, []byte("extra"))
	ctx.Commit(sn)

	assert.Nil(t, ctx.Data(testCont, testAddr, []byte{0x01}), "deletion survives the merge")
	assert.Equal(t, []byte("extra"), ctx.Data(testCont, testAddr, []byte{0x02}))
	assert.Equal(t, 1, ctx.StackSize())
}

func TestContextNestedSnapshots(t *testing.T) {
	ctx := NewEmptyContext()

	sn1 := ctx.Snapshot()
	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("outer"))
	sn2 := ctx.Snapshot()
	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("inner"))
	ctx.Revert(sn2)

	assert.Equal(t, []byte("outer"), ctx.Data(testCont, testAddr, []byte{0x01}))
	ctx.Commit(sn1)
	assert.Equal(t, []byte("outer"), ctx.Data(testCont, testAddr, []byte{0x01}))
}

func TestContextHashTracksState(t *testing.T) {
	ctx := NewEmptyContext()
	h0 := ctx.Hash()

	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("v1"))
	h1 := ctx.Hash()
	assert.NotEqual(t, h0, h1)

	// same value again, same hash
	ctx.SetData(testCont, testAddr, []byte{0x01}, []byte("v1"))
	assert.Equal(t, h1, ctx.Hash())
}

type noopContract struct {
	addr   common.Address
	master common.Address
}

func (c *noopContract) Address() common.Address { return c.addr }
func (c *noopContract) Master() common.Address  { return c.master }
func (c *noopContract) Init(addr common.Address, master common.Address) {
	c.addr = addr
	c.master = master
}
func (c *noopContract) OnCreate(cc *ContractContext, Args []byte) error { return nil }
func (c *noopContract) Front() interface{}                              { return &struct{}{} }

func TestContextDeployAndClassify(t *testing.T) {
	classID, err := RegisterContractType(&noopContract{})
	require.NoError(t, err)

	ctx := NewEmptyContext()
	cont, err := ctx.DeployContract(testAddr, classID, nil)
	require.NoError(t, err)

	addr := cont.Address()
	assert.True(t, ctx.IsContract(addr))
	cl, err := ctx.Classify(addr)
	require.NoError(t, err)
	assert.True(t, cl.IsContract)
	assert.Equal(t, classID, cl.CodeID)

	cl, err = ctx.Classify(testAddr)
	require.NoError(t, err)
	assert.False(t, cl.IsContract)

	// a second deploy by the same sender lands on a different address
	cont2, err := ctx.DeployContract(testAddr, classID, nil)
	require.NoError(t, err)
	assert.NotEqual(t, addr, cont2.Address())
}
