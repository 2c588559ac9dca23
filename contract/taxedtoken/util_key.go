package taxedtoken

import (
	"github.com/fragwuerdig/cw20-taxed/common"
)

var (
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenMinter      = byte(0x03)
	tagTokenTotalSupply = byte(0x04)
	tagTokenMintCap     = byte(0x05)
	tagTokenAmount      = byte(0x10)
	tagTokenApprove     = byte(0x12)
	tagVersion          = byte(0x16)
	tagTaxMap           = byte(0x20)
	tagWhaleInfo        = byte(0x21)
)

func MakeAllowanceTokenKey(sender common.Address) []byte {
	return makeTokenKey(sender, tagTokenApprove)
}
func makeTokenKey(sender common.Address, key byte) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = key
	copy(bs[1:], sender[:])
	return bs
}
