package apiserver

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/fragwuerdig/cw20-taxed/common"
)

// Argument parses rpc arguments
type Argument struct {
	args []interface{}
}

// NewArgument returns a Argument
func NewArgument(args []interface{}) *Argument {
	arg := &Argument{
		args: args,
	}
	return arg
}

// Len returns length of arguments
func (arg *Argument) Len() int {
	return len(arg.args)
}

// Uint64 returns a uint64 value of the index
func (arg *Argument) Uint64(index int) (uint64, error) {
	if index < 0 || index >= len(arg.args) {
		return 0, errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return 0, errors.WithStack(ErrInvalidArgumentType)
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return n, nil
}

// String returns a string value of the index
func (arg *Argument) String(index int) (string, error) {
	if index < 0 || index >= len(arg.args) {
		return "", errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return "", errors.WithStack(ErrInvalidArgumentType)
	}
	return fmt.Sprintf("%v", a), nil
}

// Address parses an address value of the index
func (arg *Argument) Address(index int) (common.Address, error) {
	str, err := arg.String(index)
	if err != nil {
		return common.Address{}, err
	}
	addr, err := common.ParseAddress(str)
	if err != nil {
		return common.Address{}, errors.WithStack(ErrInvalidArgumentType)
	}
	return addr, nil
}
