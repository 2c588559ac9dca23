package common

import (
	"errors"
)

// common errors
var (
	ErrInvalidAddressFormat = errors.New("invalid address format")
	ErrInvalidAmountFormat  = errors.New("invalid amount format")
)

type Causer interface {
	Cause() error
}
