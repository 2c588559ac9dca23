package types

import (
	"errors"
)

// types errors
var (
	ErrNotExistContract       = errors.New("not exist contract")
	ErrInvalidClassID         = errors.New("invalid class id")
	ErrExistContractType      = errors.New("exist contract type")
	ErrNotExistContractMethod = errors.New("not exist contract method")
	ErrInvalidMethodArguments = errors.New("invalid method arguments")
)
