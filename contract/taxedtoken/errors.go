package taxedtoken

import (
	"errors"
)

// taxedtoken errors
var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidTaxRate        = errors.New("tax rate must be between 0 and 1")
	ErrInvalidTaxCondition   = errors.New("tax condition must have exactly one variant")
	ErrInvalidTaxMap         = errors.New("invalid tax map")
	ErrMissingProceeds       = errors.New("taxed rule requires a proceeds address")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrUnrecognizedMigration = errors.New("unrecognized migration path")
	ErrWhaleLimit            = errors.New("holding exceeds whale threshold")
)
