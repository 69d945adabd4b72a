package types

import "errors"

var (
	ErrExistContractType    = errors.New("exist contract type")
	ErrNotExistContract     = errors.New("not exist contract")
	ErrInvalidClassID       = errors.New("invalid class id")
	ErrInvalidMainToken     = errors.New("invalid main token")
	ErrNotAllowedMethod     = errors.New("not allowed method")
	ErrInvalidSnapshot      = errors.New("invalid snapshot")
	ErrInvalidContractOwner = errors.New("invalid contract owner")
)
