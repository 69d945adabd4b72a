package bin

import "errors"

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrUnknownType   = errors.New("unknown type")
)
