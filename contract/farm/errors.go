package farm

import "github.com/pkg/errors"

var (
	ErrUnauthorized        = errors.New("farm: caller is not the owner")
	ErrInvalidArgument     = errors.New("farm: invalid argument")
	ErrInsufficientBalance = errors.New("farm: withdraw amount exceeds stake")
	ErrNotStarted          = errors.New("farm: not started")
	ErrAlreadyStarted      = errors.New("farm: already started")
	ErrPaused              = errors.New("farm: paused")
	ErrReentrantCall       = errors.New("farm: reentrant call")
	ErrExistPoolOfWant     = errors.New("farm: pool for want already exists")
	ErrNotExistPool        = errors.New("farm: pool not found")
	ErrNotExistRewardToken = errors.New("farm: reward token not found")
	ErrExistRewardToken    = errors.New("farm: reward token already exists")
)
