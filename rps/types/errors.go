package types

import "errors"

var (
	ErrNotAdmin         = errors.New("ErrNotAdmin")
	ErrTreasuryExists   = errors.New("ErrTreasuryExists")
	ErrTreasuryNotFound = errors.New("ErrTreasuryNotFound")
	ErrGameExists       = errors.New("ErrGameExists")
	ErrGameNotFound     = errors.New("ErrGameNotFound")
	ErrGameInProgress   = errors.New("ErrGameInProgress")
	ErrNoActiveGame     = errors.New("ErrNoActiveGame")
	ErrInvalidSelection = errors.New("ErrInvalidSelection")
	ErrNotWinner        = errors.New("ErrNotWinner")
)
