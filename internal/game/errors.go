package game

import "errors"

var (
	ErrAlreadyInGame    = errors.New("already in an active game")
	ErrGameNotFound     = errors.New("game not found")
	ErrOwnerCannotJoin  = errors.New("game owner cannot join their own game")
	ErrGameEnded        = errors.New("game has ended")
	ErrGameFull         = errors.New("game full")
	ErrAlreadyJoined    = errors.New("already joined")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidSetup     = errors.New("invalid game setup")
	ErrInvalidPhase     = errors.New("action not available in the current phase")
)
