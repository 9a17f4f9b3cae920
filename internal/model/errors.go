package model

import "errors"

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameFull      = errors.New("game is full")
	ErrGameOver      = errors.New("game is over")
	ErrNotInGame     = errors.New("player not in game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrIllegalMove   = errors.New("illegal move")
	ErrAlreadyQueued = errors.New("player already in queue")
	ErrNotAuthorized = errors.New("not authorized to join this game")
)

var ErrAlreadyConnected = errors.New("connection already exists")
