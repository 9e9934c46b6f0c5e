package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrBoardNotSquare   = errors.New("board is not square")
	ErrInvalidSymbols   = errors.New("player and tile symbols must be distinct")
	ErrMalformedMove    = errors.New("malformed move")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrScoreNotFound    = errors.New("score not found")
)
