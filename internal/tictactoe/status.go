package tictactoe

import "github.com/rocketscienceinc/tictactoe-dark/internal/entity"

type Status int

const (
	StatusContinue Status = iota
	StatusWin
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusWin:
		return "win"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating the board after a move. Winner is set only for StatusWin,
// Reset only when a full board was cleared of blocked tiles.
type Outcome struct {
	Status Status
	Winner entity.Symbol
	Reset  bool
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

// Evaluate - classifies the authoritative board after current has moved.
//
// It mutates both boards: a full board that still holds blocked tiles is not a draw, the
// blocked tiles go back to empty, the whole visible board is wiped and play continues.
func Evaluate(authoritative, visible *entity.Board, current, empty, blocked entity.Symbol) Outcome {
	if authoritative.CheckWin(current) {
		return Outcome{Status: StatusWin, Winner: current}
	}

	if !authoritative.IsFull(empty) {
		return Outcome{Status: StatusContinue}
	}

	if authoritative.HasAnyBlocked(blocked) {
		authoritative.ClearTiles(blocked, empty, false)
		visible.ClearTiles(blocked, empty, true)

		return Outcome{Status: StatusContinue, Reset: true}
	}

	return Outcome{Status: StatusDraw}
}

// SwitchPlayer - returns the other of the two players.
func SwitchPlayer(current, first, second entity.Symbol) entity.Symbol {
	if current == first {
		return second
	}

	return first
}
