package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
)

// Settings describes one game: who plays, on which board, with which tiles.
type Settings struct {
	First     entity.Symbol
	Second    entity.Symbol
	BoardSize int
	Empty     entity.Symbol
	Blocked   entity.Symbol
}

// Validate - refuses settings that would produce an inconsistent board.
func (that Settings) Validate() error {
	if that.BoardSize < 1 || that.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: %d, want 1..%d", apperror.ErrInvalidBoardSize, that.BoardSize, MaxBoardSize)
	}

	if that.First == "" || that.Second == "" {
		return fmt.Errorf("%w: player symbols must not be blank", apperror.ErrInvalidSymbols)
	}

	symbols := []entity.Symbol{that.First, that.Second, that.Empty, that.Blocked}
	seen := make(map[entity.Symbol]struct{}, len(symbols))
	for _, symbol := range symbols {
		if _, ok := seen[symbol]; ok {
			return fmt.Errorf("%w: %q used twice", apperror.ErrInvalidSymbols, symbol)
		}
		seen[symbol] = struct{}{}
	}

	return nil
}

// View is what a mover gets to look at when asked for a move. Boards are copies.
// Authoritative is the full truth and is meant for computer opponents only.
type View struct {
	Player        entity.Symbol
	Opponent      entity.Symbol
	Visible       *entity.Board
	Authoritative *entity.Board
	Empty         entity.Symbol
	Blocked       entity.Symbol
}

// Mover supplies raw coordinate text such as "B2". Humans type it, bots compute it.
type Mover interface {
	NextMove(ctx context.Context, view View) (string, error)
}

// Display consumes everything the players should see.
type Display interface {
	ShowBoard(player entity.Symbol, board *entity.Board)
	ShowInvalidMove(input string)
	ShowHit(player entity.Symbol, coordinate string)
	ShowReset()
	ShowOutcome(outcome Outcome, board *entity.Board)
	Clear()
}
