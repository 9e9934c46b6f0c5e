package service

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dark/internal/tictactoe"
)

// RandomBot picks uniformly among the cells that look empty to it.
type RandomBot struct {
	rand *rand.Rand
}

func NewRandomBot(rnd *rand.Rand) *RandomBot {
	return &RandomBot{rand: rnd}
}

func (that *RandomBot) NextMove(_ context.Context, view tictactoe.View) (string, error) {
	availableCells := view.Visible.Positions(view.Empty)
	if len(availableCells) == 0 {
		return "", apperror.ErrNoAvailableMoves
	}

	chosenCell := availableCells[that.rand.Intn(len(availableCells))]

	return tictactoe.FormatCoordinate(chosenCell.Row, chosenCell.Col), nil
}

// GreedyBot wins when it can, blocks the opponent's winning cell otherwise, and plays randomly as a last resort.
// It looks at the authoritative board, so the fog does not apply to it.
type GreedyBot struct {
	fallback *RandomBot
}

func NewGreedyBot(rnd *rand.Rand) *GreedyBot {
	return &GreedyBot{fallback: NewRandomBot(rnd)}
}

func (that *GreedyBot) NextMove(ctx context.Context, view tictactoe.View) (string, error) {
	board := view.Authoritative

	if cell, ok := findWinningCell(board, view.Player, view.Empty); ok {
		return tictactoe.FormatCoordinate(cell.Row, cell.Col), nil
	}

	if cell, ok := findWinningCell(board, view.Opponent, view.Empty); ok {
		return tictactoe.FormatCoordinate(cell.Row, cell.Col), nil
	}

	return that.fallback.NextMove(ctx, view)
}

// findWinningCell - tries the symbol on every empty cell, undoing each trial right away.
func findWinningCell(board *entity.Board, symbol, empty entity.Symbol) (entity.Position, bool) {
	for _, cell := range board.Positions(empty) {
		board.SetCell(cell.Row, cell.Col, symbol)
		wins := board.CheckWin(symbol)
		board.SetCell(cell.Row, cell.Col, empty)

		if wins {
			return cell, true
		}
	}

	return entity.Position{}, false
}
