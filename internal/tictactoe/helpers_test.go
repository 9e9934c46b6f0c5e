package tictactoe

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
	"github.com/stretchr/testify/require"
)

const (
	playerX entity.Symbol = "X"
	playerO entity.Symbol = "O"
	empty   entity.Symbol = "."
	blocked entity.Symbol = "#"
)

func testSettings() Settings {
	return Settings{
		First:     playerX,
		Second:    playerO,
		BoardSize: 3,
		Empty:     empty,
		Blocked:   blocked,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func mustBoard(t *testing.T, rows [][]entity.Symbol) *entity.Board {
	t.Helper()

	board, err := entity.BoardFromRows(rows)
	require.NoError(t, err)

	return board
}

func emptyBoard(t *testing.T, size int) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(size, empty)
	require.NoError(t, err)

	return board
}

// scriptedMover replays fixed inputs and reports io.EOF once they run out.
type scriptedMover struct {
	moves []string
	views []View
}

func newScriptedMover(moves ...string) *scriptedMover {
	return &scriptedMover{moves: moves}
}

func (that *scriptedMover) NextMove(_ context.Context, view View) (string, error) {
	that.views = append(that.views, view)

	if len(that.moves) == 0 {
		return "", io.EOF
	}

	next := that.moves[0]
	that.moves = that.moves[1:]

	return next, nil
}

type recordingDisplay struct {
	boards   []*entity.Board
	invalid  []string
	hits     []string
	resets   int
	outcomes []Outcome
	clears   int
}

func (that *recordingDisplay) ShowBoard(_ entity.Symbol, board *entity.Board) {
	that.boards = append(that.boards, board)
}

func (that *recordingDisplay) ShowInvalidMove(input string) {
	that.invalid = append(that.invalid, input)
}

func (that *recordingDisplay) ShowHit(player entity.Symbol, coordinate string) {
	that.hits = append(that.hits, string(player)+coordinate)
}

func (that *recordingDisplay) ShowReset() {
	that.resets++
}

func (that *recordingDisplay) ShowOutcome(outcome Outcome, _ *entity.Board) {
	that.outcomes = append(that.outcomes, outcome)
}

func (that *recordingDisplay) Clear() {
	that.clears++
}
