package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dark/internal/tictactoe"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	playerX entity.Symbol = "X"
	playerO entity.Symbol = "O"
	empty   entity.Symbol = "."
	blocked entity.Symbol = "#"
)

func testSettings(size int) tictactoe.Settings {
	return tictactoe.Settings{
		First:     playerX,
		Second:    playerO,
		BoardSize: size,
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

type scriptedMover struct {
	moves []string
}

func newScriptedMover(moves ...string) *scriptedMover {
	return &scriptedMover{moves: moves}
}

func (that *scriptedMover) NextMove(_ context.Context, _ tictactoe.View) (string, error) {
	if len(that.moves) == 0 {
		return "", io.EOF
	}

	next := that.moves[0]
	that.moves = that.moves[1:]

	return next, nil
}

type nopDisplay struct{}

func (nopDisplay) ShowBoard(entity.Symbol, *entity.Board)       {}
func (nopDisplay) ShowInvalidMove(string)                       {}
func (nopDisplay) ShowHit(entity.Symbol, string)                {}
func (nopDisplay) ShowReset()                                   {}
func (nopDisplay) ShowOutcome(tictactoe.Outcome, *entity.Board) {}
func (nopDisplay) Clear()                                       {}

type mockScoreRepo struct {
	mock.Mock
}

func newMockScoreRepo(t *testing.T) *mockScoreRepo {
	t.Helper()

	repo := &mockScoreRepo{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	return repo
}

func (that *mockScoreRepo) AddWin(ctx context.Context, sessionID string, symbol entity.Symbol) error {
	args := that.Called(ctx, sessionID, symbol)
	return args.Error(0)
}

func (that *mockScoreRepo) AddDraw(ctx context.Context, sessionID string) error {
	args := that.Called(ctx, sessionID)
	return args.Error(0)
}

func (that *mockScoreRepo) Get(ctx context.Context, sessionID string) (*entity.Score, error) {
	args := that.Called(ctx, sessionID)
	score, _ := args.Get(0).(*entity.Score)
	return score, args.Error(1)
}
