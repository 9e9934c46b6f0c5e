package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryScoreRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts wins and draws per session", func(t *testing.T) {
		// Given: results for two sessions
		scoreRepo := NewMemoryScoreRepository()
		require.NoError(t, scoreRepo.AddWin(ctx, "a", "X"))
		require.NoError(t, scoreRepo.AddWin(ctx, "a", "X"))
		require.NoError(t, scoreRepo.AddDraw(ctx, "a"))
		require.NoError(t, scoreRepo.AddWin(ctx, "b", "O"))

		// When: reading session a
		score, err := scoreRepo.Get(ctx, "a")

		// Then: only its own results are there
		require.NoError(t, err)
		assert.Equal(t, map[entity.Symbol]int{"X": 2}, score.Wins)
		assert.Equal(t, 1, score.Draws)
	})

	t.Run("Returned score is a copy", func(t *testing.T) {
		scoreRepo := NewMemoryScoreRepository()
		require.NoError(t, scoreRepo.AddWin(ctx, "a", "X"))

		score, err := scoreRepo.Get(ctx, "a")
		require.NoError(t, err)
		score.Wins["X"] = 100

		again, err := scoreRepo.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 1, again.WinsOf("X"))
	})

	t.Run("Unknown session", func(t *testing.T) {
		scoreRepo := NewMemoryScoreRepository()

		_, err := scoreRepo.Get(ctx, "missing")
		require.ErrorIs(t, err, apperror.ErrScoreNotFound)

		err = scoreRepo.DeleteByID(ctx, "missing")
		require.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})

	t.Run("Delete removes the session", func(t *testing.T) {
		scoreRepo := NewMemoryScoreRepository()
		require.NoError(t, scoreRepo.AddDraw(ctx, "a"))

		require.NoError(t, scoreRepo.DeleteByID(ctx, "a"))

		_, err := scoreRepo.Get(ctx, "a")
		require.ErrorIs(t, err, apperror.ErrScoreNotFound)
	})
}
