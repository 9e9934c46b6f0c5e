package application

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-dark/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScoreRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory backend", func(t *testing.T) {
		scoreRepo, closeScores, err := newScoreRepository(ctx, config.Scoreboard{Backend: "memory"})

		require.NoError(t, err)
		require.NotNil(t, scoreRepo)
		assert.NoError(t, closeScores())

		require.NoError(t, scoreRepo.AddDraw(ctx, "s"))
		score, err := scoreRepo.Get(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, 1, score.Draws)
	})

	t.Run("Unknown backend", func(t *testing.T) {
		_, _, err := newScoreRepository(ctx, config.Scoreboard{Backend: "postgres"})

		require.ErrorIs(t, err, ErrUnknownBackend)
	})

	t.Run("Redis without a host", func(t *testing.T) {
		_, _, err := newScoreRepository(ctx, config.Scoreboard{Backend: "redis", Redis: config.Redis{Port: "6379"}})

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
