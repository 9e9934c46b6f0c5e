package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file and fills defaults", func(t *testing.T) {
		// Given: a config file that sets only some keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ngame:\n  mode: greedy\n  board-size: 5\nscoreboard:\n  backend: redis\n  redis:\n    host: cache\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: set keys are read and the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "greedy", conf.Game.Mode)
		assert.Equal(t, 5, conf.Game.BoardSize)
		assert.Equal(t, "❌", conf.Game.PlayerOne)
		assert.Equal(t, "⬛", conf.Game.BlockedTile)
		assert.Equal(t, "redis", conf.Scoreboard.Backend)
		assert.Equal(t, "cache:6379", conf.Scoreboard.Redis.GetRedisAddr())
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and a board size in the environment
		t.Setenv("GAME_BOARD_SIZE", "4")
		t.Setenv("GAME_PLAYER_ONE", "X")

		// When: loading a missing file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment and defaults are used
		require.NoError(t, err)
		assert.Equal(t, 4, conf.Game.BoardSize)
		assert.Equal(t, "X", conf.Game.PlayerOne)
		assert.Equal(t, "memory", conf.Scoreboard.Backend)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("game: [not, a, map"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}
