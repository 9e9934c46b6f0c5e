package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-dark/internal/config"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dark/internal/repository"
	"github.com/rocketscienceinc/tictactoe-dark/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-dark/internal/service"
	"github.com/rocketscienceinc/tictactoe-dark/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-dark/transport/console"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownBackend = errors.New("unknown scoreboard backend")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	scoreRepo, closeScores, err := newScoreRepository(ctx, conf.Scoreboard)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeScores(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	settings := tictactoe.Settings{
		First:     entity.Symbol(conf.Game.PlayerOne),
		Second:    entity.Symbol(conf.Game.PlayerTwo),
		BoardSize: conf.Game.BoardSize,
		Empty:     entity.Symbol(conf.Game.EmptyTile),
		Blocked:   entity.Symbol(conf.Game.BlockedTile),
	}

	terminal := console.New(logger, os.Stdin, os.Stdout)
	session, err := service.NewSession(logger, terminal, scoreRepo, settings, terminal, terminal, rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // it's a game
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}

	// run the console in the background so a signal can end the app while it waits for input
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting session", "sessionID", session.ID(), "mode", conf.Game.Mode)
		consoleErrCh <- terminal.Run(ctx, session, conf.Game.Mode)
	}()

	select {
	case err = <-consoleErrCh:
		if errors.Is(err, io.EOF) {
			log.Info("Input closed, shutting down")
			return nil
		}

		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newScoreRepository(ctx context.Context, conf config.Scoreboard) (repository.ScoreRepository, func() error, error) {
	switch conf.Backend {
	case "", "memory":
		return repository.NewMemoryScoreRepository(), func() error { return nil }, nil
	case "redis":
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewScoreRepository(redisStorage), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, conf.Backend)
	}
}
