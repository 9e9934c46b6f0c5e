package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-dark/internal/tictactoe"
)

// StartGame - plays one game between two movers, settings.First moves first.
func StartGame(
	ctx context.Context,
	logger *slog.Logger,
	display tictactoe.Display,
	settings tictactoe.Settings,
	first, second tictactoe.Mover,
) (tictactoe.Outcome, error) {
	controller, err := tictactoe.NewGameController(logger, settings, display)
	if err != nil {
		return tictactoe.Outcome{}, fmt.Errorf("failed to start game: %w", err)
	}

	outcome, err := controller.Play(ctx, first, second)
	if err != nil {
		return tictactoe.Outcome{}, fmt.Errorf("game aborted: %w", err)
	}

	return outcome, nil
}

// StartGameVsRandomOpponent - the human plays settings.First against a RandomBot.
func StartGameVsRandomOpponent(
	ctx context.Context,
	logger *slog.Logger,
	display tictactoe.Display,
	settings tictactoe.Settings,
	human tictactoe.Mover,
	rnd *rand.Rand,
) (tictactoe.Outcome, error) {
	return StartGame(ctx, logger, display, settings, human, NewRandomBot(rnd))
}

// StartGameVsGreedyOpponent - the human plays settings.First against a GreedyBot.
func StartGameVsGreedyOpponent(
	ctx context.Context,
	logger *slog.Logger,
	display tictactoe.Display,
	settings tictactoe.Settings,
	human tictactoe.Mover,
	rnd *rand.Rand,
) (tictactoe.Outcome, error) {
	return StartGame(ctx, logger, display, settings, human, NewGreedyBot(rnd))
}
