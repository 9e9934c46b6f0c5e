package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dark/internal/tictactoe"
)

type Mode string

const (
	ModeTwoPlayers Mode = "pvp"
	ModeRandom     Mode = "random"
	ModeGreedy     Mode = "greedy"
)

// ParseMode - accepts a mode name or the menu number shown to the player.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", string(ModeTwoPlayers):
		return ModeTwoPlayers, nil
	case "2", string(ModeRandom):
		return ModeRandom, nil
	case "3", string(ModeGreedy):
		return ModeGreedy, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

type scoreRepo interface {
	AddWin(ctx context.Context, sessionID string, symbol entity.Symbol) error
	AddDraw(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*entity.Score, error)
}

// Session keeps what outlives a single game: the score and who opens the next two-player round.
type Session struct {
	logger    *slog.Logger
	display   tictactoe.Display
	scoreRepo scoreRepo
	rand      *rand.Rand

	id        string
	settings  tictactoe.Settings
	playerOne tictactoe.Mover
	playerTwo tictactoe.Mover
	first     entity.Symbol
	second    entity.Symbol
}

// NewSession - settings.First is player one and settings.Second player two. In the computer modes
// player one is the human and always opens.
func NewSession(
	logger *slog.Logger,
	display tictactoe.Display,
	scoreRepo scoreRepo,
	settings tictactoe.Settings,
	playerOne, playerTwo tictactoe.Mover,
	rnd *rand.Rand,
) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session settings: %w", err)
	}

	id := uuid.NewString()

	return &Session{
		logger:    logger.With("component", "session", "sessionID", id),
		display:   display,
		scoreRepo: scoreRepo,
		rand:      rnd,

		id:        id,
		settings:  settings,
		playerOne: playerOne,
		playerTwo: playerTwo,
		first:     settings.First,
		second:    settings.Second,
	}, nil
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) PlayerOne() entity.Symbol {
	return that.settings.First
}

func (that *Session) PlayerTwo() entity.Symbol {
	return that.settings.Second
}

// NextFirst - the symbol that opens the next two-player round.
func (that *Session) NextFirst() entity.Symbol {
	return that.first
}

// PlayRound - plays one game in the given mode and records its result.
func (that *Session) PlayRound(ctx context.Context, mode Mode) (tictactoe.Outcome, error) {
	log := that.logger.With("method", "PlayRound", "mode", mode)

	outcome, err := that.play(ctx, mode)
	if err != nil {
		return tictactoe.Outcome{}, err
	}

	if err = that.record(ctx, outcome); err != nil {
		return outcome, fmt.Errorf("failed to record result: %w", err)
	}

	if mode == ModeTwoPlayers {
		that.first = tictactoe.SwitchPlayer(that.first, that.settings.First, that.settings.Second)
		that.second = tictactoe.SwitchPlayer(that.second, that.settings.First, that.settings.Second)
	}

	log.Info("round finished", "status", outcome.Status.String(), "winner", outcome.Winner)

	return outcome, nil
}

func (that *Session) play(ctx context.Context, mode Mode) (tictactoe.Outcome, error) {
	switch mode {
	case ModeTwoPlayers:
		movers := map[entity.Symbol]tictactoe.Mover{
			that.settings.First:  that.playerOne,
			that.settings.Second: that.playerTwo,
		}

		settings := that.settings
		settings.First, settings.Second = that.first, that.second

		return StartGame(ctx, that.logger, that.display, settings, movers[that.first], movers[that.second])
	case ModeRandom:
		return StartGameVsRandomOpponent(ctx, that.logger, that.display, that.settings, that.playerOne, that.rand)
	case ModeGreedy:
		return StartGameVsGreedyOpponent(ctx, that.logger, that.display, that.settings, that.playerOne, that.rand)
	default:
		return tictactoe.Outcome{}, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

func (that *Session) record(ctx context.Context, outcome tictactoe.Outcome) error {
	switch outcome.Status {
	case tictactoe.StatusWin:
		return that.scoreRepo.AddWin(ctx, that.id, outcome.Winner)
	case tictactoe.StatusDraw:
		return that.scoreRepo.AddDraw(ctx, that.id)
	default:
		return fmt.Errorf("round ended without a result: %s", outcome.Status)
	}
}

// Score - the tally so far, empty before the first round.
func (that *Session) Score(ctx context.Context) (*entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx, that.id)
	if errors.Is(err, apperror.ErrScoreNotFound) {
		return entity.NewScore(that.id), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}
