package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
)

// GameController owns the boards and the move counter of a single game.
type GameController struct {
	logger  *slog.Logger
	display Display

	settings       Settings
	authoritative  *entity.Board
	visible        *entity.Board
	current        entity.Symbol
	performedMoves int
}

func NewGameController(logger *slog.Logger, settings Settings, display Display) (*GameController, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game settings: %w", err)
	}

	authoritative, err := entity.NewBoard(settings.BoardSize, settings.Empty)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &GameController{
		logger:  logger.With("component", "game_controller"),
		display: display,

		settings:      settings,
		authoritative: authoritative,
		visible:       authoritative.Clone(),
		current:       settings.First,
	}, nil
}

// Play - runs turns until somebody wins or the game is drawn.
func (that *GameController) Play(ctx context.Context, first, second Mover) (Outcome, error) {
	movers := map[entity.Symbol]Mover{
		that.settings.First:  first,
		that.settings.Second: second,
	}

	for {
		outcome, err := that.PlayTurn(ctx, movers[that.current])
		if err != nil {
			return Outcome{}, err
		}

		if outcome.IsTerminal() {
			return outcome, nil
		}
	}
}

// PlayTurn - plays one turn for the current player and hands the turn over unless the game ended.
func (that *GameController) PlayTurn(ctx context.Context, mover Mover) (Outcome, error) {
	log := that.logger.With("method", "PlayTurn", "player", that.current)

	if RevealIfDue(that.performedMoves, that.authoritative, that.visible, that.settings.Blocked) {
		log.Debug("visible board revealed", "moves", that.performedMoves)
	}

	row, col, err := that.readMove(ctx, mover)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to read move: %w", err)
	}

	coordinate := FormatCoordinate(row, col)
	result := ApplyMove(
		row, col,
		that.authoritative, that.visible,
		that.current, that.settings.Empty, that.settings.Blocked,
	)
	that.performedMoves += result.Delta

	// a hit can neither win nor fill the board
	if result.Hit {
		log.Debug("hit", "cell", coordinate, "moves", that.performedMoves)

		that.display.Clear()
		that.display.ShowHit(that.current, coordinate)
		that.switchPlayer()

		return Outcome{Status: StatusContinue}, nil
	}

	log.Debug("placed", "cell", coordinate, "moves", that.performedMoves)

	outcome := Evaluate(that.authoritative, that.visible, that.current, that.settings.Empty, that.settings.Blocked)
	if outcome.IsTerminal() {
		log.Debug("game over", "status", outcome.Status, "winner", outcome.Winner)
		that.display.ShowOutcome(outcome, that.authoritative.Clone())

		return outcome, nil
	}

	that.display.Clear()
	if outcome.Reset {
		log.Debug("board reset", "moves", that.performedMoves)
		that.display.ShowReset()
	}
	that.switchPlayer()

	return outcome, nil
}

// readMove - asks the mover until it names an empty cell of the visible board.
func (that *GameController) readMove(ctx context.Context, mover Mover) (int, int, error) {
	view := that.view()
	that.display.ShowBoard(that.current, view.Visible)

	for {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}

		text, err := mover.NextMove(ctx, view)
		if err != nil {
			return 0, 0, err
		}

		row, col, err := ParseMove(text)
		if err == nil && IsLegal(that.visible, row, col, that.settings.Empty) {
			return row, col, nil
		}

		that.logger.Debug("rejected move", "player", that.current, "input", text, "error", err)
		that.display.ShowInvalidMove(text)
	}
}

func (that *GameController) view() View {
	return View{
		Player:        that.current,
		Opponent:      SwitchPlayer(that.current, that.settings.First, that.settings.Second),
		Visible:       that.visible.Clone(),
		Authoritative: that.authoritative.Clone(),
		Empty:         that.settings.Empty,
		Blocked:       that.settings.Blocked,
	}
}

func (that *GameController) switchPlayer() {
	that.current = SwitchPlayer(that.current, that.settings.First, that.settings.Second)
}

func (that *GameController) Current() entity.Symbol {
	return that.current
}

func (that *GameController) PerformedMoves() int {
	return that.performedMoves
}

func (that *GameController) Authoritative() *entity.Board {
	return that.authoritative.Clone()
}

func (that *GameController) Visible() *entity.Board {
	return that.visible.Clone()
}
