package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dark/internal/service"
	"github.com/rocketscienceinc/tictactoe-dark/internal/tictactoe"
)

type uSession interface {
	PlayRound(ctx context.Context, mode service.Mode) (tictactoe.Outcome, error)
	Score(ctx context.Context) (*entity.Score, error)

	PlayerOne() entity.Symbol
	PlayerTwo() entity.Symbol
}

// Console talks to the players over a line based terminal. It is both the display and the
// human mover of a game.
type Console struct {
	logger *slog.Logger

	in   *bufio.Reader
	out  io.Writer
	term *termenv.Output
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),

		in:   bufio.NewReader(in),
		out:  out,
		term: termenv.NewOutput(out),
	}
}

// Run - plays rounds until the players stop. An empty mode is asked for interactively.
func (that *Console) Run(ctx context.Context, session uSession, mode string) error {
	log := that.logger.With("method", "Run")

	that.instructions(session.PlayerOne(), session.PlayerTwo())

	gameMode, err := that.chooseMode(mode)
	if err != nil {
		return err
	}
	log.Debug("mode selected", "mode", gameMode)

	for {
		if _, err = session.PlayRound(ctx, gameMode); err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}

		score, err := session.Score(ctx)
		if err != nil {
			return fmt.Errorf("failed to get score: %w", err)
		}
		that.printScore("Current Score:", session, score)

		answer, err := that.ask("Do you want to play again? (yes/no): ")
		if err != nil {
			return err
		}

		if answer = strings.ToLower(answer); answer != "yes" && answer != "y" {
			that.printScore("Thanks for playing! Final Score:", session, score)
			return nil
		}
	}
}

// NextMove - prompts the current player for a coordinate.
func (that *Console) NextMove(ctx context.Context, view tictactoe.View) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return that.ask(fmt.Sprintf("Player %s, enter your move (e.g. B2): ", view.Player))
}

func (that *Console) ShowBoard(player entity.Symbol, board *entity.Board) {
	that.printf("\nPlayer %s's turn.\n%s\n", player, FormatBoard(board))
}

func (that *Console) ShowInvalidMove(input string) {
	that.printf("Invalid move %q! Use a column letter and a row number of an empty tile, e.g. B2.\n", input)
}

func (that *Console) ShowHit(player entity.Symbol, coordinate string) {
	that.printf("Player %s hit an occupied tile at %s! The tile is blocked and the board is revealed.\n", player, coordinate)
}

func (that *Console) ShowReset() {
	that.printf("The board is full. Blocked tiles are cleared and the lights go out again.\n")
}

func (that *Console) ShowOutcome(outcome tictactoe.Outcome, board *entity.Board) {
	var message string
	switch outcome.Status {
	case tictactoe.StatusWin:
		message = fmt.Sprintf("Player %s wins!", outcome.Winner)
	case tictactoe.StatusDraw:
		message = "It's a draw!"
	default:
		message = "The game goes on."
	}

	that.printf("\n%s\n%s\n", FormatBoard(board), that.term.String(message).Bold())
}

func (that *Console) Clear() {
	that.term.ClearScreen()
}

func (that *Console) instructions(playerOne, playerTwo entity.Symbol) {
	that.printf(`Welcome to Tic-Tac-Toe in the Dark!

Player 1 plays %s, player 2 plays %s. Enter moves as a column letter followed by a row number, e.g. B2.
You cannot see where your opponent played. The board lights up after the third move.
Playing on a tile that is secretly taken is a hit: the tile becomes blocked, the whole board
is revealed and the turn passes. When the board fills up with blocked tiles on it, the blocked
tiles are cleared, the board goes dark and play continues. Line up a full row, column or
diagonal to win.

`, playerOne, playerTwo)
}

// chooseMode - anything that is not a known mode means two players.
func (that *Console) chooseMode(configured string) (service.Mode, error) {
	if configured == "" {
		answer, err := that.ask("Choose game mode:\n1 - Two players\n2 - Play against computer - easy mode\n3 - Play against computer - medium mode\nEnter 1 or 2 or 3: ")
		if err != nil {
			return "", err
		}
		configured = answer
	}

	mode, err := service.ParseMode(configured)
	if err != nil {
		that.logger.Warn("unknown mode, falling back to two players", "mode", configured)
		return service.ModeTwoPlayers, nil
	}

	return mode, nil
}

func (that *Console) printScore(title string, session uSession, score *entity.Score) {
	that.printf("\n%s\nPlayer 1 (%s): %d\nPlayer 2 (%s): %d\nDraws: %d\n\n",
		title,
		session.PlayerOne(), score.WinsOf(session.PlayerOne()),
		session.PlayerTwo(), score.WinsOf(session.PlayerTwo()),
		score.Draws,
	)
}

// ask - prints the prompt and reads one trimmed line. A last line without newline still counts.
func (that *Console) ask(prompt string) (string, error) {
	that.printf("%s", prompt)

	line, err := that.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
