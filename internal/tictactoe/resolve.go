package tictactoe

import "github.com/rocketscienceinc/tictactoe-dark/internal/entity"

// RevealThreshold is the move count at which the visible board catches up with the real one.
const RevealThreshold = 3

// MoveResult describes what a resolved move did.
type MoveResult struct {
	Hit   bool
	Delta int
}

// ApplyMove - applies a validated move to the authoritative board.
//
// Targeting a cell that is not empty on the authoritative board is a hit: the cell becomes
// blocked and the visible board is replaced by a copy of the authoritative one. Otherwise the
// player's symbol is placed and the visible board is left untouched.
func ApplyMove(
	row, col int,
	authoritative, visible *entity.Board,
	player, empty, blocked entity.Symbol,
) MoveResult {
	if authoritative.Cell(row, col) != empty {
		authoritative.SetCell(row, col, blocked)
		visible.CopyFrom(authoritative)

		return MoveResult{Hit: true, Delta: 1}
	}

	authoritative.SetCell(row, col, player)

	return MoveResult{Hit: false, Delta: 1}
}

// RevealIfDue - copies the authoritative board into the visible one once performedMoves
// reaches the threshold, unless a hit already revealed it.
func RevealIfDue(performedMoves int, authoritative, visible *entity.Board, blocked entity.Symbol) bool {
	if performedMoves != RevealThreshold || visible.HasAnyBlocked(blocked) {
		return false
	}

	visible.CopyFrom(authoritative)

	return true
}
