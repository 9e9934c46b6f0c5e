package tictactoe

import "github.com/rocketscienceinc/tictactoe-dark/internal/entity"

// IsLegal - checks the coordinates are on the board and the cell holds the expected symbol.
// Out-of-range coordinates are reported as illegal, never as a panic.
func IsLegal(board *entity.Board, row, col int, expected entity.Symbol) bool {
	return board.InBounds(row, col) && board.Cell(row, col) == expected
}
