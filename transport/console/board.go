package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-dark/internal/entity"
)

// FormatBoard - renders the board with column letters on top and 1-based row numbers on the left.
//
//	    A  B  C
//	1  ⬜ ⬜ ⬜
//	2  ⬜ ⬜ ⬜
//	3  ⬜ ⬜ ⬜
func FormatBoard(board *entity.Board) string {
	var sb strings.Builder

	letters := make([]string, board.Size())
	for col := range letters {
		letters[col] = string(rune('A' + col))
	}
	sb.WriteString("    " + strings.Join(letters, "  ") + "\n")

	for i, row := range board.Rows() {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = string(cell)
		}
		sb.WriteString(fmt.Sprintf("%-2d %s\n", i+1, strings.Join(cells, " ")))
	}

	return sb.String()
}
