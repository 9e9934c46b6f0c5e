package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
)

// Symbol is anything that can sit in a cell: a player mark, the empty tile or the blocked tile.
// Symbols are only ever compared for equality.
type Symbol string

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a square grid of symbols.
type Board struct {
	cells [][]Symbol
}

// NewBoard - creates a size x size board filled with the empty symbol.
func NewBoard(size int, empty Symbol) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	cells := make([][]Symbol, size)
	for i := range cells {
		row := make([]Symbol, size)
		for j := range row {
			row[j] = empty
		}
		cells[i] = row
	}

	return &Board{cells: cells}, nil
}

// BoardFromRows - builds a board from literal rows, the rows are copied.
func BoardFromRows(rows [][]Symbol) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: 0", apperror.ErrInvalidBoardSize)
	}

	cells := make([][]Symbol, len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrBoardNotSquare, i, len(row), len(rows))
		}
		cells[i] = append([]Symbol(nil), row...)
	}

	return &Board{cells: cells}, nil
}

func (that *Board) Size() int {
	return len(that.cells)
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(that.cells) && col >= 0 && col < len(that.cells)
}

func (that *Board) Cell(row, col int) Symbol {
	return that.cells[row][col]
}

func (that *Board) SetCell(row, col int, symbol Symbol) {
	that.cells[row][col] = symbol
}

// Rows - returns a deep copy of the grid.
func (that *Board) Rows() [][]Symbol {
	rows := make([][]Symbol, len(that.cells))
	for i, row := range that.cells {
		rows[i] = append([]Symbol(nil), row...)
	}

	return rows
}

// Positions - lists every cell holding the symbol, row by row.
func (that *Board) Positions(symbol Symbol) []Position {
	var positions []Position
	for i, row := range that.cells {
		for j, cell := range row {
			if cell == symbol {
				positions = append(positions, Position{Row: i, Col: j})
			}
		}
	}

	return positions
}

// IsFull - true when no cell holds the empty symbol.
func (that *Board) IsFull(empty Symbol) bool {
	return !that.contains(empty)
}

// HasAnyBlocked - true when at least one cell holds the blocked symbol.
func (that *Board) HasAnyBlocked(blocked Symbol) bool {
	return that.contains(blocked)
}

func (that *Board) contains(symbol Symbol) bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == symbol {
				return true
			}
		}
	}

	return false
}

// CheckWin - true when a whole row, column or diagonal holds the symbol.
func (that *Board) CheckWin(symbol Symbol) bool {
	size := len(that.cells)

	for i := 0; i < size; i++ {
		rowWin, colWin := true, true
		for j := 0; j < size; j++ {
			if that.cells[i][j] != symbol {
				rowWin = false
			}
			if that.cells[j][i] != symbol {
				colWin = false
			}
		}
		if rowWin || colWin {
			return true
		}
	}

	mainDiag, antiDiag := true, true
	for i := 0; i < size; i++ {
		if that.cells[i][i] != symbol {
			mainDiag = false
		}
		if that.cells[i][size-1-i] != symbol {
			antiDiag = false
		}
	}

	return mainDiag || antiDiag
}

// ClearTiles - rewrites cells in place. With clearAll every cell becomes `to`,
// otherwise only cells holding `from` do.
func (that *Board) ClearTiles(from, to Symbol, clearAll bool) {
	for _, row := range that.cells {
		for j, cell := range row {
			if clearAll || cell == from {
				row[j] = to
			}
		}
	}
}

func (that *Board) Clone() *Board {
	return &Board{cells: that.Rows()}
}

// CopyFrom - overwrites this board with the contents of src. Both boards must have the same size.
func (that *Board) CopyFrom(src *Board) {
	for i, row := range src.cells {
		copy(that.cells[i], row)
	}
}

func (that *Board) Equal(other *Board) bool {
	if other == nil || len(other.cells) != len(that.cells) {
		return false
	}

	for i, row := range that.cells {
		for j, cell := range row {
			if other.cells[i][j] != cell {
				return false
			}
		}
	}

	return true
}
