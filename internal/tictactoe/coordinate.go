package tictactoe

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-dark/internal/apperror"
)

// MaxBoardSize is the widest board that still has a single letter per column.
const MaxBoardSize = 26

// ParseCoordinate - splits "B2" into its column letter and row digits without checking either.
func ParseCoordinate(text string) (string, string, error) {
	if utf8.RuneCountInString(text) < 2 {
		return "", "", fmt.Errorf("%w: %q is too short", apperror.ErrMalformedMove, text)
	}

	_, width := utf8.DecodeRuneInString(text)

	return text[:width], text[width:], nil
}

// ToIndices - converts a column letter and 1-based row digits into zero-based (row, col).
func ToIndices(column, row string) (int, int, error) {
	if len(column) != 1 {
		return 0, 0, fmt.Errorf("%w: column %q is not a letter", apperror.ErrMalformedMove, column)
	}

	letter := strings.ToUpper(column)[0]
	if letter < 'A' || letter > 'Z' {
		return 0, 0, fmt.Errorf("%w: column %q is not a letter", apperror.ErrMalformedMove, column)
	}

	rowNumber, err := strconv.Atoi(row)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q: %w", apperror.ErrMalformedMove, row, err)
	}

	return rowNumber - 1, int(letter - 'A'), nil
}

// ParseMove - turns raw user text into zero-based indices.
func ParseMove(text string) (int, int, error) {
	column, row, err := ParseCoordinate(strings.TrimSpace(text))
	if err != nil {
		return 0, 0, err
	}

	return ToIndices(column, row)
}

// FormatCoordinate - inverse of ParseMove, (1, 1) becomes "B2".
func FormatCoordinate(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(col), row+1)
}
