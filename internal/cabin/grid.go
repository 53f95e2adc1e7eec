package cabin

import (
	"fmt"
	"strconv"
)

// Default cabin geometry for the single-aisle fleet this tool manages.
const (
	DefaultRows        = 10
	DefaultPremiumRows = 3
)

// DefaultLetters is the canonical seat letter ordering, window to window.
var DefaultLetters = []string{"A", "B", "C", "D", "E", "F"}

// Grid describes the cabin layout: how many rows exist, which letters each
// row carries, and which rows are sold as premium. The grid itself holds no
// occupancy state; it only answers layout questions.
type Grid struct {
	Rows        int
	Letters     []string
	PremiumRows int
}

// DefaultGrid returns the standard 10-row, A-F layout with premium rows 1-3.
func DefaultGrid() Grid {
	return Grid{
		Rows:        DefaultRows,
		Letters:     DefaultLetters,
		PremiumRows: DefaultPremiumRows,
	}
}

// IsWindow reports whether the letter is a window seat. Windows are the
// outermost letters of the row.
func (g Grid) IsWindow(letter string) bool {
	if len(g.Letters) == 0 {
		return false
	}
	return letter == g.Letters[0] || letter == g.Letters[len(g.Letters)-1]
}

// IsAisle reports whether the letter is an aisle seat. The aisle splits the
// row in half, so the aisle letters are the two middle ones.
func (g Grid) IsAisle(letter string) bool {
	n := len(g.Letters)
	if n < 2 {
		return false
	}
	return letter == g.Letters[n/2-1] || letter == g.Letters[n/2]
}

// IsPremiumRow reports whether the row is in the premium block at the front
// of the cabin.
func (g Grid) IsPremiumRow(row int) bool {
	return row >= 1 && row <= g.PremiumRows
}

// LetterIndex returns the position of the letter in the canonical ordering,
// or -1 if the letter does not exist in this grid.
func (g Grid) LetterIndex(letter string) int {
	for i, l := range g.Letters {
		if l == letter {
			return i
		}
	}
	return -1
}

// SeatID formats a row and letter index into a seat identifier like "5A".
func (g Grid) SeatID(row, letterIdx int) string {
	return strconv.Itoa(row) + g.Letters[letterIdx]
}

// ParseSeat splits a seat identifier into row and letter, validating both
// against the grid. Identifiers that do not match the grammar exactly are
// rejected; the allocators treat such input as an upstream bug, not a domain
// condition.
func (g Grid) ParseSeat(seat string) (int, string, error) {
	if len(seat) < 2 {
		return 0, "", fmt.Errorf("malformed seat identifier %q", seat)
	}

	letter := seat[len(seat)-1:]
	if g.LetterIndex(letter) < 0 {
		return 0, "", fmt.Errorf("seat %q: unknown letter %q", seat, letter)
	}

	// Rows are bare digits without a leading zero. Atoi also accepts a
	// sign, which would let "+5A" persist as an alias of seat 5A.
	rowPart := seat[:len(seat)-1]
	if rowPart[0] < '1' || rowPart[0] > '9' {
		return 0, "", fmt.Errorf("malformed seat identifier %q", seat)
	}
	for i := 1; i < len(rowPart); i++ {
		if rowPart[i] < '0' || rowPart[i] > '9' {
			return 0, "", fmt.Errorf("malformed seat identifier %q", seat)
		}
	}

	row, err := strconv.Atoi(rowPart)
	if err != nil {
		return 0, "", fmt.Errorf("seat %q: invalid row: %w", seat, err)
	}
	if row < 1 || row > g.Rows {
		return 0, "", fmt.Errorf("seat %q: row %d out of range 1..%d", seat, row, g.Rows)
	}

	return row, letter, nil
}

// ValidSeat reports whether the identifier matches the grid's seat grammar.
func (g Grid) ValidSeat(seat string) bool {
	_, _, err := g.ParseSeat(seat)
	return err == nil
}
