package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Parse reads a digit grid: one row per line, one decimal digit (0–9) per
// cell. Blank lines are skipped and a trailing '\r' is tolerated.
// Any other rune, a ragged row, or an empty input yields ErrMalformedGrid
// naming the 1-based line and column. Rows may be of any width.
func Parse(r io.Reader) (*Grid[uint8], error) {
	var rows [][]uint8
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := make([]uint8, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not a digit", ErrMalformedGrid, line, col+1, ch)
			}
			row = append(row, uint8(ch-'0'))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedGrid, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: reading grid: %w", err)
	}

	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid[uint8], error) {
	return Parse(strings.NewReader(s))
}
