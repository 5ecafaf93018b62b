package pic2ascii

import (
	"bufio"
	"io"
	"strings"
)

// AsciiGrid is the rendered output: one symbol per cell, row-major.
type AsciiGrid [][]rune

// MapLevels maps every level through ramp.
func MapLevels(levels [][]int, ramp SymbolRamp) AsciiGrid {
	grid := make(AsciiGrid, len(levels))
	for y, row := range levels {
		grid[y] = make([]rune, len(row))
		for x, level := range row {
			grid[y][x] = ramp.Symbol(level)
		}
	}
	return grid
}

// Width returns the number of symbols per row.
func (g AsciiGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g AsciiGrid) Height() int { return len(g) }

// WriteTo writes every row followed by a single newline. The count is
// the number of bytes that reached w, not those still buffered.
func (g AsciiGrid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	written := func(err error) (int64, error) {
		return n - int64(bw.Buffered()), err
	}
	for _, row := range g {
		for _, r := range row {
			size, err := bw.WriteRune(r)
			n += int64(size)
			if err != nil {
				return written(err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return written(err)
		}
		n++
	}
	return written(bw.Flush())
}

func (g AsciiGrid) String() string {
	var sb strings.Builder
	// strings.Builder never fails
	_, _ = g.WriteTo(&sb)
	return sb.String()
}
