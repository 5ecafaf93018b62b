package pic2ascii

import (
	"strings"

	"github.com/wbrown/pic2ascii/imageutil"
)

// Averaging selects the divisor used when a cell is clipped by the grid
// edge.
type Averaging int

const (
	// AveragingNominal divides by the nominal cell area with truncating
	// integer division, even when fewer pixels are in bounds.
	AveragingNominal Averaging = iota

	// AveragingCovered divides by the number of in-bounds pixels and
	// rounds to nearest.
	AveragingCovered
)

func (a Averaging) String() string {
	switch a {
	case AveragingNominal:
		return "nominal"
	case AveragingCovered:
		return "covered"
	}
	return "unknown"
}

// ParseAveraging parses the names returned by Averaging.String.
func ParseAveraging(s string) (Averaging, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nominal":
		return AveragingNominal, nil
	case "covered":
		return AveragingCovered, nil
	}
	return 0, invalidConfigf("unknown averaging %q (expected nominal or covered)", s)
}

// CellLevel returns the mean intensity of the sizeX x sizeY window whose
// top left corner is (x0, y0). Pixels outside the grid are skipped.
func CellLevel(grid *imageutil.GrayImage, x0, y0, sizeX, sizeY int, avg Averaging) (int, error) {
	if err := checkCellSize(sizeX, sizeY); err != nil {
		return 0, err
	}
	return cellLevel(grid, x0, y0, sizeX, sizeY, avg), nil
}

func checkCellSize(sizeX, sizeY int) error {
	if sizeX <= 0 || sizeY <= 0 {
		return invalidConfigf("cell size must be positive, got %dx%d", sizeX, sizeY)
	}
	return nil
}

func cellLevel(grid *imageutil.GrayImage, x0, y0, sizeX, sizeY int, avg Averaging) int {
	x1 := min(x0+sizeX, grid.Width())
	y1 := min(y0+sizeY, grid.Height())
	x0, y0 = max(x0, 0), max(y0, 0)

	origin := grid.Bounds().Min
	sum, covered := 0, 0
	for y := y0; y < y1; y++ {
		off := grid.PixOffset(origin.X, origin.Y+y)
		for x := x0; x < x1; x++ {
			sum += int(grid.Pix[off+x])
		}
		covered += max(x1-x0, 0)
	}

	if avg == AveragingCovered {
		if covered == 0 {
			return 0
		}
		return (sum + covered/2) / covered
	}
	return sum / (sizeX * sizeY)
}

// Aggregate reduces grid to one level per sizeX x sizeY cell. The result
// has floor(W/sizeX) columns and floor(H/sizeY) rows; pixels past the last
// whole cell are dropped.
func Aggregate(grid *imageutil.GrayImage, sizeX, sizeY int, avg Averaging) ([][]int, error) {
	if err := checkCellSize(sizeX, sizeY); err != nil {
		return nil, err
	}

	cols := grid.Width() / sizeX
	rows := grid.Height() / sizeY
	levels := make([][]int, rows)
	for cy := range levels {
		levels[cy] = make([]int, cols)
		for cx := range levels[cy] {
			levels[cy][cx] = cellLevel(grid, cx*sizeX, cy*sizeY, sizeX, sizeY, avg)
		}
	}
	return levels, nil
}
