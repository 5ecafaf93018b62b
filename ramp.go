package pic2ascii

import "strings"

const (
	// ScaleRamp is the default ramp of the scale-to-fit mode, dark to light.
	ScaleRamp = `@"#?*^='`

	// CellRamp is the default ramp of the fixed-cell mode, dark to light.
	CellRamp = `@#?*=^'`

	maxLevel = 255
)

// LevelMapping selects how a brightness level is bucketed onto a ramp.
type LevelMapping int

const (
	// LevelsTruncated uses buckets of width floor(255/N); the last symbol
	// absorbs the remainder.
	LevelsTruncated LevelMapping = iota

	// LevelsUniform splits 0..255 into N equal-width buckets.
	LevelsUniform
)

func (m LevelMapping) String() string {
	switch m {
	case LevelsTruncated:
		return "truncated"
	case LevelsUniform:
		return "uniform"
	}
	return "unknown"
}

// ParseLevelMapping parses the names returned by LevelMapping.String.
func ParseLevelMapping(s string) (LevelMapping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncated":
		return LevelsTruncated, nil
	case "uniform":
		return LevelsUniform, nil
	}
	return 0, invalidConfigf("unknown level mapping %q (expected truncated or uniform)", s)
}

// SymbolRamp is an ordered run of symbols, index 0 darkest.
type SymbolRamp struct {
	symbols []rune
	mapping LevelMapping
}

// NewSymbolRamp builds a ramp from a dark-to-light string of symbols.
// An empty string is an ErrInvalidConfig.
func NewSymbolRamp(symbols string, mapping LevelMapping) (SymbolRamp, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return SymbolRamp{}, invalidConfigf("symbol ramp needs at least one symbol")
	}
	if mapping != LevelsTruncated && mapping != LevelsUniform {
		return SymbolRamp{}, invalidConfigf("unknown level mapping %d", mapping)
	}
	return SymbolRamp{symbols: runes, mapping: mapping}, nil
}

// Len returns the number of symbols in the ramp.
func (r SymbolRamp) Len() int { return len(r.symbols) }

// String returns the ramp symbols, dark to light.
func (r SymbolRamp) String() string { return string(r.symbols) }

// Index returns the ramp position for a brightness level. Levels outside
// [0, 255] clamp to the ends of the ramp.
func (r SymbolRamp) Index(level int) int {
	n := len(r.symbols)
	level = clamp(level, 0, maxLevel)

	var idx int
	switch {
	case n > maxLevel:
		// More symbols than levels: spread the levels over the ramp so
		// both ends stay reachable.
		idx = level * (n - 1) / maxLevel
	case r.mapping == LevelsUniform:
		idx = level * n / (maxLevel + 1)
	default:
		idx = level / (maxLevel / n)
	}
	return clamp(idx, 0, n-1)
}

// Symbol returns the symbol for a brightness level.
func (r SymbolRamp) Symbol(level int) rune {
	return r.symbols[r.Index(level)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
