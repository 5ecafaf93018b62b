package pic2ascii

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wbrown/pic2ascii/imageutil"
)

// DefaultAspectFactor compensates for glyphs being about 2.5 times taller
// than they are wide.
const DefaultAspectFactor = 2.5

// CellMode selects how the source image is cut into cells.
type CellMode int

const (
	// ModeAutoScale resizes the image to fit MaxSize, then maps every
	// resized pixel to one symbol.
	ModeAutoScale CellMode = iota

	// ModeFixedCells keeps native resolution and maps every
	// CellWidth x CellHeight block to one symbol.
	ModeFixedCells
)

func (m CellMode) String() string {
	switch m {
	case ModeAutoScale:
		return "auto-scale"
	case ModeFixedCells:
		return "fixed-cells"
	}
	return "unknown"
}

// RenderConfig describes one run of the pipeline.
type RenderConfig struct {
	Mode CellMode

	// MaxSize bounds the larger source dimension in ModeAutoScale.
	MaxSize int

	// CellWidth and CellHeight are the cell size in pixels in ModeFixedCells.
	CellWidth  int
	CellHeight int

	// Ramp lists the symbols dark to light.
	Ramp string

	// AspectFactor divides the output height in ModeAutoScale.
	AspectFactor float64

	Levels    LevelMapping
	Averaging Averaging

	// Interpolation is the resampling filter used in ModeAutoScale.
	Interpolation imageutil.Interpolation
}

// AutoScaleConfig returns the scale-to-fit configuration with its default
// ramp.
func AutoScaleConfig(maxSize int) RenderConfig {
	return RenderConfig{
		Mode:         ModeAutoScale,
		MaxSize:      maxSize,
		Ramp:         ScaleRamp,
		AspectFactor: DefaultAspectFactor,
	}
}

// FixedCellsConfig returns the fixed-cell configuration with its default
// ramp.
func FixedCellsConfig(cellWidth, cellHeight int) RenderConfig {
	return RenderConfig{
		Mode:         ModeFixedCells,
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
		Ramp:         CellRamp,
		AspectFactor: DefaultAspectFactor,
	}
}

// Validate reports the first problem with c as an ErrInvalidConfig.
func (c RenderConfig) Validate() error {
	switch c.Mode {
	case ModeAutoScale:
		if c.MaxSize <= 0 {
			return invalidConfigf("max size must be positive, got %d", c.MaxSize)
		}
		if err := checkAspect(c.AspectFactor); err != nil {
			return err
		}
		if _, err := ParseInterpolation(c.Interpolation.String()); err != nil {
			return err
		}
	case ModeFixedCells:
		if c.CellWidth <= 0 || c.CellHeight <= 0 {
			return invalidConfigf("cell size must be positive, got %dx%d",
				c.CellWidth, c.CellHeight)
		}
	default:
		return invalidConfigf("unknown cell mode %d", c.Mode)
	}
	if c.Averaging != AveragingNominal && c.Averaging != AveragingCovered {
		return invalidConfigf("unknown averaging %d", c.Averaging)
	}
	_, err := c.SymbolRamp()
	return err
}

// ParseInterpolation parses the names returned by
// imageutil.Interpolation.String. The empty string selects linear.
func ParseInterpolation(s string) (imageutil.Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return imageutil.InterpolationLinear, nil
	case "area":
		return imageutil.InterpolationArea, nil
	case "nearest":
		return imageutil.InterpolationNearest, nil
	}
	return 0, invalidConfigf("unknown interpolation %q (expected linear, area or nearest)", s)
}

// SymbolRamp builds the ramp described by c.
func (c RenderConfig) SymbolRamp() (SymbolRamp, error) {
	return NewSymbolRamp(c.Ramp, c.Levels)
}

// ConfigFile is the optional YAML overlay read with -config. Empty fields
// leave the configuration untouched.
type ConfigFile struct {
	Ramp         string  `yaml:"ramp,omitempty"`
	AspectFactor float64 `yaml:"aspect_factor,omitempty"`
	Levels       string  `yaml:"levels,omitempty"`
	Averaging    string  `yaml:"averaging,omitempty"`

	Interpolation string `yaml:"interpolation,omitempty"`
}

// LoadConfigFile reads a ConfigFile. Unknown keys are rejected so typos do
// not go unnoticed.
func LoadConfigFile(path string) (*ConfigFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var cf ConfigFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return &cf, nil
}

// Apply overlays the non-empty fields of f onto cfg.
func (f *ConfigFile) Apply(cfg *RenderConfig) error {
	if f == nil {
		return nil
	}
	if f.Ramp != "" {
		cfg.Ramp = f.Ramp
	}
	if f.AspectFactor != 0 {
		cfg.AspectFactor = f.AspectFactor
	}
	if f.Levels != "" {
		levels, err := ParseLevelMapping(f.Levels)
		if err != nil {
			return err
		}
		cfg.Levels = levels
	}
	if f.Averaging != "" {
		avg, err := ParseAveraging(f.Averaging)
		if err != nil {
			return err
		}
		cfg.Averaging = avg
	}
	if f.Interpolation != "" {
		interp, err := ParseInterpolation(f.Interpolation)
		if err != nil {
			return err
		}
		cfg.Interpolation = interp
	}
	return nil
}
