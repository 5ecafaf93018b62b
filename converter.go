// Package pic2ascii turns raster images into ASCII art. A Converter
// grayscales the image, averages it into cells, and maps every cell's
// brightness onto a dark-to-light symbol ramp.
package pic2ascii

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/wbrown/pic2ascii/imageutil"
)

// Decoder loads an image file. imageutil.LoadImage is the default.
type Decoder func(path string) (*imageutil.RGBAImage, error)

// Converter runs the pipeline for one RenderConfig. It holds no mutable
// state and can be shared between goroutines.
type Converter struct {
	config RenderConfig
	ramp   SymbolRamp
	decode Decoder
	logger *log.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// WithDecoder replaces the image decoder used by ConvertFile.
func WithDecoder(d Decoder) ConverterOption {
	return func(c *Converter) {
		c.decode = d
	}
}

// WithLogger sets where pipeline progress is logged. Logging is off by
// default.
func WithLogger(l *log.Logger) ConverterOption {
	return func(c *Converter) {
		c.logger = l
	}
}

// Result is the outcome of one conversion.
type Result struct {
	OriginalWidth  int
	OriginalHeight int

	// ScaledWidth and ScaledHeight are only set in ModeAutoScale.
	ScaledWidth  int
	ScaledHeight int

	Grid AsciiGrid
}

// NewConverter validates cfg and returns a Converter for it.
func NewConverter(cfg RenderConfig, opts ...ConverterOption) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ramp, err := cfg.SymbolRamp()
	if err != nil {
		return nil, err
	}

	c := &Converter{
		config: cfg,
		ramp:   ramp,
		decode: imageutil.LoadImage,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the configuration the Converter was built with.
func (c *Converter) Config() RenderConfig { return c.config }

// ConvertFile decodes path and converts it.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	img, err := c.decode(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if img == nil {
		return nil, &DecodeError{Path: path, Err: errors.New("decoder returned no image")}
	}
	c.logger.Printf("decoded %s: %dx%d", path, img.Width(), img.Height())
	return c.Convert(img)
}

// Convert runs the whole pipeline on img. Nothing is returned but an error
// if any step fails.
func (c *Converter) Convert(img *imageutil.RGBAImage) (*Result, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%w: image has zero area", ErrInvalidImage)
	}

	res := &Result{
		OriginalWidth:  img.Width(),
		OriginalHeight: img.Height(),
	}

	var gray *imageutil.GrayImage
	switch c.config.Mode {
	case ModeAutoScale:
		w, h, err := ScaledSize(img.Width(), img.Height(), c.config.MaxSize, c.config.AspectFactor)
		if err != nil {
			return nil, err
		}
		c.logger.Printf("resizing %dx%d to %dx%d (%s)", img.Width(), img.Height(), w, h, c.config.Interpolation)
		gray = imageutil.ToGrayscale(imageutil.Resize(img, w, h, c.config.Interpolation))
		res.ScaledWidth, res.ScaledHeight = w, h
	default:
		gray = imageutil.ToGrayscale(img)
	}

	grid, err := c.ConvertGray(gray)
	if err != nil {
		return nil, err
	}
	res.Grid = grid
	return res, nil
}

// ConvertGray aggregates and maps an already grayscale grid. In
// ModeAutoScale every pixel is its own cell.
func (c *Converter) ConvertGray(gray *imageutil.GrayImage) (AsciiGrid, error) {
	if gray == nil || gray.Width() == 0 || gray.Height() == 0 {
		return nil, fmt.Errorf("%w: image has zero area", ErrInvalidImage)
	}

	sizeX, sizeY := 1, 1
	if c.config.Mode == ModeFixedCells {
		sizeX, sizeY = c.config.CellWidth, c.config.CellHeight
	}

	levels, err := Aggregate(gray, sizeX, sizeY, c.config.Averaging)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("aggregated %dx%d grid into %dx%d cells of %dx%d (%s)",
		gray.Width(), gray.Height(), gray.Width()/sizeX, gray.Height()/sizeY,
		sizeX, sizeY, c.config.Averaging)

	return MapLevels(levels, c.ramp), nil
}
