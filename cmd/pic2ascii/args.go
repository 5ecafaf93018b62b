package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wbrown/pic2ascii"
)

const usageText = `Usage: pic2ascii [flags] <filename> <maxSize>
       pic2ascii [flags] <filename> <rectSizeX> <rectSizeY> [symbol...]

Flags:
`

var (
	errUsage         = errors.New("missing arguments")
	errArgumentParse = errors.New("invalid argument")
)

type options struct {
	path    string
	config  pic2ascii.RenderConfig
	verbose bool
}

// parseArgs turns the command line into a validated configuration. Usage
// is printed to stderr for errUsage.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("pic2ascii", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "",
		"Path to a YAML file with ramp, aspect_factor, levels, averaging and interpolation")
	uniform := fs.Bool("uniform", false,
		"Split brightness into equal-width buckets instead of the classic ones")
	covered := fs.Bool("covered", false,
		"Average edge cells over their in-bounds pixels only")
	interp := fs.String("interp", "",
		"Resampling filter for scale-to-fit: linear, area or nearest")
	verbose := fs.Bool("v", false, "Log pipeline steps to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errUsage
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return nil, errUsage
	}

	opts := &options{path: rest[0], verbose: *verbose}
	var symbols string
	if len(rest) == 2 {
		maxSize, err := parseInt("maxSize", rest[1])
		if err != nil {
			return nil, err
		}
		opts.config = pic2ascii.AutoScaleConfig(maxSize)
	} else {
		cellWidth, err := parseInt("rectSizeX", rest[1])
		if err != nil {
			return nil, err
		}
		cellHeight, err := parseInt("rectSizeY", rest[2])
		if err != nil {
			return nil, err
		}
		opts.config = pic2ascii.FixedCellsConfig(cellWidth, cellHeight)
		symbols = rampFromArgs(rest[3:])
	}

	if *configPath != "" {
		cf, err := pic2ascii.LoadConfigFile(*configPath)
		if err != nil {
			return nil, err
		}
		if err := cf.Apply(&opts.config); err != nil {
			return nil, err
		}
	}
	if *uniform {
		opts.config.Levels = pic2ascii.LevelsUniform
	}
	if *covered {
		opts.config.Averaging = pic2ascii.AveragingCovered
	}
	if *interp != "" {
		i, err := pic2ascii.ParseInterpolation(*interp)
		if err != nil {
			return nil, err
		}
		opts.config.Interpolation = i
	}
	if symbols != "" {
		opts.config.Ramp = symbols
	}

	if err := opts.config.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: the %s argument must be an int", errArgumentParse, name)
	}
	return v, nil
}

// rampFromArgs takes the first rune of every non-empty argument.
func rampFromArgs(args []string) string {
	var sb strings.Builder
	for _, arg := range args {
		for _, r := range arg {
			sb.WriteRune(r)
			break
		}
	}
	return sb.String()
}
