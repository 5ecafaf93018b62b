// pic2ascii prints an image as ASCII art.
//
// Usage:
//
//	pic2ascii [flags] <filename> <maxSize>
//	pic2ascii [flags] <filename> <rectSizeX> <rectSizeY> [symbol...]
//
// The first form shrinks the image so its larger side is about maxSize
// symbols and prints one symbol per resized pixel. The second form keeps
// the native resolution and prints one symbol per rectSizeX x rectSizeY
// block; trailing arguments replace the symbol ramp, darkest first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wbrown/pic2ascii"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, errArgumentParse):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(stderr, "pic2ascii: ", log.Lmsgprefix)
	}

	conv, err := pic2ascii.NewConverter(opts.config, pic2ascii.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	res, err := conv.ConvertFile(opts.path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if conv.Config().Mode == pic2ascii.ModeAutoScale {
		fmt.Fprintf(stdout, "Original size: %d x %d\n", res.OriginalWidth, res.OriginalHeight)
		fmt.Fprintf(stdout, "New size: %d x %d\n", res.ScaledWidth, res.ScaledHeight)
	}
	if _, err := res.Grid.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}
