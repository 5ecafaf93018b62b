package pic2ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("cannot decode image")

	// ErrInvalidImage is returned for images with zero width or height.
	ErrInvalidImage = errors.New("invalid image")

	// ErrInvalidConfig is returned for non-positive sizes, empty ramps and
	// unknown mode names.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DecodeError reports a file that could not be opened or is not a
// recognized image. Err carries the decoder's own diagnostic.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: not a valid picture: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) hold for any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func invalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
