package pic2ascii

import "math"

// ScaledSize computes the scale-to-fit output size for a width x height
// source. The scale is max(width, height) / maxSize in integer division,
// never below 1, so images are only ever shrunk. The height is further
// divided by aspect. Both results are truncated and kept at least 1.
func ScaledSize(width, height, maxSize int, aspect float64) (int, int, error) {
	if maxSize <= 0 {
		return 0, 0, invalidConfigf("max size must be positive, got %d", maxSize)
	}
	if err := checkAspect(aspect); err != nil {
		return 0, 0, err
	}

	scale := float64(max(max(width, height)/maxSize, 1))
	newWidth := int(float64(width) / scale)
	newHeight := int(float64(height) / (scale * aspect))
	return max(newWidth, 1), max(newHeight, 1), nil
}

// checkAspect accepts finite positive factors only; NaN fails the > test.
func checkAspect(aspect float64) error {
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		return invalidConfigf("aspect factor must be a finite positive number, got %g", aspect)
	}
	return nil
}
