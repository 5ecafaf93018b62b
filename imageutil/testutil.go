package imageutil

// CreateGradientImage creates a horizontal gradient test image running from
// black at the left edge to white at the right edge.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(width-1, 1))
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateVerticalGradientImage creates a vertical gradient test image.
func CreateVerticalGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		v := uint8(255 * y / max(height-1, 1))
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard whose top
// left square is white.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetRGB(x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				img.SetRGB(x, y, RGB{})
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateStripedGray creates a grayscale grid whose rows alternate between
// bright (even rows) and dark (odd rows).
func CreateStripedGray(width, height int, bright, dark uint8) *GrayImage {
	gray := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		v := bright
		if y%2 == 1 {
			v = dark
		}
		for x := 0; x < width; x++ {
			gray.Pix[y*gray.Stride+x] = v
		}
	}
	return gray
}

// CreateFilledGray creates a grayscale grid with every pixel set to v.
func CreateFilledGray(width, height int, v uint8) *GrayImage {
	gray := NewGrayImage(width, height)
	for i := range gray.Pix {
		gray.Pix[i] = v
	}
	return gray
}

// CalculateMaxDiffGray calculates the maximum pixel difference between two
// grayscale images, or 256 when their sizes differ.
func CalculateMaxDiffGray(img1, img2 *GrayImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	maxDiff := 0
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			d := int(img1.GetGray(x, y)) - int(img2.GetGray(x, y))
			if d < 0 {
				d = -d
			}
			maxDiff = max(maxDiff, d)
		}
	}

	return maxDiff
}
