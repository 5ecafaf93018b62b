package imageutil

// Luminance returns the BT.601 luma of an RGB triple, rounded to the
// nearest integer: Y = 0.299*R + 0.587*G + 0.114*B.
func Luminance(c RGB) uint8 {
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

// ToGrayscale converts an RGBA image to a grayscale grid of the same size
// anchored at the origin. Already-gray sources (R == G == B) map to
// themselves.
func ToGrayscale(img *RGBAImage) *GrayImage {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := range row {
			row[x] = Luminance(img.GetRGB(b.Min.X+x, b.Min.Y+y))
		}
	}

	return gray
}
