package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
	if img.Empty() {
		t.Error("100x50 image should not be empty")
	}
}

func TestRGBAImageEmpty(t *testing.T) {
	tests := []struct {
		name string
		img  *RGBAImage
	}{
		{"nil", nil},
		{"zero width", NewRGBAImage(0, 10)},
		{"zero height", NewRGBAImage(10, 0)},
	}
	for _, tt := range tests {
		if !tt.img.Empty() {
			t.Errorf("%s: expected Empty() to be true", tt.name)
		}
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageFromImageRebasesBounds(t *testing.T) {
	src := image.NewGray(image.Rect(10, 20, 14, 22))
	src.SetGray(10, 20, color.Gray{Y: 200})

	img := RGBAImageFromImage(src)
	if img.Width() != 4 || img.Height() != 2 {
		t.Fatalf("Expected 4x2, got %dx%d", img.Width(), img.Height())
	}
	if got := img.GetRGB(0, 0); got != (RGB{200, 200, 200}) {
		t.Errorf("Expected origin pixel 200, got %v", got)
	}
}

func TestGrayImageFromLevels(t *testing.T) {
	gray := GrayImageFromLevels([][]int{
		{0, 128, 300},
		{-5, 255},
	})
	if gray.Width() != 3 || gray.Height() != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", gray.Width(), gray.Height())
	}
	want := [][]uint8{{0, 128, 255}, {0, 255, 0}}
	for y, row := range want {
		for x, v := range row {
			if got := gray.GetGray(x, y); got != v {
				t.Errorf("(%d,%d): expected %d, got %d", x, y, v, got)
			}
		}
	}
}

func TestToGrayscale(t *testing.T) {
	tests := []struct {
		name     string
		in       RGB
		min, max uint8
	}{
		{"white", RGB{255, 255, 255}, 255, 255},
		{"black", RGB{0, 0, 0}, 0, 0},
		{"red", RGB{255, 0, 0}, 76, 76},     // 0.299 * 255 = 76.245
		{"green", RGB{0, 255, 0}, 150, 150}, // 0.587 * 255 = 149.685
		{"blue", RGB{0, 0, 255}, 29, 29},    // 0.114 * 255 = 29.07
		{"gray", RGB{77, 77, 77}, 77, 77},
	}

	for _, tt := range tests {
		img := CreateSolidImage(2, 3, tt.in)
		gray := ToGrayscale(img)
		if gray.Width() != 2 || gray.Height() != 3 {
			t.Fatalf("%s: grayscale should keep dimensions, got %dx%d",
				tt.name, gray.Width(), gray.Height())
		}
		v := gray.GetGray(1, 2)
		if v < tt.min || v > tt.max {
			t.Errorf("%s: expected %d..%d, got %d", tt.name, tt.min, tt.max, v)
		}
	}
}

func TestToGrayscaleSubImage(t *testing.T) {
	full := NewRGBAImage(6, 4)
	full.SetRGB(3, 2, RGB{R: 255, G: 255, B: 255})
	sub := &RGBAImage{RGBA: full.SubImage(image.Rect(3, 2, 6, 4)).(*image.RGBA)}

	gray := ToGrayscale(sub)
	if gray.Width() != 3 || gray.Height() != 2 {
		t.Fatalf("Expected 3x2, got %dx%d", gray.Width(), gray.Height())
	}
	if v := gray.GetGray(0, 0); v != 255 {
		t.Errorf("Expected sub-image origin to be 255, got %d", v)
	}
	if v := gray.GetGray(1, 0); v != 0 {
		t.Errorf("Expected 0 next to the origin, got %d", v)
	}
}

func TestResize(t *testing.T) {
	img := CreateGradientImage(100, 100)

	resized := Resize(img, 50, 20, InterpolationLinear)
	if resized.Width() != 50 || resized.Height() != 20 {
		t.Errorf("Expected 50x20, got %dx%d", resized.Width(), resized.Height())
	}

	resized = Resize(img, 200, 200, InterpolationArea)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeSolidIsStable(t *testing.T) {
	// Bilinear sampling of a flat field must not invent new values.
	img := CreateSolidImage(80, 40, RGB{R: 90, G: 90, B: 90})
	for _, interp := range []Interpolation{InterpolationLinear, InterpolationArea, InterpolationNearest} {
		resized := ToGrayscale(Resize(img, 13, 7, interp))
		want := CreateFilledGray(13, 7, 90)
		if d := CalculateMaxDiffGray(resized, want); d > 1 {
			t.Errorf("interp %d: expected flat 90, max diff %d", interp, d)
		}
	}
}

func TestInterpolationString(t *testing.T) {
	tests := map[Interpolation]string{
		InterpolationLinear:  "linear",
		InterpolationArea:    "area",
		InterpolationNearest: "nearest",
		Interpolation(42):    "unknown",
	}
	for interp, want := range tests {
		if got := interp.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestLoadSaveImage(t *testing.T) {
	tmpDir := t.TempDir()
	img := CreateCheckerboardImage(16, 8, 4)

	pngPath := filepath.Join(tmpDir, "test.png")
	if err := SavePNG(img.RGBA, pngPath); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	// PNG is lossless
	if d := CalculateMaxDiffGray(ToGrayscale(img), ToGrayscale(loaded)); d != 0 {
		t.Errorf("PNG round trip should be lossless, max diff %d", d)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil || !strings.Contains(err.Error(), "failed to open image") {
		t.Errorf("Expected open error, got %v", err)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(bytes.NewReader([]byte("definitely not an image")))
	if err == nil || !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("Expected decode error, got %v", err)
	}
}
