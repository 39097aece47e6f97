package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var testAnimations = []Animation{
	{"walk", 3},
	{"die", 2},
}

const testFrameSize = 8

func newTestSlicer(root string, sets ...string) *Slicer {
	s := NewSlicer(root)
	s.Sets = sets
	s.Animations = testAnimations
	s.FrameSize = testFrameSize

	return s
}

// makeGrid writes a grid.png for set whose pixels
// encode their row, column and offset in the tile.
func makeGrid(t *testing.T, root, set string, width, height, size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width*size, height*size))

	for y := 0; y < height*size; y++ {
		for x := 0; x < width*size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(y / size * 10),
				G: uint8(x / size * 10),
				B: uint8((x%size)*3 + y%size),
				A: 0xFF,
			})
		}
	}

	writePNG(t, filepath.Join(root, set, gridFile), img)

	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %s", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %s", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %s", path, err)
	}
}

func readPNG(t *testing.T, path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %s", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode %s: %s", path, err)
	}

	return img
}

func assertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func assertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func assertKind(t *testing.T, err error, want Kind) {
	if err == nil {
		t.Fatalf("got no error; want %s", want)
	}

	if got := KindOf(err); got != want {
		t.Fatalf("got kind %s (%v); want %s", got, err, want)
	}
}

// assertSameRegion compares img against the rect region of grid.
func assertSameRegion(t *testing.T, name string, img, grid image.Image, rect image.Rectangle) {
	b := img.Bounds()

	if b.Dx() != rect.Dx() || b.Dy() != rect.Dy() {
		t.Errorf("%s: got %dx%d; want %dx%d", name, b.Dx(), b.Dy(), rect.Dx(), rect.Dy())
		return
	}

	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			r1, g1, b1, a1 := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			r2, g2, b2, a2 := grid.At(rect.Min.X+x, rect.Min.Y+y).RGBA()

			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Errorf("%s: pixel (%d, %d) differs from grid (%d, %d)",
					name, x, y, rect.Min.X+x, rect.Min.Y+y)
				return
			}
		}
	}
}
