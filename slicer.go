package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

const gridFile = "grid.png"

// Frame is a single tile cut out of a grid
// and written to Path.
type Frame struct {
	Set       string
	Animation string
	Row       int
	Column    int
	Bounds    image.Rectangle
	Path      string
	Data      []byte
}

// Slicer cuts the grid of every character set
// into per-animation frame files.
type Slicer struct {
	Root        string
	Sets        []string
	Animations  []Animation
	FrameSize   int
	Parallelism int
	WriteMeta   bool
	Resource    *ResourceFile
}

// NewSlicer returns a slicer for the fixed
// character sets and animation table.
func NewSlicer(root string) *Slicer {
	return &Slicer{
		Root:        root,
		Sets:        CharacterSets,
		Animations:  AnimationTable,
		FrameSize:   FrameSize,
		Parallelism: runtime.NumCPU(),
		WriteMeta:   true,
	}
}

// FrameRect returns the pixel rectangle of the tile
// at the given row and column of a grid.
func FrameRect(row, col, size int) image.Rectangle {
	return image.Rect(col*size, row*size, (col+1)*size, (row+1)*size)
}

func frameFileName(col int) string {
	return fmt.Sprintf("%02d.png", col)
}

// FramePath returns the output path of a frame.
func FramePath(root, set, anim string, col int) string {
	return filepath.Join(root, set, anim, frameFileName(col))
}

// Run slices every set. The first failure
// stops the remaining sets.
func (s *Slicer) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.Parallelism > 0 {
		g.SetLimit(s.Parallelism)
	}

	for _, set := range s.Sets {
		set := set

		g.Go(func() error {
			_, err := s.SliceSet(ctx, set)
			return err
		})
	}

	return g.Wait()
}

// SliceSet writes all the frames of a single set
// and returns them in table order.
func (s *Slicer) SliceSet(ctx context.Context, set string) ([]Frame, error) {
	grid, err := s.loadGrid(set)

	if err != nil {
		return nil, err
	}

	err = s.checkGrid(set, grid.Bounds())

	if err != nil {
		return nil, err
	}

	glog.V(1).Infof("slicing %s: %d animations", set, len(s.Animations))

	setDir := filepath.Join(s.Root, set)
	origin := grid.Bounds().Min
	frames := make([]Frame, 0)

	for row, anim := range s.Animations {
		animDir := filepath.Join(setDir, anim.Name)

		for col := 0; col < anim.FrameCount; col++ {
			if err := ctx.Err(); err != nil {
				return frames, err
			}

			rect := FrameRect(row, col, s.FrameSize).Add(origin)
			data, err := encodeFrame(cropFrame(grid, rect))

			if err != nil {
				return frames, frameError(KindFrameWriteFailure,
					set, anim.Name, col, errors.Wrap(err, "encoding frame"))
			}

			err = os.MkdirAll(animDir, 0755)

			if err != nil {
				return frames, frameError(KindDirectoryCreateFailure,
					set, anim.Name, col, err)
			}

			path := FramePath(s.Root, set, anim.Name, col)
			err = os.WriteFile(path, data, 0644)

			if err != nil {
				return frames, frameError(KindFrameWriteFailure,
					set, anim.Name, col, err)
			}

			glog.Infof("Saved %s/(%d, %d) to '%s'", setDir, col, row, path)

			frames = append(frames, Frame{
				Set:       set,
				Animation: anim.Name,
				Row:       row,
				Column:    col,
				Bounds:    rect,
				Path:      path,
				Data:      data,
			})
		}
	}

	err = s.storeSet(set, frames)

	if err != nil {
		return frames, err
	}

	glog.V(1).Infof("sliced %s: %d frames", set, len(frames))

	return frames, nil
}

func (s *Slicer) loadGrid(set string) (image.Image, error) {
	path := filepath.Join(s.Root, set, gridFile)
	file, err := os.Open(path)

	if err != nil {
		if os.IsNotExist(err) {
			return nil, setError(KindSourceNotFound, set,
				errors.Wrapf(err, "opening %s", path))
		}

		return nil, setError(KindDecodeFailure, set,
			errors.Wrapf(err, "opening %s", path))
	}

	defer file.Close()

	grid, _, err := image.Decode(file)

	if err != nil {
		return nil, setError(KindDecodeFailure, set,
			errors.Wrapf(err, "decoding %s", path))
	}

	return grid, nil
}

func (s *Slicer) checkGrid(set string, bounds image.Rectangle) error {
	width := maxFrameCount(s.Animations) * s.FrameSize
	height := len(s.Animations) * s.FrameSize

	if bounds.Dx() < width || bounds.Dy() < height {
		return setError(KindGridTooSmall, set, errors.Errorf(
			"grid is %dx%d, need at least %dx%d",
			bounds.Dx(), bounds.Dy(), width, height))
	}

	return nil
}

// storeSet writes the set manifest and packs the frames
// into the resource file when those are enabled.
func (s *Slicer) storeSet(set string, frames []Frame) error {
	if !s.WriteMeta && s.Resource == nil {
		return nil
	}

	meta := NewSetMeta(set, s.FrameSize, frames)

	if s.WriteMeta {
		data, err := EncodeSetMeta(meta)

		if err != nil {
			return setError(KindResourceFailure, set,
				errors.Wrap(err, "encoding manifest"))
		}

		path := filepath.Join(s.Root, set, setMetaFile)
		err = os.WriteFile(path, data, 0644)

		if err != nil {
			return setError(KindResourceFailure, set, err)
		}
	}

	if s.Resource != nil {
		err := s.Resource.PutSet(meta, frames)

		if err != nil {
			return setError(KindResourceFailure, set, err)
		}
	}

	return nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func cropFrame(grid image.Image, rect image.Rectangle) image.Image {
	if sub, ok := grid.(subImager); ok {
		return sub.SubImage(rect)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, grid, rect, draw.Src, nil)

	return dst
}

func encodeFrame(frame image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, frame)

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
