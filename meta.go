package main

import (
	"gopkg.in/yaml.v2"
)

// AnimationMeta is animation metadata
// written next to the sliced frames.
type AnimationMeta struct {
	Name   string   `yaml:"name"`
	Row    int      `yaml:"row"`
	Frames [][4]int `yaml:"frames"`
	Files  []string `yaml:"files"`
}

// SetMeta describes all the animations
// sliced out of a single grid.
type SetMeta struct {
	Set        string          `yaml:"set"`
	Grid       string          `yaml:"grid"`
	FrameSize  int             `yaml:"frameSize"`
	Animations []AnimationMeta `yaml:"animations"`
}

const setMetaFile = "animations-meta.yml"

// NewSetMeta assembles the metadata for the frames
// produced by SliceSet. Frames must be in table order.
func NewSetMeta(set string, size int, frames []Frame) SetMeta {
	meta := SetMeta{
		Set:        set,
		Grid:       gridFile,
		FrameSize:  size,
		Animations: make([]AnimationMeta, 0),
	}

	for _, frame := range frames {
		n := len(meta.Animations)

		if n == 0 || meta.Animations[n-1].Name != frame.Animation {
			meta.Animations = append(meta.Animations, AnimationMeta{
				Name:   frame.Animation,
				Row:    frame.Row,
				Frames: make([][4]int, 0),
				Files:  make([]string, 0),
			})
			n++
		}

		anim := &meta.Animations[n-1]
		b := frame.Bounds
		anim.Frames = append(anim.Frames,
			[4]int{b.Min.X, b.Min.Y, b.Dx(), b.Dy()})
		anim.Files = append(anim.Files, frameFileName(frame.Column))
	}

	return meta
}

// EncodeSetMeta serializes the set metadata to YAML.
func EncodeSetMeta(meta SetMeta) ([]byte, error) {
	return yaml.Marshal(meta)
}

// ReadSetMeta parses set metadata previously
// written by EncodeSetMeta.
func ReadSetMeta(contents []byte) (SetMeta, error) {
	var meta SetMeta
	err := yaml.UnmarshalStrict(contents, &meta)

	if err != nil {
		return SetMeta{}, err
	}

	return meta, nil
}
