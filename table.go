package main

// FrameSize is the width and height
// of a single grid cell in pixels.
const FrameSize = 64

// Animation is a row of the grid.
type Animation struct {
	Name       string
	FrameCount int
}

// CharacterSets are the directories
// holding a grid.png each.
var CharacterSets = []string{
	"archer",
	"knight",
	"mage",
	"player",
}

// AnimationTable lists the grid rows
// from top to bottom.
var AnimationTable = []Animation{
	{"cast_up", 7},
	{"cast_left", 7},
	{"cast_down", 7},
	{"cast_right", 7},

	{"spear_up", 8},
	{"spear_left", 8},
	{"spear_down", 8},
	{"spear_right", 8},

	{"walk_up", 9},
	{"walk_left", 9},
	{"walk_down", 9},
	{"walk_right", 9},

	{"stab_up", 6},
	{"stab_left", 6},
	{"stab_down", 6},
	{"stab_right", 6},

	{"bow_up", 13},
	{"bow_left", 13},
	{"bow_down", 13},
	{"bow_right", 13},

	{"die", 6},
}

// maxFrameCount returns the widest row of the table.
func maxFrameCount(anims []Animation) int {
	max := 0

	for _, anim := range anims {
		if anim.FrameCount > max {
			max = anim.FrameCount
		}
	}

	return max
}
