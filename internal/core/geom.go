// Package core provides fundamental types for the puzzle platform: grid
// positions, directions, input commands, and the screen buffer. It contains
// no external dependencies (especially no Bubble Tea) to keep game logic
// pure and testable.
package core

// Pos is an integer grid position. Immutable value type.
type Pos struct {
	X, Y int
}

// P is a shorthand constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the position translated by a delta.
func (p Pos) Add(d Delta) Pos {
	return Pos{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Sub returns the delta from other to p.
func (p Pos) Sub(other Pos) Delta {
	return Delta{DX: p.X - other.X, DY: p.Y - other.Y}
}

// DistSq returns the squared euclidean distance to another position.
func (p Pos) DistSq(to Pos) int {
	return to.Sub(p).MagnitudeSq()
}

// InBounds reports whether the position lies within a w×h grid.
func (p Pos) InBounds(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Less orders positions row-major (scan order). Used for deterministic
// tie-breaking.
func (p Pos) Less(other Pos) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Delta is an integer displacement between two positions.
type Delta struct {
	DX, DY int
}

// MagnitudeSq returns the squared length of the delta.
func (d Delta) MagnitudeSq() int {
	return d.DX*d.DX + d.DY*d.DY
}

// IsZero reports whether the delta is the zero displacement.
func (d Delta) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Dir4 is a 4-way (orthogonal) direction. Player facing and input
// directions are 4-way.
type Dir4 int

const (
	East Dir4 = iota
	West
	North
	South
)

// Delta returns the unit displacement for the direction.
// Y grows downward (screen coordinates).
func (d Dir4) Delta() Delta {
	switch d {
	case East:
		return Delta{DX: 1}
	case West:
		return Delta{DX: -1}
	case North:
		return Delta{DY: -1}
	case South:
		return Delta{DY: 1}
	default:
		return Delta{}
	}
}

// Opposite returns the reverse direction.
func (d Dir4) Opposite() Dir4 {
	switch d {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	default:
		return North
	}
}

// Dir8 widens a 4-way direction to the 8-way type.
func (d Dir4) Dir8() Dir8 {
	switch d {
	case East:
		return DirE
	case West:
		return DirW
	case North:
		return DirN
	default:
		return DirS
	}
}

func (d Dir4) String() string {
	switch d {
	case East:
		return "east"
	case West:
		return "west"
	case North:
		return "north"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Dirs4 returns the orthogonal directions in the fixed tie-break priority
// order: horizontal before vertical. Every deterministic iteration over
// directions in the resolver and pathfinder uses this order.
func Dirs4() [4]Dir4 {
	return [4]Dir4{East, West, North, South}
}

// Dir8 is an 8-way direction. Enemy facing is 8-way.
type Dir8 int

const (
	DirE Dir8 = iota
	DirW
	DirN
	DirS
	DirNE
	DirNW
	DirSE
	DirSW
)

// Dirs8 returns all eight directions in the fixed tie-break priority order:
// orthogonals (horizontal first), then diagonals in a fixed rotation.
func Dirs8() [8]Dir8 {
	return [8]Dir8{DirE, DirW, DirN, DirS, DirNE, DirNW, DirSE, DirSW}
}

// Delta returns the unit displacement for the direction.
func (d Dir8) Delta() Delta {
	switch d {
	case DirE:
		return Delta{DX: 1}
	case DirW:
		return Delta{DX: -1}
	case DirN:
		return Delta{DY: -1}
	case DirS:
		return Delta{DY: 1}
	case DirNE:
		return Delta{DX: 1, DY: -1}
	case DirNW:
		return Delta{DX: -1, DY: -1}
	case DirSE:
		return Delta{DX: 1, DY: 1}
	case DirSW:
		return Delta{DX: -1, DY: 1}
	default:
		return Delta{}
	}
}

// IsDiagonal reports whether the direction moves on both axes.
func (d Dir8) IsDiagonal() bool {
	switch d {
	case DirNE, DirNW, DirSE, DirSW:
		return true
	default:
		return false
	}
}

// Dir8FromDelta converts a displacement to the 8-way direction of its
// signs. Returns false for the zero delta.
func Dir8FromDelta(d Delta) (Dir8, bool) {
	sx, sy := sign(d.DX), sign(d.DY)
	switch {
	case sx == 0 && sy == 0:
		return DirE, false
	case sx > 0 && sy == 0:
		return DirE, true
	case sx < 0 && sy == 0:
		return DirW, true
	case sx == 0 && sy < 0:
		return DirN, true
	case sx == 0 && sy > 0:
		return DirS, true
	case sx > 0 && sy < 0:
		return DirNE, true
	case sx < 0 && sy < 0:
		return DirNW, true
	case sx > 0 && sy > 0:
		return DirSE, true
	default:
		return DirSW, true
	}
}

func (d Dir8) String() string {
	switch d {
	case DirE:
		return "e"
	case DirW:
		return "w"
	case DirN:
		return "n"
	case DirS:
		return "s"
	case DirNE:
		return "ne"
	case DirNW:
		return "nw"
	case DirSE:
		return "se"
	case DirSW:
		return "sw"
	default:
		return "unknown"
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
