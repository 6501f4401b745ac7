package core

import "fmt"

// Board dimensions. Game coordinates span -HalfSize..+HalfSize on both axes
// with the player at the origin.
const (
	HalfSize  = 2
	BoardSize = 2*HalfSize + 1
)

// Coord is a position in centered game coordinates.
// X increases to the right, Y increases upward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c moved by v.
func (c Coord) Add(v Vec) Coord {
	return Coord{X: c.X + v.X, Y: c.Y + v.Y}
}

// Index is a position in array space: Col 0..BoardSize-1 left to right,
// Row 0..BoardSize-1 top to bottom.
type Index struct {
	Col int
	Row int
}

// ToIndex converts game coordinates to array indices.
// The row axis is flipped: Y=+2 is row 0.
func ToIndex(c Coord) Index {
	return Index{
		Col: c.X + HalfSize,
		Row: HalfSize - c.Y,
	}
}

// ToCoord converts array indices back to game coordinates.
func ToCoord(i Index) Coord {
	return Coord{
		X: i.Col - HalfSize,
		Y: HalfSize - i.Row,
	}
}

// IsOutOfRange reports whether either axis leaves the board.
func IsOutOfRange(c Coord) bool {
	return c.X < -HalfSize || c.X > HalfSize || c.Y < -HalfSize || c.Y > HalfSize
}
