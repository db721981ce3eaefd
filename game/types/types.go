package types

import "fmt"

// Position is a (row, column) cell coordinate. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d <= Down
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// TurnLeft returns the heading after a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the heading after a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// Delta returns the row and column offsets of a single step.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection accepts the lower-case names produced by String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Cell is the per-cell value exposed to renderers.
type Cell uint8

const (
	Empty Cell = iota
	SnakeOccupied
	Food
)

// EdgePolicy decides what happens when the head leaves the grid.
type EdgePolicy uint8

const (
	// EdgeBounded kills the snake when it moves off the grid.
	EdgeBounded EdgePolicy = iota
	// EdgeWrap wraps coordinates modulo width and height.
	EdgeWrap
)

func (e EdgePolicy) String() string {
	if e == EdgeWrap {
		return "wrap"
	}
	return "bounded"
}

// ParseEdgePolicy accepts "bounded" (or "") and "wrap".
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "", "bounded":
		return EdgeBounded, nil
	case "wrap":
		return EdgeWrap, nil
	}
	return 0, fmt.Errorf("unknown edge policy %q", s)
}

// CollisionType represents the reason a snake died.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance returns the Manhattan distance between two cells. With wrap set
// the shorter way around each axis is used.
func Distance(a, b Position, width, height int, wrap bool) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if wrap {
		if dr > height/2 {
			dr = height - dr
		}
		if dc > width/2 {
			dc = width - dc
		}
	}
	return dr + dc
}
