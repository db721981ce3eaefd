package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	width  int
	height int
	edge   types.EdgePolicy
}

func NewCollisionManager(width, height int, edge types.EdgePolicy) *CollisionManager {
	return &CollisionManager{
		width:  width,
		height: height,
		edge:   edge,
	}
}

// Step moves one cell from pos in direction dir. On a bounded grid the result
// may lie outside the grid; InBounds tells the two apart.
func (cm *CollisionManager) Step(pos types.Position, dir types.Direction) types.Position {
	dr, dc := dir.Delta()
	next := types.Position{Row: pos.Row + dr, Col: pos.Col + dc}
	if cm.edge == types.EdgeWrap {
		next.Row = (next.Row + cm.height) % cm.height
		next.Col = (next.Col + cm.width) % cm.width
	}
	return next
}

func (cm *CollisionManager) InBounds(pos types.Position) bool {
	return pos.Row >= 0 && pos.Row < cm.height && pos.Col >= 0 && pos.Col < cm.width
}

// CheckCollision classifies a prospective head position. Self collision
// takes precedence over the wall check; the tail is excluded because it
// moves forward on the same step.
func (cm *CollisionManager) CheckCollision(pos types.Position, snake *entity.Snake) types.CollisionType {
	if snake.Contains(pos, true) {
		return types.SelfCollision
	}
	if cm.edge == types.EdgeBounded && !cm.InBounds(pos) {
		return types.WallCollision
	}
	return types.NoCollision
}

// Adjacent reports whether a and b are one step apart, wrap-aware.
func (cm *CollisionManager) Adjacent(a, b types.Position) bool {
	return types.Distance(a, b, cm.width, cm.height, cm.edge == types.EdgeWrap) == 1
}

// ValidateBody checks the snake invariants for a starting placement.
func (cm *CollisionManager) ValidateBody(body []types.Position) bool {
	if len(body) == 0 {
		return false
	}
	seen := make(map[types.Position]struct{}, len(body))
	for i, p := range body {
		if !cm.InBounds(p) {
			return false
		}
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
		if i > 0 && !cm.Adjacent(body[i-1], p) {
			return false
		}
	}
	return true
}
