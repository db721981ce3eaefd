package game

import (
	"errors"
	"fmt"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"go.uber.org/zap"
)

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidSnake      = errors.New("invalid snake placement")
)

// Grid is the snake simulation. It is driven by a single owner through
// SetDirection and Tick and holds no goroutines or timers.
type Grid struct {
	width  int
	height int

	snake   *entity.Snake
	heading types.Direction
	pending types.Direction
	alive   bool
	cause   types.CollisionType
	edge    types.EdgePolicy

	ticks int
	score int

	cells []types.Cell

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	foodEnabled  bool

	log *zap.Logger
}

// New builds a width x height grid. By default a single segment sits at
// ((height-1)/2, (width-1)/2) heading right, the edges are fatal and there
// is no food.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	body := s.body
	heading := s.heading
	if body == nil {
		body = defaultBody(width, height, s.length)
		heading = types.Right
	}
	if !heading.Valid() {
		return nil, fmt.Errorf("%w: heading %v", ErrInvalidSnake, heading)
	}

	g := &Grid{
		width:        width,
		height:       height,
		snake:        entity.NewSnake(body),
		heading:      heading,
		pending:      heading,
		alive:        true,
		edge:         s.edge,
		cells:        make([]types.Cell, width*height),
		collisionMgr: manager.NewCollisionManager(width, height, s.edge),
		foodMgr:      manager.NewFoodManager(width, height, s.src),
		foodEnabled:  s.food,
		log:          s.log,
	}
	if !g.collisionMgr.ValidateBody(body) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnake, body)
	}

	if g.foodEnabled {
		if s.foodAt != nil {
			if !g.collisionMgr.InBounds(*s.foodAt) || g.snake.Contains(*s.foodAt, false) {
				return nil, fmt.Errorf("%w: food at %v", ErrInvalidSnake, *s.foodAt)
			}
			g.foodMgr.Place(*s.foodAt)
		} else {
			g.foodMgr.GenerateFood(g.snake)
		}
	}

	g.refreshCells()
	return g, nil
}

// defaultBody lays the snake out leftwards from the centre cell.
func defaultBody(width, height, length int) []types.Position {
	head := types.Position{Row: (height - 1) / 2, Col: (width - 1) / 2}
	if length < 1 {
		length = 1
	}
	if length > head.Col+1 {
		length = head.Col + 1
	}
	body := make([]types.Position, length)
	for i := range body {
		body[i] = types.Position{Row: head.Row, Col: head.Col - i}
	}
	return body
}

// SetDirection records d for the next tick. A request that reverses the
// current heading is ignored, as is any request once the snake is dead.
// Only the latest accepted request before a tick takes effect.
func (g *Grid) SetDirection(d types.Direction) {
	if !g.alive || !d.Valid() {
		return
	}
	if d == g.heading.Opposite() {
		return
	}
	g.pending = d
}

// Tick advances the simulation by one step.
func (g *Grid) Tick() {
	if !g.alive {
		return
	}

	g.heading = g.pending
	newHead := g.collisionMgr.Step(g.snake.GetHead(), g.heading)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.alive = false
		g.cause = collision
		g.log.Info("snake died",
			zap.Stringer("cause", collision),
			zap.Stringer("at", newHead),
			zap.Int("tick", g.ticks),
			zap.Int("length", g.snake.Len()))
		return
	}

	g.ticks++
	g.snake.Move(newHead)

	if g.foodEnabled && g.foodMgr.IsFoodCollision(newHead) {
		g.score++
		if food, ok := g.foodMgr.GenerateFood(g.snake); ok {
			g.log.Debug("food eaten", zap.Int("score", g.score), zap.Stringer("next", food))
		} else {
			g.log.Info("grid filled", zap.Int("length", g.snake.Len()))
		}
	} else {
		g.snake.RemoveTail()
	}

	g.refreshCells()
	g.log.Debug("tick",
		zap.Int("tick", g.ticks),
		zap.Stringer("heading", g.heading),
		zap.Stringer("head", newHead),
		zap.Int("length", g.snake.Len()))
}

// refreshCells rebuilds the occupancy buffer in place.
func (g *Grid) refreshCells() {
	for i := range g.cells {
		g.cells[i] = types.Empty
	}
	if food, ok := g.foodMgr.GetFood(); ok && g.foodEnabled {
		g.cells[g.index(food)] = types.Food
	}
	for _, p := range g.snake.Body {
		g.cells[g.index(p)] = types.SnakeOccupied
	}
}

func (g *Grid) index(p types.Position) int {
	return p.Row*g.width + p.Col
}

func (g *Grid) IsAlive() bool {
	return g.alive
}

// Cells returns the row-major occupancy buffer. The slice is reused and
// rewritten by the next Tick.
func (g *Grid) Cells() []types.Cell {
	return g.cells
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Cell returns the value at p, or Empty when p is off the grid.
func (g *Grid) Cell(p types.Position) types.Cell {
	if !g.collisionMgr.InBounds(p) {
		return types.Empty
	}
	return g.cells[g.index(p)]
}

// Snake returns a copy of the body, head first.
func (g *Grid) Snake() []types.Position {
	return g.snake.Positions()
}

func (g *Grid) Head() types.Position {
	return g.snake.GetHead()
}

func (g *Grid) Len() int {
	return g.snake.Len()
}

func (g *Grid) Heading() types.Direction {
	return g.heading
}

// Pending is the direction the next Tick will adopt.
func (g *Grid) Pending() types.Direction {
	return g.pending
}

// Food reports the current food cell. ok is false when food is disabled or
// the snake fills the grid.
func (g *Grid) Food() (types.Position, bool) {
	if !g.foodEnabled {
		return types.Position{}, false
	}
	return g.foodMgr.GetFood()
}

// Ticks counts the successful moves.
func (g *Grid) Ticks() int {
	return g.ticks
}

// Score counts the food eaten.
func (g *Grid) Score() int {
	return g.score
}

// Cause reports why the snake died, NoCollision while alive.
func (g *Grid) Cause() types.CollisionType {
	return g.cause
}

func (g *Grid) EdgePolicy() types.EdgePolicy {
	return g.edge
}

// Step returns the cell one move from pos. ok is false when the move leaves
// a bounded grid.
func (g *Grid) Step(pos types.Position, dir types.Direction) (types.Position, bool) {
	next := g.collisionMgr.Step(pos, dir)
	return next, g.collisionMgr.InBounds(next)
}

// Blocked reports whether moving the head onto pos next tick would kill the
// snake.
func (g *Grid) Blocked(pos types.Position) bool {
	return g.collisionMgr.CheckCollision(pos, g.snake) != types.NoCollision
}
