package game

import (
	"time"

	"gridsnake/game/types"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// DefaultLength is the starting length when no placement is given.
const DefaultLength = 1

type settings struct {
	edge    types.EdgePolicy
	food    bool
	foodAt  *types.Position
	length  int
	body    []types.Position
	heading types.Direction
	src     rand.Source
	log     *zap.Logger
}

func defaultSettings() settings {
	return settings{
		edge:    types.EdgeBounded,
		length:  DefaultLength,
		heading: types.Right,
		src:     rand.NewSource(uint64(time.Now().UnixNano())),
		log:     zap.NewNop(),
	}
}

// Option configures a Grid at construction.
type Option func(*settings)

// WithEdgePolicy selects bounded (default) or wrapping edges.
func WithEdgePolicy(e types.EdgePolicy) Option {
	return func(s *settings) { s.edge = e }
}

// WithFood turns on food and growth.
func WithFood() Option {
	return func(s *settings) { s.food = true }
}

// WithFoodAt turns on food and places the first piece at p.
func WithFoodAt(p types.Position) Option {
	return func(s *settings) {
		s.food = true
		s.foodAt = &p
	}
}

// WithLength sets the length of the default snake. It is clamped so the
// body fits left of the starting cell.
func WithLength(n int) Option {
	return func(s *settings) { s.length = n }
}

// WithSnake places an explicit body, head first.
func WithSnake(body []types.Position, heading types.Direction) Option {
	return func(s *settings) {
		s.body = append([]types.Position{}, body...)
		s.heading = heading
	}
}

// WithRand sets the source used to place food.
func WithRand(src rand.Source) Option {
	return func(s *settings) {
		if src != nil {
			s.src = src
		}
	}
}

// WithSeed is WithRand with a fresh source seeded by seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.NewSource(seed))
}

func WithLogger(log *zap.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}
