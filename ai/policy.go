// Package ai provides autopilots that steer a snake. A policy only reads the
// grid and returns the direction to request before the next tick.
package ai

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Policy picks the next direction for g.
type Policy interface {
	Decide(g *game.Grid) types.Direction
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(g *game.Grid) types.Direction

func (f PolicyFunc) Decide(g *game.Grid) types.Direction {
	return f(g)
}

// Straight never turns.
var Straight Policy = PolicyFunc(func(g *game.Grid) types.Direction {
	return g.Heading()
})

// candidates returns the three moves that do not reverse the heading, in
// the order front, left, right.
func candidates(heading types.Direction) [3]types.Direction {
	return [3]types.Direction{heading, heading.TurnLeft(), heading.TurnRight()}
}
