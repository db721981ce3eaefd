package ai

import (
	"gridsnake/game"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Greedy scores the front, left and right moves by danger and by whether
// they bring the head closer to the food, and picks the best one.
type Greedy struct {
	rng *rand.Rand
}

func NewGreedy(src rand.Source) *Greedy {
	return &Greedy{rng: rand.New(src)}
}

func (p *Greedy) Decide(g *game.Grid) types.Direction {
	dirs := candidates(g.Heading())

	best := make([]types.Direction, 0, len(dirs))
	bestValue := -2.0
	for _, d := range dirs {
		v := p.Evaluate(g, d)
		switch {
		case v > bestValue:
			bestValue = v
			best = append(best[:0], d)
		case v == bestValue:
			best = append(best, d)
		}
	}
	if len(best) == 1 {
		return best[0]
	}
	return best[p.rng.Intn(len(best))]
}

// Evaluate returns a value in [-1, 1] for moving the head in dir: -1 is an
// immediate collision, 1 is eating the food.
func (p *Greedy) Evaluate(g *game.Grid, dir types.Direction) float64 {
	head := g.Head()
	next, _ := g.Step(head, dir)
	if g.Blocked(next) {
		return -1.0
	}

	// Scale the danger by how far the next obstacle is along dir.
	var dangerValue float64
	if d := clearance(g, next, dir); d > 0 {
		dangerValue = -1.0 / float64(d+1)
	}

	food, ok := g.Food()
	if !ok {
		return dangerValue
	}
	if next == food {
		return 1.0
	}

	wrap := g.EdgePolicy() == types.EdgeWrap
	foodDist := types.Distance(next, food, g.Width(), g.Height(), wrap)
	currentDist := types.Distance(head, food, g.Width(), g.Height(), wrap)

	switch {
	case foodDist < currentDist:
		if dangerValue == 0 {
			return 0.5
		}
		return max(dangerValue, 0.5*(1+dangerValue))
	case foodDist > currentDist:
		return min(dangerValue, -0.3)
	default:
		return dangerValue
	}
}

// clearance counts the free cells ahead of pos along dir before an obstacle.
// It returns 0 when the path stays clear for a full lap.
func clearance(g *game.Grid, pos types.Position, dir types.Direction) int {
	limit := max(g.Width(), g.Height())
	for d := 1; d <= limit; d++ {
		var ok bool
		pos, ok = g.Step(pos, dir)
		if !ok || g.Blocked(pos) {
			return d
		}
	}
	return 0
}
