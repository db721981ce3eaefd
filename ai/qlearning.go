package ai

import (
	"math"

	"gridsnake/game"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Learner is a Policy that is trained on the outcome of its own moves. The
// driver calls Learn after every tick and EndEpisode when a game ends.
type Learner interface {
	Policy
	Learn(g *game.Grid)
	EndEpisode()
}

// Rewards for one move.
const (
	rewardFood    = 1.0
	rewardCloser  = 0.5
	rewardFarther = -0.3
	rewardDeath   = -1.0
)

// QTable maps an encoded state to the values of the front, left and right
// moves.
type QTable map[string][3]float64

// QLearning is a tabular Q-learning autopilot. The state seen by the table is
// the danger and food signals of the three non-reversing moves, so it does
// not depend on the grid size. The table lives in memory only.
type QLearning struct {
	QTable         QTable
	LearningRate   float64
	Discount       float64
	InitialEpsilon float64
	MinEpsilon     float64
	EpsilonDecay   float64
	Episodes       int

	rng *rand.Rand

	// move waiting for its reward
	pending bool
	state   string
	action  int
	score   int
	dist    int
}

func NewQLearning(src rand.Source) *QLearning {
	return &QLearning{
		QTable:         make(QTable),
		LearningRate:   0.1,
		Discount:       0.9,
		InitialEpsilon: 0.9,
		MinEpsilon:     0.01,
		EpsilonDecay:   0.98,
		rng:            rand.New(src),
	}
}

// Epsilon is the exploration rate for the current episode.
func (q *QLearning) Epsilon() float64 {
	return math.Max(q.MinEpsilon, q.InitialEpsilon*math.Pow(q.EpsilonDecay, float64(q.Episodes)))
}

// Decide picks a move epsilon-greedily and remembers it for Learn.
func (q *QLearning) Decide(g *game.Grid) types.Direction {
	state := encodeState(g)

	var action int
	if q.rng.Float64() < q.Epsilon() {
		action = q.rng.Intn(3)
	} else {
		action = q.bestAction(state)
	}

	q.pending = true
	q.state = state
	q.action = action
	q.score = g.Score()
	q.dist = foodDistance(g, g.Head())
	return candidates(g.Heading())[action]
}

// Learn rewards the last decided move with the grid state after the tick.
func (q *QLearning) Learn(g *game.Grid) {
	if !q.pending {
		return
	}
	q.pending = false

	reward := 0.0
	dist := foodDistance(g, g.Head())
	switch {
	case !g.IsAlive():
		reward = rewardDeath
	case g.Score() > q.score:
		reward = rewardFood
	case q.dist >= 0 && dist >= 0 && dist < q.dist:
		reward = rewardCloser
	case q.dist >= 0 && dist > q.dist:
		reward = rewardFarther
	}

	// Q(s,a) += lr * (r + discount * max Q(s',a') - Q(s,a)); a dead snake has
	// no next state.
	var maxNext float64
	if g.IsAlive() {
		next := q.QTable[encodeState(g)]
		maxNext = max(next[0], next[1], next[2])
	}
	values := q.QTable[q.state]
	values[q.action] += q.LearningRate * (reward + q.Discount*maxNext - values[q.action])
	q.QTable[q.state] = values
}

func (q *QLearning) EndEpisode() {
	q.pending = false
	q.Episodes++
}

// bestAction returns the highest valued move; ties go to the earlier move,
// so an unseen state keeps going straight.
func (q *QLearning) bestAction(state string) int {
	values := q.QTable[state]
	best := 0
	for a := 1; a < len(values); a++ {
		if values[a] > values[best] {
			best = a
		}
	}
	return best
}

// encodeState packs, for front, left and right, whether the move is blocked
// and whether it brings the head closer to the food.
func encodeState(g *game.Grid) string {
	head := g.Head()
	current := foodDistance(g, head)

	key := make([]byte, 0, 6)
	for _, d := range candidates(g.Heading()) {
		next, _ := g.Step(head, d)
		danger, closer := byte('0'), byte('0')
		if g.Blocked(next) {
			danger = '1'
		}
		if current >= 0 && foodDistance(g, next) < current {
			closer = '1'
		}
		key = append(key, danger, closer)
	}
	return string(key)
}

// foodDistance returns -1 when there is no food on the grid.
func foodDistance(g *game.Grid, p types.Position) int {
	food, ok := g.Food()
	if !ok {
		return -1
	}
	return types.Distance(p, food, g.Width(), g.Height(), g.EdgePolicy() == types.EdgeWrap)
}
