// Package session drives grids: a fixed-period loop for interactive play and
// a headless runner that plays whole episodes with an autopilot.
package session

import (
	"context"
	"fmt"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/stats"

	"go.uber.org/zap"
)

// Loop ticks g every interval until the snake dies or ctx is done. When
// input is not nil it is asked for a direction before each tick. frame runs
// after each tick. Loop returns nil on death and ctx.Err() on cancellation.
func Loop(ctx context.Context, g *game.Grid, interval time.Duration, input ai.Policy, frame func(*game.Grid)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for g.IsAlive() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if input != nil {
			g.SetDirection(input.Decide(g))
		}
		g.Tick()
		if frame != nil {
			frame(g)
		}
	}
	return nil
}

// CauseTimeout marks an episode stopped by the tick cap.
const CauseTimeout = "timeout"

// Runner plays headless episodes back to back.
type Runner struct {
	newGrid  func() (*game.Grid, error)
	policy   ai.Policy
	stats    *stats.GameStats
	maxTicks int
	log      *zap.Logger
	now      func() time.Time
}

// NewRunner builds a runner. maxTicks caps an episode; 0 means no cap.
func NewRunner(newGrid func() (*game.Grid, error), policy ai.Policy, st *stats.GameStats, maxTicks int, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if st == nil {
		st = stats.NewGameStats()
	}
	return &Runner{
		newGrid:  newGrid,
		policy:   policy,
		stats:    st,
		maxTicks: maxTicks,
		log:      log,
		now:      time.Now,
	}
}

func (r *Runner) Stats() *stats.GameStats {
	return r.stats
}

// RunEpisode plays one game to the end and records it. A policy that is
// also an ai.Learner is trained after every tick.
func (r *Runner) RunEpisode(ctx context.Context) (stats.GameRecord, error) {
	g, err := r.newGrid()
	if err != nil {
		return stats.GameRecord{}, fmt.Errorf("new grid: %w", err)
	}

	learner, _ := r.policy.(ai.Learner)
	if learner != nil {
		defer learner.EndEpisode()
	}

	start := r.now()
	for g.IsAlive() {
		if r.maxTicks > 0 && g.Ticks() >= r.maxTicks {
			break
		}
		if err := ctx.Err(); err != nil {
			return stats.GameRecord{}, err
		}
		g.SetDirection(r.policy.Decide(g))
		g.Tick()
		if learner != nil {
			learner.Learn(g)
		}
	}

	cause := g.Cause().String()
	if g.IsAlive() {
		cause = CauseTimeout
	}
	rec := r.stats.AddGame(g.Score(), g.Ticks(), cause, start, r.now())

	r.log.Debug("episode finished",
		zap.String("id", rec.ID),
		zap.Int("score", rec.Score),
		zap.Int("ticks", rec.Ticks),
		zap.String("cause", rec.Cause))
	return rec, nil
}

// Run plays episodes until n have finished or ctx is done.
func (r *Runner) Run(ctx context.Context, n int) error {
	for episode := 0; episode < n; episode++ {
		if _, err := r.RunEpisode(ctx); err != nil {
			return fmt.Errorf("episode %d: %w", episode+1, err)
		}
		if (episode+1)%50 == 0 {
			r.log.Info("progress",
				zap.Int("episodes", episode+1),
				zap.Float64("avg_score", r.stats.GetAverageScore()),
				zap.Int("max_score", r.stats.GetMaxScore()))
		}
	}
	r.log.Info("run finished",
		zap.Int("episodes", r.stats.GetGamesPlayed()),
		zap.Float64("avg_score", r.stats.GetAverageScore()),
		zap.Float64("median_score", r.stats.GetMedianScore()),
		zap.Int("max_score", r.stats.GetMaxScore()),
		zap.Float64("avg_ticks", r.stats.GetAverageTicks()))
	return nil
}
