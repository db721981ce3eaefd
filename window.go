package main

import (
	"fmt"
	"time"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/stats"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// runWindow is the interactive driver: keys queue directions, the grid
// ticks every cfg.Loop.TickInterval and the cell buffer is painted every
// frame. R restarts after a game over, P toggles the autopilot, Q quits.
func runWindow(cfg *config.Config, newGrid func() (*game.Grid, error), policy ai.Policy, st *stats.GameStats, log *zap.Logger) error {
	g, err := newGrid()
	if err != nil {
		return fmt.Errorf("new grid: %w", err)
	}

	renderer := NewRenderer(int32(cfg.Window.CellSize), int32(g.Width()), int32(g.Height()))
	rl.InitWindow(renderer.screenWidth, renderer.screenHeight, "gridsnake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	autopilot := false
	startTime := time.Now()
	lastUpdate := time.Now()
	log.Info("game started", zap.Int("width", g.Width()), zap.Int("height", g.Height()))

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyP) && policy != nil {
			autopilot = !autopilot
			log.Info("autopilot toggled", zap.Bool("on", autopilot))
		}
		if rl.IsKeyPressed(rl.KeyR) && !g.IsAlive() {
			if g, err = newGrid(); err != nil {
				return fmt.Errorf("new grid: %w", err)
			}
			startTime = time.Now()
			lastUpdate = startTime
		}

		if !autopilot {
			for _, d := range pressedDirections() {
				g.SetDirection(d)
			}
		}

		// Update game state at fixed interval
		if g.IsAlive() && time.Since(lastUpdate) >= cfg.Loop.TickInterval {
			if autopilot {
				g.SetDirection(policy.Decide(g))
			}
			g.Tick()
			lastUpdate = time.Now()
			if learner, ok := policy.(ai.Learner); ok && autopilot {
				learner.Learn(g)
				if !g.IsAlive() {
					learner.EndEpisode()
				}
			}

			if !g.IsAlive() {
				rec := st.AddGame(g.Score(), g.Ticks(), g.Cause().String(), startTime, time.Now())
				log.Info("game over",
					zap.String("game", rec.ID),
					zap.Int("score", g.Score()),
					zap.Int("ticks", g.Ticks()),
					zap.Stringer("cause", g.Cause()))
			}
		}

		renderer.Draw(g, st, autopilot)
	}
	return nil
}
