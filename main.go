package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/session"
	"gridsnake/stats"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/rand"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", os.Getenv("GRIDSNAKE_CONFIG"), "TOML config file")
	layoutPath := flag.String("layout", "", "YAML start layout, overrides [game] layout")
	headless := flag.Bool("headless", false, "play episodes with the autopilot instead of opening a window")
	episodes := flag.Int("episodes", 100, "episodes to play in headless mode")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if *layoutPath != "" {
		cfg.Game.Layout = *layoutPath
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("session", uuid.New().String()))

	newGrid, err := gridFactory(cfg.Game, log)
	if err != nil {
		return err
	}

	policy, err := newPolicy(cfg.Autopilot, log)
	if err != nil {
		return fmt.Errorf("init autopilot: %w", err)
	}
	if closer, ok := policy.(interface{ Close() }); ok {
		defer closer.Close()
	}

	st := stats.NewGameStats()

	if *headless {
		if policy == nil {
			policy = ai.NewGreedy(rand.NewSource(rand.Uint64()))
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := session.NewRunner(newGrid, policy, st, cfg.Loop.MaxTicks, log)
		if err := runner.Run(ctx, *episodes); err != nil {
			return fmt.Errorf("headless run: %w", err)
		}
		if q, ok := policy.(*ai.QLearning); ok {
			log.Info("q-table trained", zap.Int("states", len(q.QTable)), zap.Float64("epsilon", q.Epsilon()))
		}
		return nil
	}

	return runWindow(cfg, newGrid, policy, st, log)
}

// gridFactory returns a constructor for fresh grids. A fixed seed derives a
// new seed per grid so restarts do not replay the same food.
func gridFactory(gc config.GameConfig, log *zap.Logger) (func() (*game.Grid, error), error) {
	var seeds *rand.Rand
	if gc.Seed != 0 {
		seeds = rand.New(rand.NewSource(gc.Seed))
	}
	extra := func() []game.Option {
		opts := []game.Option{game.WithLogger(log)}
		if seeds != nil {
			opts = append(opts, game.WithSeed(seeds.Uint64()))
		}
		return opts
	}

	if gc.Layout != "" {
		layout, err := config.LoadLayout(gc.Layout)
		if err != nil {
			return nil, fmt.Errorf("load layout: %w", err)
		}
		base := gc.Options()
		return func() (*game.Grid, error) {
			opts := append(append([]game.Option{}, base...), extra()...)
			return layout.NewGrid(opts...)
		}, nil
	}

	return func() (*game.Grid, error) {
		opts := append(gc.Options(), extra()...)
		return game.New(gc.Width, gc.Height, opts...)
	}, nil
}

// newPolicy returns nil when the autopilot is off.
func newPolicy(cfg config.AutopilotConfig, log *zap.Logger) (ai.Policy, error) {
	switch cfg.Mode {
	case "greedy":
		return ai.NewGreedy(rand.NewSource(rand.Uint64())), nil
	case "qlearning":
		return ai.NewQLearning(rand.NewSource(rand.Uint64())), nil
	case "script":
		s, err := ai.NewScript(cfg.Script, log.Named("lua"))
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, nil
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
