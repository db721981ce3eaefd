package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Game      GameConfig      `toml:"game"`
	Loop      LoopConfig      `toml:"loop"`
	Autopilot AutopilotConfig `toml:"autopilot"`
	Window    WindowConfig    `toml:"window"`
	Logging   LoggingConfig   `toml:"logging"`
}

type GameConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Edge   string `toml:"edge"` // "bounded" or "wrap"
	Food   bool   `toml:"food"`
	Length int    `toml:"length"`
	Seed   uint64 `toml:"seed"`   // 0 = seed from the clock
	Layout string `toml:"layout"` // optional YAML start layout
}

type LoopConfig struct {
	TickInterval time.Duration `toml:"tick_interval"`
	MaxTicks     int           `toml:"max_ticks"` // headless episode cap, 0 = unlimited
}

type AutopilotConfig struct {
	Mode   string `toml:"mode"` // "off", "greedy", "qlearning" or "script"
	Script string `toml:"script"`
}

type WindowConfig struct {
	CellSize int `toml:"cell_size"`
	FPS      int `toml:"fps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s in %s", ErrInvalidConfig, undecoded[0], path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Width:  128,
			Height: 128,
			Edge:   "bounded",
			Length: game.DefaultLength,
		},
		Loop: LoopConfig{
			TickInterval: 500 * time.Millisecond,
			MaxTicks:     10000,
		},
		Autopilot: AutopilotConfig{
			Mode: "off",
		},
		Window: WindowConfig{
			CellSize: 8,
			FPS:      60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	if c.Game.Width < 1 || c.Game.Height < 1 {
		return fmt.Errorf("%w: game size %dx%d", ErrInvalidConfig, c.Game.Width, c.Game.Height)
	}
	if _, err := types.ParseEdgePolicy(c.Game.Edge); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Loop.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	if c.Loop.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks must not be negative", ErrInvalidConfig)
	}
	switch c.Autopilot.Mode {
	case "off", "greedy", "qlearning":
	case "script":
		if c.Autopilot.Script == "" {
			return fmt.Errorf("%w: autopilot mode script needs a script path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown autopilot mode %q", ErrInvalidConfig, c.Autopilot.Mode)
	}
	if c.Window.CellSize < 1 {
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Options translates the game section into grid options. Width and height
// are passed to game.New separately.
func (g GameConfig) Options() []game.Option {
	edge, _ := types.ParseEdgePolicy(g.Edge)
	opts := []game.Option{
		game.WithEdgePolicy(edge),
		game.WithLength(g.Length),
	}
	if g.Food {
		opts = append(opts, game.WithFood())
	}
	if g.Seed != 0 {
		opts = append(opts, game.WithSeed(g.Seed))
	}
	return opts
}
