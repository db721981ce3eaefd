package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
)

func TestLoadValid(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "valid.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.Width != 20 || cfg.Game.Height != 15 {
		t.Errorf("expected 20x15, got %dx%d", cfg.Game.Width, cfg.Game.Height)
	}
	if cfg.Game.Edge != "wrap" || !cfg.Game.Food || cfg.Game.Seed != 42 {
		t.Errorf("unexpected game section: %+v", cfg.Game)
	}
	if cfg.Loop.TickInterval != 120*time.Millisecond {
		t.Errorf("expected 120ms, got %v", cfg.Loop.TickInterval)
	}
	if cfg.Autopilot.Mode != "greedy" {
		t.Errorf("expected greedy autopilot, got %q", cfg.Autopilot.Mode)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected logging section: %+v", cfg.Logging)
	}
	// Untouched sections keep their defaults.
	if cfg.Window.CellSize != 8 {
		t.Errorf("expected default cell size 8, got %d", cfg.Window.CellSize)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "partial.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Game.Width != 32 || cfg.Game.Height != 24 {
		t.Errorf("expected 32x24, got %dx%d", cfg.Game.Width, cfg.Game.Height)
	}
	if cfg.Loop != def.Loop || cfg.Logging != def.Logging || cfg.Game.Edge != def.Game.Edge {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		file    string
		invalid bool
	}{
		{"bad_edge.toml", true},
		{"unknown_key.toml", true},
		{"missing.toml", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Game.Width = 0 }},
		{"zero interval", func(c *Config) { c.Loop.TickInterval = 0 }},
		{"negative max ticks", func(c *Config) { c.Loop.MaxTicks = -1 }},
		{"unknown autopilot", func(c *Config) { c.Autopilot.Mode = "neural" }},
		{"script without path", func(c *Config) { c.Autopilot.Mode = "script" }},
		{"zero cell size", func(c *Config) { c.Window.CellSize = 0 }},
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, mode := range []string{"off", "greedy", "qlearning"} {
		cfg := Default()
		cfg.Autopilot.Mode = mode
		if err := cfg.Validate(); err != nil {
			t.Errorf("mode %q rejected: %v", mode, err)
		}
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGameOptions(t *testing.T) {
	gc := GameConfig{Width: 9, Height: 9, Edge: "wrap", Length: 3, Seed: 5}
	g, err := game.New(gc.Width, gc.Height, gc.Options()...)
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	if g.EdgePolicy() != types.EdgeWrap {
		t.Errorf("expected wrap, got %v", g.EdgePolicy())
	}
	if g.Len() != 3 {
		t.Errorf("expected length 3, got %d", g.Len())
	}
	if _, ok := g.Food(); ok {
		t.Error("food should be off")
	}
}

func TestShippedConfigAndLayout(t *testing.T) {
	cfg, err := Load("snake.toml")
	if err != nil {
		t.Fatalf("shipped config invalid: %v", err)
	}
	if cfg.Loop.TickInterval != 150*time.Millisecond || !cfg.Game.Food {
		t.Errorf("unexpected shipped config: %+v", cfg)
	}

	l, err := LoadLayout(filepath.Join("layouts", "corner.yaml"))
	if err != nil {
		t.Fatalf("shipped layout invalid: %v", err)
	}
	g, err := l.NewGrid(cfg.Game.Options()...)
	if err != nil {
		t.Fatalf("shipped layout does not build: %v", err)
	}
	if g.Heading() != types.Down || g.Len() != 3 {
		t.Errorf("unexpected grid from layout: heading %v length %d", g.Heading(), g.Len())
	}
	if food, ok := g.Food(); !ok || food != (types.Position{Row: 6, Col: 6}) {
		t.Errorf("expected food at (6,6), got %v %v", food, ok)
	}
}
