package config

import (
	"fmt"
	"os"

	"gridsnake/game"
	"gridsnake/game/types"

	"gopkg.in/yaml.v3"
)

// Layout describes a starting board: its size, edge policy and the initial
// snake. Cells are written as [row, col] pairs, head first.
type Layout struct {
	Name    string   `yaml:"name"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Edge    string   `yaml:"edge"`
	Heading string   `yaml:"heading"`
	Snake   [][2]int `yaml:"snake"`
	Food    *[2]int  `yaml:"food"` // optional; enables food
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if l.Width < 1 || l.Height < 1 {
		return nil, fmt.Errorf("%w: layout %s size %dx%d", ErrInvalidConfig, path, l.Width, l.Height)
	}
	if len(l.Snake) == 0 {
		return nil, fmt.Errorf("%w: layout %s has no snake", ErrInvalidConfig, path)
	}
	if _, err := types.ParseEdgePolicy(l.Edge); err != nil {
		return nil, fmt.Errorf("%w: layout %s: %v", ErrInvalidConfig, path, err)
	}
	if l.Heading == "" {
		l.Heading = types.Right.String()
	}
	if _, err := types.ParseDirection(l.Heading); err != nil {
		return nil, fmt.Errorf("%w: layout %s: %v", ErrInvalidConfig, path, err)
	}
	return &l, nil
}

// Options converts the layout to grid options. The snake itself is checked
// by game.New.
func (l *Layout) Options() []game.Option {
	edge, _ := types.ParseEdgePolicy(l.Edge)
	heading, _ := types.ParseDirection(l.Heading)

	body := make([]types.Position, len(l.Snake))
	for i, c := range l.Snake {
		body[i] = types.Position{Row: c[0], Col: c[1]}
	}

	opts := []game.Option{
		game.WithEdgePolicy(edge),
		game.WithSnake(body, heading),
	}
	if l.Food != nil {
		opts = append(opts, game.WithFoodAt(types.Position{Row: l.Food[0], Col: l.Food[1]}))
	}
	return opts
}

// NewGrid builds a grid from the layout. extra options are applied first so
// the layout wins on edge policy and placement.
func (l *Layout) NewGrid(extra ...game.Option) (*game.Grid, error) {
	opts := append(append([]game.Option{}, extra...), l.Options()...)
	g, err := game.New(l.Width, l.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.Name, err)
	}
	return g, nil
}
