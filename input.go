package main

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
}

// pressedDirections returns the directions whose keys went down this frame,
// in binding order. The grid keeps only the last accepted one.
func pressedDirections() []types.Direction {
	var dirs []types.Direction
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			dirs = append(dirs, b.dir)
		}
	}
	return dirs
}
