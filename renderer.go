package main

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/stats"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusHeight = 40 // Space below the grid for the status line

var (
	gridColor  = rl.NewColor(0xCC, 0xCC, 0xCC, 0xFF)
	emptyColor = rl.White
	snakeColor = rl.Black
	foodColor  = rl.Red
	headColor  = rl.Yellow
)

// Renderer paints a grid's cell buffer: every cell is cellSize pixels with
// a one pixel grid line around it.
type Renderer struct {
	cellSize     int32
	columns      int32
	rows         int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cellSize, columns, rows int32) *Renderer {
	return &Renderer{
		cellSize:     cellSize,
		columns:      columns,
		rows:         rows,
		screenWidth:  (cellSize+1)*columns + 1,
		screenHeight: (cellSize+1)*rows + 1 + statusHeight,
	}
}

func (r *Renderer) Draw(g *game.Grid, st *stats.GameStats, autopilot bool) {
	rl.BeginDrawing()
	rl.ClearBackground(gridColor)

	r.drawCells(g)
	r.drawHead(g)
	r.drawStatus(g, st, autopilot)

	rl.EndDrawing()
}

func (r *Renderer) cellOrigin(row, col int32) (int32, int32) {
	return col*(r.cellSize+1) + 1, row*(r.cellSize+1) + 1
}

func (r *Renderer) drawCells(g *game.Grid) {
	for i, cell := range g.Cells() {
		row := int32(i / g.Width())
		col := int32(i % g.Width())
		color := emptyColor
		switch cell {
		case types.SnakeOccupied:
			color = snakeColor
		case types.Food:
			color = foodColor
		}
		x, y := r.cellOrigin(row, col)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
}

// drawHead marks the head with a triangle pointing along the heading.
func (r *Renderer) drawHead(g *game.Grid) {
	head := g.Head()
	x, y := r.cellOrigin(int32(head.Row), int32(head.Col))
	fx, fy := float32(x), float32(y)
	size := float32(r.cellSize)
	half := size / 2

	var v1, v2, v3 rl.Vector2
	switch g.Heading() {
	case types.Right:
		v1 = rl.Vector2{X: fx + size, Y: fy + half}
		v2 = rl.Vector2{X: fx + half, Y: fy}
		v3 = rl.Vector2{X: fx + half, Y: fy + size}
	case types.Left:
		v1 = rl.Vector2{X: fx, Y: fy + half}
		v2 = rl.Vector2{X: fx + half, Y: fy + size}
		v3 = rl.Vector2{X: fx + half, Y: fy}
	case types.Down:
		v1 = rl.Vector2{X: fx + half, Y: fy + size}
		v2 = rl.Vector2{X: fx + size, Y: fy + half}
		v3 = rl.Vector2{X: fx, Y: fy + half}
	default: // Up
		v1 = rl.Vector2{X: fx + half, Y: fy}
		v2 = rl.Vector2{X: fx, Y: fy + half}
		v3 = rl.Vector2{X: fx + size, Y: fy + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(v1, v2, v3, headColor)
}

func (r *Renderer) drawStatus(g *game.Grid, st *stats.GameStats, autopilot bool) {
	y := r.screenHeight - statusHeight + 10
	fontSize := int32(20)

	status := "playing"
	if !g.IsAlive() {
		status = fmt.Sprintf("game over (%v) - R to restart", g.Cause())
	}
	if autopilot {
		status += " [autopilot]"
	}
	rl.DrawText(status, 10, y, fontSize, rl.DarkGray)

	summary := fmt.Sprintf("Score: %d  Best: %d  Games: %d", g.Score(), st.GetMaxScore(), st.GetGamesPlayed())
	width := rl.MeasureText(summary, fontSize)
	rl.DrawText(summary, r.screenWidth-width-10, y, fontSize, rl.DarkGray)
}
