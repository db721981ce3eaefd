package game

import (
	"strings"

	"gridsnake/game/types"
)

// String renders the grid as text, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			switch c {
			case types.SnakeOccupied:
				b.WriteRune('◼')
			case types.Food:
				b.WriteRune('●')
			default:
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
