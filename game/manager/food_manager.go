package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	width  int
	height int
	rng    *rand.Rand
	food   types.Position
	placed bool
}

func NewFoodManager(width, height int, src rand.Source) *FoodManager {
	return &FoodManager{
		width:  width,
		height: height,
		rng:    rand.New(src),
	}
}

// GenerateFood picks a free cell uniformly at random. It returns false when
// the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Position, bool) {
	free := fm.width*fm.height - snake.Len()
	if free <= 0 {
		fm.placed = false
		return types.Position{}, false
	}

	occupied := make(map[types.Position]struct{}, snake.Len())
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}

	// Index into the free cells in row-major order so every draw succeeds.
	n := fm.rng.Intn(free)
	for row := 0; row < fm.height; row++ {
		for col := 0; col < fm.width; col++ {
			p := types.Position{Row: row, Col: col}
			if _, ok := occupied[p]; ok {
				continue
			}
			if n == 0 {
				fm.food = p
				fm.placed = true
				return p, true
			}
			n--
		}
	}
	fm.placed = false
	return types.Position{}, false
}

// Place puts food at an explicit cell.
func (fm *FoodManager) Place(p types.Position) {
	fm.food = p
	fm.placed = true
}

func (fm *FoodManager) GetFood() (types.Position, bool) {
	return fm.food, fm.placed
}

func (fm *FoodManager) IsFoodCollision(pos types.Position) bool {
	return fm.placed && pos == fm.food
}
