package manager

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

func TestCollisionPrecedence(t *testing.T) {
	cm := NewCollisionManager(3, 3, types.EdgeBounded)
	snake := entity.NewSnake([]types.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})

	if got := cm.CheckCollision(types.Position{Row: 0, Col: 1}, snake); got != types.SelfCollision {
		t.Errorf("expected self collision, got %v", got)
	}
	if got := cm.CheckCollision(types.Position{Row: 0, Col: 2}, snake); got != types.NoCollision {
		t.Errorf("tail cell should be free, got %v", got)
	}
	if got := cm.CheckCollision(types.Position{Row: -1, Col: 0}, snake); got != types.WallCollision {
		t.Errorf("expected wall collision, got %v", got)
	}
}

func TestStepWraps(t *testing.T) {
	cm := NewCollisionManager(4, 2, types.EdgeWrap)
	tests := []struct {
		from types.Position
		dir  types.Direction
		want types.Position
	}{
		{types.Position{Row: 0, Col: 3}, types.Right, types.Position{Row: 0, Col: 0}},
		{types.Position{Row: 0, Col: 0}, types.Left, types.Position{Row: 0, Col: 3}},
		{types.Position{Row: 0, Col: 1}, types.Up, types.Position{Row: 1, Col: 1}},
		{types.Position{Row: 1, Col: 1}, types.Down, types.Position{Row: 0, Col: 1}},
	}
	for _, tt := range tests {
		if got := cm.Step(tt.from, tt.dir); got != tt.want {
			t.Errorf("Step(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
		}
	}

	bounded := NewCollisionManager(4, 2, types.EdgeBounded)
	if got := bounded.Step(types.Position{Row: 0, Col: 3}, types.Right); bounded.InBounds(got) {
		t.Errorf("bounded step should leave the grid, got %v", got)
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	snake := entity.NewSnake([]types.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}})
	fm := NewFoodManager(2, 2, rand.NewSource(3))
	for i := 0; i < 50; i++ {
		food, ok := fm.GenerateFood(snake)
		if !ok {
			t.Fatal("expected a free cell")
		}
		if food != (types.Position{Row: 1, Col: 0}) {
			t.Fatalf("food placed on occupied cell %v", food)
		}
	}
}

func TestGenerateFoodCoversFreeCells(t *testing.T) {
	snake := entity.NewSnake([]types.Position{{Row: 0, Col: 0}})
	fm := NewFoodManager(3, 3, rand.NewSource(11))
	seen := make(map[types.Position]bool)
	for i := 0; i < 500; i++ {
		food, _ := fm.GenerateFood(snake)
		seen[food] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected all 8 free cells to be drawn, got %d", len(seen))
	}
	if seen[types.Position{}] {
		t.Error("food drawn on the snake")
	}
}

func TestGenerateFoodFullGrid(t *testing.T) {
	snake := entity.NewSnake([]types.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	fm := NewFoodManager(2, 1, rand.NewSource(1))
	if _, ok := fm.GenerateFood(snake); ok {
		t.Error("expected no food on a full grid")
	}
	if fm.IsFoodCollision(types.Position{}) {
		t.Error("no food means no food collision")
	}
}
