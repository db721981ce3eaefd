package entity

import (
	"testing"

	"gridsnake/game/types"
)

func TestSnakeMoveAndRemoveTail(t *testing.T) {
	s := NewSnake([]types.Position{{Row: 0, Col: 1}, {Row: 0, Col: 0}})
	s.Move(types.Position{Row: 0, Col: 2})
	if s.Len() != 3 || s.GetHead() != (types.Position{Row: 0, Col: 2}) {
		t.Fatalf("unexpected body after move: %v", s.Body)
	}
	s.RemoveTail()
	if s.Len() != 2 || s.GetTail() != (types.Position{Row: 0, Col: 1}) {
		t.Fatalf("unexpected body after removing tail: %v", s.Body)
	}

	s.RemoveTail()
	s.RemoveTail()
	if s.Len() != 1 {
		t.Errorf("head must never be removed, length %d", s.Len())
	}
}

func TestSnakeContains(t *testing.T) {
	s := NewSnake([]types.Position{{Row: 1, Col: 1}, {Row: 1, Col: 0}})
	tail := types.Position{Row: 1, Col: 0}
	if !s.Contains(tail, false) {
		t.Error("expected tail to be contained")
	}
	if s.Contains(tail, true) {
		t.Error("tail should be skipped")
	}
}

func TestSnakeCopiesBody(t *testing.T) {
	body := []types.Position{{Row: 2, Col: 2}}
	s := NewSnake(body)
	body[0] = types.Position{}
	if s.GetHead() != (types.Position{Row: 2, Col: 2}) {
		t.Error("snake shares the caller's slice")
	}
	out := s.Positions()
	out[0] = types.Position{}
	if s.GetHead() != (types.Position{Row: 2, Col: 2}) {
		t.Error("Positions exposes internal storage")
	}
}
