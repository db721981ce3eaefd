package entity

import "gridsnake/game/types"

// Snake is an ordered body, head first and tail last.
type Snake struct {
	Body []types.Position
}

func NewSnake(body []types.Position) *Snake {
	b := make([]types.Position, len(body))
	copy(b, body)
	return &Snake{Body: b}
}

// Move prepends a new head.
func (s *Snake) Move(newHead types.Position) {
	s.Body = append(s.Body, types.Position{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment. The head is never removed.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Position {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Position {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is one of the segments. When skipTail is set the
// tail is ignored since it vacates its cell on a normal move.
func (s *Snake) Contains(p types.Position, skipTail bool) bool {
	n := len(s.Body)
	if skipTail {
		n--
	}
	for i := 0; i < n; i++ {
		if s.Body[i] == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the body.
func (s *Snake) Positions() []types.Position {
	out := make([]types.Position, len(s.Body))
	copy(out, s.Body)
	return out
}
