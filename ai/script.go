package ai

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Script runs a Lua autopilot. The script must define a global function
// decide(state) returning "up", "down", "left" or "right". A helper
// blocked(row, col) is available while decide runs.
// Single-goroutine access only.
type Script struct {
	vm   *lua.LState
	log  *zap.Logger
	grid *game.Grid
}

// NewScript loads the Lua file at path.
func NewScript(path string, log *zap.Logger) (*Script, error) {
	s := newScript(log)
	if err := s.vm.DoFile(path); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := s.check(); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.log.Debug("loaded lua autopilot", zap.String("file", path))
	return s, nil
}

// NewScriptString loads Lua source held in memory.
func NewScriptString(src string, log *zap.Logger) (*Script, error) {
	s := newScript(log)
	if err := s.vm.DoString(src); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	if err := s.check(); err != nil {
		s.vm.Close()
		return nil, err
	}
	return s, nil
}

func newScript(log *zap.Logger) *Script {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Script{
		vm:  lua.NewState(),
		log: log,
	}
	s.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	s.vm.SetGlobal("blocked", s.vm.NewFunction(s.luaBlocked))
	return s
}

func (s *Script) check() error {
	if fn := s.vm.GetGlobal("decide"); fn.Type() != lua.LTFunction {
		return fmt.Errorf("script does not define decide(state)")
	}
	return nil
}

// luaBlocked implements blocked(row, col) for the grid being decided on.
func (s *Script) luaBlocked(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	if s.grid == nil {
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LBool(s.grid.Blocked(types.Position{Row: row, Col: col})))
	return 1
}

// Decide calls the script. Errors and unknown answers keep the current
// heading.
func (s *Script) Decide(g *game.Grid) types.Direction {
	s.grid = g
	defer func() { s.grid = nil }()

	fn := s.vm.GetGlobal("decide")
	if err := s.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, s.stateTable(g)); err != nil {
		s.log.Error("lua decide error", zap.Error(err))
		return g.Heading()
	}

	ret := s.vm.Get(-1)
	s.vm.Pop(1)

	str, ok := ret.(lua.LString)
	if !ok {
		s.log.Error("lua decide returned non-string", zap.String("type", ret.Type().String()))
		return g.Heading()
	}
	d, err := types.ParseDirection(string(str))
	if err != nil {
		s.log.Error("lua decide returned unknown direction", zap.Error(err))
		return g.Heading()
	}
	return d
}

func (s *Script) stateTable(g *game.Grid) *lua.LTable {
	t := s.vm.NewTable()
	t.RawSetString("width", lua.LNumber(g.Width()))
	t.RawSetString("height", lua.LNumber(g.Height()))
	t.RawSetString("heading", lua.LString(g.Heading().String()))
	t.RawSetString("edge", lua.LString(g.EdgePolicy().String()))
	t.RawSetString("length", lua.LNumber(g.Len()))
	t.RawSetString("score", lua.LNumber(g.Score()))
	t.RawSetString("head", s.cell(g.Head()))

	body := s.vm.NewTable()
	for _, p := range g.Snake() {
		body.Append(s.cell(p))
	}
	t.RawSetString("body", body)

	if food, ok := g.Food(); ok {
		t.RawSetString("food", s.cell(food))
	}
	return t
}

func (s *Script) cell(p types.Position) *lua.LTable {
	c := s.vm.NewTable()
	c.RawSetString("row", lua.LNumber(p.Row))
	c.RawSetString("col", lua.LNumber(p.Col))
	return c
}

func (s *Script) Close() {
	s.vm.Close()
}
