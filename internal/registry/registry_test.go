package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mini2d/internal/core"
)

type stubDemo struct {
	id    string
	opts  Options
	state core.GameState
}

func (s *stubDemo) ID() string               { return s.id }
func (s *stubDemo) Title() string            { return "Stub" }
func (s *stubDemo) Reset(core.RuntimeConfig) { s.state = core.GameState{} }
func (s *stubDemo) Render(*core.Screen)      {}
func (s *stubDemo) State() core.GameState    { return s.state }
func (s *stubDemo) Step(core.InputFrame) core.StepResult {
	s.state.Score++
	return core.StepResult{State: s.state}
}

func TestRegisterCreate(t *testing.T) {
	Register(Info{ID: "zz_stub", Title: "Stub"}, func(opts Options) (Demo, error) {
		return &stubDemo{id: "zz_stub", opts: opts}, nil
	})
	t.Cleanup(func() { unregister("zz_stub") })

	if !Exists("zz_stub") {
		t.Fatal("registered demo should exist")
	}

	d, err := Create("zz_stub", Options{ConfigPath: "x.yaml", Difficulty: "hard"})
	if err != nil {
		t.Fatal(err)
	}
	stub := d.(*stubDemo)
	if stub.opts.ConfigPath != "x.yaml" || stub.opts.Difficulty != "hard" {
		t.Errorf("options not forwarded: %+v", stub.opts)
	}

	infos := List()
	if len(infos) == 0 || infos[len(infos)-1].ID != "zz_stub" {
		t.Errorf("List() should be sorted and include the stub: %+v", infos)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Demo, error) { return &stubDemo{}, nil }
	Register(Info{ID: "zz_dup"}, f)
	t.Cleanup(func() { unregister("zz_dup") })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Info{ID: "zz_dup"}, f)
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("does_not_exist", Options{}); err == nil {
		t.Error("unknown demo should fail")
	}

	boom := errors.New("bad config")
	Register(Info{ID: "zz_broken"}, func(Options) (Demo, error) { return nil, boom })
	t.Cleanup(func() { unregister("zz_broken") })

	if _, err := Create("zz_broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}
}
