package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func registerStub(t *testing.T, id string) {
	t.Helper()
	Register(Info{ID: id, Title: "Stub " + id}, func() Game { return &stubGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		delete(entries, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "stub-a")

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create(stub-a): %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, want stub-a", g.ID())
	}

	// Each Create returns a fresh instance
	g2, _ := Create("stub-a")
	if g == g2 {
		t.Error("Create should return a new instance each time")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-variant")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Create error = %v, want ErrUnknownVariant", err)
	}
	if Exists("no-such-variant") {
		t.Error("Exists should be false for unknown IDs")
	}
}

func TestListSorted(t *testing.T) {
	registerStub(t, "stub-z")
	registerStub(t, "stub-b")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "stub-dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Info{ID: "stub-dup"}, func() Game { return &stubGame{id: "stub-dup"} })
}
