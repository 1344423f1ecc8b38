package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	menu, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return menu
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	view := m.View()
	for _, v := range t2048.Variants {
		if !strings.Contains(view, v.Title) {
			t.Errorf("menu missing variant %q", v.Title)
		}
	}
	if !strings.Contains(view, "4x4") {
		t.Error("menu should show the default board size")
	}
}

func TestMenuSizeIsClamped(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	for range 10 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.Size() != t2048.MaxSize {
		t.Errorf("Size = %d, want %d", m.Size(), t2048.MaxSize)
	}

	for range 10 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Size() != t2048.MinSize {
		t.Errorf("Size = %d, want %d", m.Size(), t2048.MinSize)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.VariantID != "overflow" {
		t.Errorf("selected %q, want overflow", sel.VariantID)
	}
}

func TestMenuReplaysAndQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	if m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab}); !m.WantsReplays() {
		t.Error("tab should open replays")
	}

	m = NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	if m = menuUpdate(t, m, runeKey('q')); !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("too long", 3); got != "too long" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
