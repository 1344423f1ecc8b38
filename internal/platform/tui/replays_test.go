package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestRecordingRoundTrip(t *testing.T) {
	rec := t2048.Recording{
		Variant: "overflow",
		Size:    5,
		Seed:    99,
		Moves:   []t2048.Direction{t2048.DirLeft, t2048.DirUp, t2048.DirRight},
		Outcome: t2048.Outcome("overflow"),
	}

	entry := EntryFromRecording(rec)
	if entry.Moves != "lur" {
		t.Errorf("Moves = %q, want lur", entry.Moves)
	}

	back, err := RecordingFromEntry(entry)
	if err != nil {
		t.Fatalf("RecordingFromEntry: %v", err)
	}
	if back.Variant != rec.Variant || back.Size != rec.Size || back.Seed != rec.Seed || back.Outcome != rec.Outcome {
		t.Errorf("round trip = %+v, want %+v", back, rec)
	}
	if len(back.Moves) != len(rec.Moves) {
		t.Fatalf("Moves len = %d, want %d", len(back.Moves), len(rec.Moves))
	}
}

func TestRecordingFromEntryBadMoves(t *testing.T) {
	if _, err := RecordingFromEntry(storage.ReplayEntry{ID: 3, Moves: "lx"}); err == nil {
		t.Error("expected an error for an unknown move letter")
	}
}

func TestReplayBrowserShowsReplays(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveReplay(storage.ReplayEntry{
		Variant: "classic", Size: 4, Seed: 5, Moves: "", Outcome: "abandoned",
	}); err != nil {
		t.Fatalf("SaveReplay: %v", err)
	}

	m := NewReplayBrowserModel(store, 120, 30)
	if len(m.replays) != 1 {
		t.Fatalf("loaded %d replays, want 1", len(m.replays))
	}

	view := m.View()
	for _, want := range []string{"REPLAYS", "classic", "abandoned", "Replay #1"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestReplayBrowserWithoutStore(t *testing.T) {
	m := NewReplayBrowserModel(nil, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("browser without store should say the database is unavailable")
	}
}

func TestReplayBrowserTallyAndDelete(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	for _, e := range []storage.ReplayEntry{
		{Variant: "classic", Size: 4, Seed: 1, Outcome: "win"},
		{Variant: "classic", Size: 4, Seed: 2, Outcome: "abandoned"},
		{Variant: "overflow", Size: 4, Seed: 3, Outcome: "overflow"},
	} {
		if _, err := store.SaveReplay(e); err != nil {
			t.Fatalf("SaveReplay: %v", err)
		}
	}

	browse := func(m ReplayBrowserModel, msg tea.Msg) ReplayBrowserModel {
		t.Helper()
		next, _ := m.Update(msg)
		model, ok := next.(ReplayBrowserModel)
		if !ok {
			t.Fatalf("Update returned %T, want ReplayBrowserModel", next)
		}
		return model
	}

	m := NewReplayBrowserModel(store, 80, 30)
	if strings.Contains(m.View(), "abandoned: ") {
		t.Error("tally should only show when a variant is selected")
	}

	m = browse(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.filters[m.filter] != "classic" {
		t.Fatalf("filter = %q, want classic", m.filters[m.filter])
	}
	view := m.View()
	for _, want := range []string{"win: 1", "no_moves: 0", "overflow: 0", "abandoned: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// Newest first: the highlighted row is the abandoned round.
	m = browse(m, runeKey('d'))
	if len(m.replays) != 1 || m.replays[0].ID != 1 {
		t.Fatalf("after delete replays = %+v, want only #1", m.replays)
	}
	if m.counts["abandoned"] != 0 || m.counts["win"] != 1 {
		t.Errorf("counts after delete = %v", m.counts)
	}
	if _, err := store.Replay(2); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Replay(2) error = %v, want ErrNotFound", err)
	}
}
