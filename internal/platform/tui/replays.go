package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Replay browser layout constants
const (
	minWidthForDetail = 90  // Minimum width to show the detail panel beside the table
	detailWidth       = 36  // Width of the detail panel
	maxReplays        = 100 // Max replays to load
)

// EntryFromRecording converts a finished round into a storage row.
func EntryFromRecording(r t2048.Recording) storage.ReplayEntry {
	return storage.ReplayEntry{
		Variant: r.Variant,
		Size:    r.Size,
		Seed:    r.Seed,
		Moves:   t2048.EncodeMoves(r.Moves),
		Outcome: string(r.Outcome),
	}
}

// RecordingFromEntry converts a storage row back into a recording.
func RecordingFromEntry(e storage.ReplayEntry) (t2048.Recording, error) {
	moves, err := t2048.DecodeMoves(e.Moves)
	if err != nil {
		return t2048.Recording{}, fmt.Errorf("replay %d: %w", e.ID, err)
	}
	return t2048.Recording{
		Variant: e.Variant,
		Size:    e.Size,
		Seed:    e.Seed,
		Moves:   moves,
		Outcome: t2048.Outcome(e.Outcome),
	}, nil
}

// SaverFor returns store as a ReplaySaver, or nil when there is no store.
func SaverFor(store *storage.Store) ReplaySaver {
	if store == nil {
		return nil
	}
	return store
}

// ReplayKeyMap defines the key bindings for the replay browser.
type ReplayKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Delete     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayBrowserModel is the Bubble Tea model for browsing recorded rounds.
// The detail panel replays the highlighted round to show its final board.
type ReplayBrowserModel struct {
	filters    []string // "" means every variant
	filter     int
	store      *storage.Store
	replays    []storage.ReplayEntry
	counts     map[string]int // outcome tally for the filtered variant
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ReplayKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
	showDetail bool
}

// NewReplayBrowserModel creates a new replay browser.
func NewReplayBrowserModel(store *storage.Store, width, height int) ReplayBrowserModel {
	filters := []string{""}
	for _, info := range registry.List() {
		filters = append(filters, info.ID)
	}

	h := help.New()
	h.ShowAll = false

	m := ReplayBrowserModel{
		filters:    filters,
		store:      store,
		keys:       DefaultReplayKeyMap(),
		help:       h,
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}

	m.table = m.createTable()
	m.loadReplays()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ReplayBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Variant", Width: 10},
		{Title: "Size", Width: 5},
		{Title: "Moves", Width: 6},
		{Title: "Outcome", Width: 10},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays loads replays for the current filter.
func (m *ReplayBrowserModel) loadReplays() {
	m.replays, m.counts, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	variant := m.filters[m.filter]
	m.replays, m.loadErr = m.store.RecentReplays(variant, maxReplays)
	if m.loadErr == nil && variant != "" {
		m.counts, m.loadErr = m.store.OutcomeCounts(variant)
	}
	m.updateTableRows()
}

// deleteSelected removes the highlighted replay and reloads the list,
// keeping the cursor near where it was.
func (m *ReplayBrowserModel) deleteSelected() {
	cursor := m.table.Cursor()
	if m.store == nil || cursor < 0 || cursor >= len(m.replays) {
		return
	}

	if err := m.store.DeleteReplay(m.replays[cursor].ID); err != nil {
		m.loadErr = err
		return
	}

	m.loadReplays()
	if len(m.replays) > 0 {
		m.table.SetCursor(min(cursor, len(m.replays)-1))
	}
}

// updateTableRows updates the table with current replays.
func (m *ReplayBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Variant,
			fmt.Sprintf("%dx%d", r.Size, r.Size),
			fmt.Sprintf("%d", r.MoveCount()),
			r.Outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the replay browser.
func (m ReplayBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplayBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(m.filters)
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.loadReplays()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay browser.
func (m ReplayBrowserModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	filter := "all variants"
	if f := m.filters[m.filter]; f != "" {
		filter = f
	}
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("REPLAYS - %s", filter), m.width)))
	b.WriteString("\n")
	if m.counts != nil {
		b.WriteString(centerText(m.tally(), m.width))
	}
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := boxStyle.Render(m.renderTableContent())
	if m.showDetail {
		detail := boxStyle.Width(detailWidth).Render(m.renderDetail())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", detail))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tally summarizes how the filtered variant's rounds ended.
func (m ReplayBrowserModel) tally() string {
	outcomes := []t2048.Outcome{
		t2048.OutcomeWin, t2048.OutcomeNoMoves, t2048.OutcomeOverflow, t2048.OutcomeAbandoned,
	}
	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		parts = append(parts, fmt.Sprintf("%s: %d", o, m.counts[string(o)]))
	}
	return strings.Join(parts, "  ")
}

// renderTableContent renders the table or empty message.
func (m ReplayBrowserModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Replay database unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load replays:\n" + m.loadErr.Error())
	case len(m.replays) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nFinish a round to record one!")
	}

	return m.table.View()
}

// renderDetail replays the highlighted round and shows its final board.
func (m ReplayBrowserModel) renderDetail() string {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.replays) {
		return "Select a round"
	}

	entry := m.replays[cursor]
	rec, err := RecordingFromEntry(entry)
	if err != nil {
		return err.Error()
	}
	snap, err := t2048.Replay(rec)
	if err != nil {
		return fmt.Sprintf("Replay #%d failed:\n%v", entry.ID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Replay #%d\n\n", entry.ID)
	b.WriteString(snap.Board.String())
	fmt.Fprintf(&b, "\nScore:    %d\n", snap.Score)
	fmt.Fprintf(&b, "Max tile: %d\n", snap.MaxTile)
	fmt.Fprintf(&b, "Seed:     %d", entry.Seed)
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplayBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplayBrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunReplayBrowser runs the replay browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunReplayBrowser(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewReplayBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReplayBrowserModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
