package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/blockfall/internal/storage"
)

// History layout constants
const (
	maxSessions   = 100 // Max sessions to load
	historyChrome = 8   // Title, totals, borders and help bar
)

// historyHeaders are the column titles shared by the interactive and plain views.
var historyHeaders = []string{"When", "Frontend", "User", "Pieces", "Clears", "Ticks", "Time", "End"}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.PrevView, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next frontend"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev frontend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded sessions.
type HistoryModel struct {
	store    *storage.Store
	filters  []string // "" means every frontend
	filter   int
	sessions []storage.SessionRecord
	totals   storage.Totals
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser. frontends lists the names that
// can be filtered on, in display order.
func NewHistoryModel(store *storage.Store, frontends []string, width, height int) HistoryModel {
	m := HistoryModel{
		store:   store,
		filters: append([]string{""}, frontends...),
		keys:    DefaultHistoryKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	widths := []int{12, 9, 10, 6, 6, 6, 8, 9}
	columns := make([]table.Column, len(historyHeaders))
	for i, h := range historyHeaders {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
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

// load reads sessions for the current filter from the store.
func (m *HistoryModel) load() {
	m.sessions, m.loadErr = nil, nil
	if m.store != nil {
		m.sessions, m.loadErr = m.store.RecentSessions(m.filters[m.filter], maxSessions)
		if m.loadErr == nil {
			m.totals, m.loadErr = m.store.Totals()
		}
	}

	rows := make([]table.Row, len(m.sessions))
	for i, rec := range m.sessions {
		rows[i] = SessionRow(rec)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.filter = (m.filter + 1) % len(m.filters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Filter returns the frontend currently shown, "" for all.
func (m HistoryModel) Filter() string {
	return m.filters[m.filter]
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	view := "all frontends"
	if f := m.Filter(); f != "" {
		view = f
	}
	b.WriteString(titleStyle.Render("SESSION HISTORY - " + view))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(FormatTotals(m.totals)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.loadErr != nil:
		b.WriteString(boxStyle.Render("Could not read history: " + m.loadErr.Error()))
	case len(m.sessions) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No sessions recorded yet.")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// SessionRow formats one session for display.
func SessionRow(rec storage.SessionRecord) []string {
	end := "quit"
	if rec.ToppedOut {
		end = "topped"
	}
	user := rec.User
	if user == "" {
		user = "-"
	}
	return []string{
		rec.CreatedAt.Format("Jan 02 15:04"),
		rec.Frontend,
		user,
		strconv.Itoa(rec.PiecesLocked),
		strconv.Itoa(rec.BoardClears),
		strconv.Itoa(rec.Ticks),
		rec.Duration.Round(time.Second).String(),
		end,
	}
}

// FormatTotals summarizes the aggregate statistics in one line.
func FormatTotals(t storage.Totals) string {
	return fmt.Sprintf("%d sessions, %d pieces locked, %d clears, %s played",
		t.Sessions, t.PiecesLocked, t.BoardClears, t.PlayTime.Round(time.Second))
}

// RenderHistoryTable renders sessions as a static table, for non-interactive
// output.
func RenderHistoryTable(recs []storage.SessionRecord) string {
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(historyHeaders...)
	for _, rec := range recs {
		t.Row(SessionRow(rec)...)
	}
	return t.String()
}

// RunHistory runs the interactive history browser.
func RunHistory(store *storage.Store, frontends []string, width, height int) error {
	model := NewHistoryModel(store, frontends, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
