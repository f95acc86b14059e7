package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/infestation/internal/levels"
	"github.com/arcadelab/infestation/internal/storage"
)

// ProgressKeyMap defines the key bindings for the progress board.
type ProgressKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model for the campaign progress board.
type ProgressModel struct {
	table     table.Model
	help      help.Model
	keys      ProgressKeyMap
	quitting  bool
	goingBack bool
}

// NewProgressModel builds the progress board from stored completions.
func NewProgressModel(reg *levels.Registry, store *storage.Store) ProgressModel {
	columns := []table.Column{
		{Title: "Level", Width: 24},
		{Title: "Best Moves", Width: 12},
		{Title: "Completed", Width: 18},
	}

	names := reg.Names()
	var rows []table.Row
	if store != nil {
		if entries, err := store.Completed(); err == nil {
			for _, e := range entries {
				name := names[e.LevelID]
				if name == "" {
					name = e.LevelID
				}
				rows = append(rows, table.Row{
					name,
					fmt.Sprintf("%d", e.BestMoves),
					e.CompletedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)

	h := help.New()
	h.ShowAll = false

	return ProgressModel{
		table: t,
		help:  h,
		keys:  DefaultProgressKeyMap(),
	}
}

// GoingBack reports whether the user backed out rather than quit.
func (m ProgressModel) GoingBack() bool { return m.goingBack }

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and dismissal.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	title := menuTitleStyle.Render("CAMPAIGN PROGRESS")
	if len(m.table.Rows()) == 0 {
		return title + "\n\nNo levels cleared yet.\n\n" + m.help.View(m.keys)
	}
	return title + "\n\n" + m.table.View() + "\n\n" + m.help.View(m.keys)
}
