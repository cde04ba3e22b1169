// Package tui implements the interactive classification review screen. The
// user walks the classified objects in a table, overrides wrong types, and
// the collected corrections are handed back to the caller when the screen
// closes.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6366F1"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model is the bubbletea model for the review screen.
type Model struct {
	objects     []model.ClassifiedObject
	corrections []model.Correction
	table       table.Model
	keys        KeyMap
	types       []model.ObjectType
	pickIndex   int
	picking     bool
	quitting    bool
}

// NewModel builds a review screen over the given classified objects.
func NewModel(objects []model.ClassifiedObject) Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Type", Width: 8},
		{Title: "Conf", Width: 5},
		{Title: "Content", Width: 44},
	}

	rows := make([]table.Row, len(objects))
	for i, obj := range objects {
		rows[i] = table.Row{
			obj.ID,
			string(obj.Type),
			fmt.Sprintf("%.2f", obj.Confidence),
			truncate(obj.Content, 44),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{
		objects: objects,
		table:   t,
		keys:    DefaultKeyMap(),
		types:   model.AllObjectTypes(),
	}
}

// Corrections returns the corrections collected during the session.
func (m Model) Corrections() []model.Correction {
	return m.corrections
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.picking {
		return m.updatePicker(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Correct):
		if len(m.objects) > 0 {
			m.picking = true
			m.pickIndex = m.currentTypeIndex()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.pickIndex > 0 {
			m.pickIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.pickIndex < len(m.types)-1 {
			m.pickIndex++
		}
	case key.Matches(msg, m.keys.Apply):
		m.applyCorrection()
		m.picking = false
	case key.Matches(msg, m.keys.Cancel):
		m.picking = false
	case key.Matches(msg, m.keys.Quit):
		m.picking = false
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// applyCorrection records the override and updates the object and its table
// row in place.
func (m *Model) applyCorrection() {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.objects) {
		return
	}
	obj := &m.objects[cursor]
	corrected := m.types[m.pickIndex]
	if corrected == obj.Type {
		return
	}

	m.corrections = append(m.corrections, model.Correction{
		Original:  obj.Type,
		Corrected: corrected,
		Text:      obj.Content,
		Style:     obj.Style,
	})
	obj.Type = corrected

	rows := m.table.Rows()
	rows[cursor][1] = string(corrected)
	m.table.SetRows(rows)
}

func (m Model) currentTypeIndex() int {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.objects) {
		return 0
	}
	for i, t := range m.types {
		if t == m.objects[cursor].Type {
			return i
		}
	}
	return 0
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.picking {
		return m.pickerView()
	}

	status := statusStyle.Render(fmt.Sprintf(
		"%d objects, %d corrections · Enter/c correct · q quit",
		len(m.objects), len(m.corrections)))
	return baseStyle.Render(m.table.View()) + "\n" + status
}

// pickerView shows the type list with a window of nearby choices.
func (m Model) pickerView() string {
	const window = 9
	start := m.pickIndex - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(m.types) {
		end = len(m.types)
		if end-window > 0 {
			start = end - window
		} else {
			start = 0
		}
	}

	var lines string
	for i := start; i < end; i++ {
		line := string(m.types[i])
		if i == m.pickIndex {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines += line + "\n"
	}
	lines += statusStyle.Render("Enter apply · Esc cancel")
	return pickerStyle.Render(lines)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
