package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yang-jeongman/snapmobile/internal/model"
)

// Review runs the interactive review screen over the given objects and
// returns the corrections the user made.
func Review(objects []model.ClassifiedObject) ([]model.Correction, error) {
	program := tea.NewProgram(NewModel(objects), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("review session failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Corrections(), nil
}
