package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/netarea/pipeline"
)

// Run starts the full-screen form and blocks until the user quits or ctx ends.
func Run(ctx context.Context, p *pipeline.Pipeline) error {
	prog := tea.NewProgram(New(ctx, p), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()

	return err
}
