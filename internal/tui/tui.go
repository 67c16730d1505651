package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkaganek/tick/internal/config"
	"github.com/mkaganek/tick/internal/syncer"
)

// RunDashboard starts the live dashboard over a loaded sync adapter. The
// adapter's sync loop (push checkpoints plus the change feed) runs for as
// long as the dashboard is open and is stopped when it closes.
func RunDashboard(adapter *syncer.Adapter, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go adapter.Run(ctx)

	model := NewDashboardModel(adapter, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
