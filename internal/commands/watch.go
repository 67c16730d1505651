package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/db"
	"github.com/mkaganek/tick/internal/feed"
	"github.com/mkaganek/tick/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of all active timers",
	Long: `Open a live dashboard showing every active timer.

The dashboard keeps syncing with storage while open: timers started,
paused or stopped from other sessions appear within a few seconds, and
running timers are checkpointed so a crash loses at most a few seconds
of progress.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		source := feed.NewPoller(db.Gateway{}, cfg.User, cfg.PollInterval)
		adapter := newAdapter(source)
		if err := adapter.Load(); err != nil {
			fmt.Printf("Warning: could not restore timers: %v\n", err)
		}

		if err := tui.RunDashboard(adapter, cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
