package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/config"
	"github.com/mkaganek/tick/internal/db"
	"github.com/mkaganek/tick/internal/feed"
	"github.com/mkaganek/tick/internal/syncer"
	"github.com/mkaganek/tick/internal/timer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tick",
	Short: "A CLI multi-timer work tracker",
	Long: `tick is a command-line work-activity tracker built around concurrent timers.
Run several stopwatches at once, pause and resume them independently, and
review completed activities. Active timers are shared live between sessions.`,
}

// initDB loads the configuration and initializes the database, panicking on
// a database error
func initDB() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("Warning: config file ignored: %v\n", err)
	}
	if err := db.Initialize(cfg.DBPath); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// newAdapter wires the timer set, the completion sink and the storage
// gateway together for this invocation. The feed source may be nil for
// one-shot commands.
func newAdapter(source feed.Source) *syncer.Adapter {
	set := timer.NewSet(db.ActivityRecorder{UserID: cfg.User})
	return syncer.New(set, db.Gateway{}, syncer.Options{
		UserID:       cfg.User,
		TickInterval: cfg.TickInterval,
		PushInterval: cfg.PushInterval,
		Source:       source,
	})
}

// loadedAdapter restores the active timer set from storage.
func loadedAdapter() (*syncer.Adapter, error) {
	adapter := newAdapter(nil)
	if err := adapter.Load(); err != nil {
		return nil, err
	}
	adapter.Tick(time.Now())
	return adapter, nil
}

// resolveTimer finds the active timer matching an id prefix.
func resolveTimer(adapter *syncer.Adapter, prefix string) (string, bool) {
	id, err := adapter.Set().ResolvePrefix(prefix)
	if errors.Is(err, timer.ErrAmbiguous) {
		fmt.Printf("Error: '%s' matches more than one timer. Use a longer prefix (see 'tick ls').\n", prefix)
		return "", false
	}
	if err != nil {
		fmt.Printf("Error: no active timer matches '%s'\n", prefix)
		return "", false
	}
	return id, true
}

// shortID truncates a timer id for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tick %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}
