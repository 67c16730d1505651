package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/db"
	"github.com/mkaganek/tick/internal/timer"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list", "status"},
	Short:   "List active timers",
	Long:    "List all active timers with their current elapsed time.",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		adapter, err := loadedAdapter()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		records := adapter.Set().List()
		if len(records) == 0 {
			fmt.Println("No active timers. Use 'tick start \"description\"' to start one.")
			return
		}

		// Print table header
		fmt.Printf("%-10s %-7s %-36s %-15s %-20s %s\n", "ID", "STATE", "DESCRIPTION", "PROJECT", "TAGS", "ELAPSED")
		fmt.Println(strings.Repeat("-", 100))

		// Print each timer
		for _, rec := range records {
			state := "▶ run"
			if !rec.Running {
				state = "⏸ pause"
			}

			project := ""
			if rec.ProjectID != nil {
				if p, err := db.GetProjectByID(*rec.ProjectID); err == nil {
					project = p.Name
				}
			}

			var tagNames []string
			if tags, err := db.GetTagsByIDs(rec.Tags()); err == nil {
				for _, tag := range tags {
					tagNames = append(tagNames, tag.Name)
				}
			}
			tagsStr := strings.Join(tagNames, ",")

			// Truncate description if too long
			name := rec.Name
			if len(name) > 34 {
				name = name[:31] + "..."
			}
			if len(project) > 13 {
				project = project[:10] + "..."
			}

			fmt.Printf("%-10s %-7s %-36s %-15s %-20s %s\n",
				shortID(rec.ID),
				state,
				name,
				project,
				tagsStr,
				timer.FormatClock(rec.Elapsed),
			)
		}
	}),
}
