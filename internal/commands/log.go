package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/db"
	"github.com/mkaganek/tick/internal/parser"
	"github.com/mkaganek/tick/internal/timer"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show completed activities",
	Long: `Show completed activities with their durations and the total tracked time.

Examples:
  tick log                  # everything
  tick log --from "3 days"  # the last three days
  tick log --from 15/12/2025 --to 31/12/2025`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")

		from, err := parser.ParseSince(fromStr)
		if err != nil {
			fmt.Printf("Error parsing --from: %v\n", err)
			return
		}
		to, err := parser.ParseSince(toStr)
		if err != nil {
			fmt.Printf("Error parsing --to: %v\n", err)
			return
		}

		activities, err := db.ListActivities(cfg.User, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(activities) == 0 {
			fmt.Println("No completed activities in this range.")
			return
		}

		// Print table header
		fmt.Printf("%-12s %-40s %-15s %-20s %s\n", "DATE", "DESCRIPTION", "PROJECT", "TAGS", "DURATION")
		fmt.Println(strings.Repeat("-", 100))

		for _, a := range activities {
			project := ""
			if a.Project != nil {
				project = a.Project.Name
			}

			var tagNames []string
			for _, tag := range a.Tags {
				tagNames = append(tagNames, tag.Name)
			}

			name := a.Description
			if len(name) > 38 {
				name = name[:35] + "..."
			}
			if len(project) > 13 {
				project = project[:10] + "..."
			}

			fmt.Printf("%-12s %-40s %-15s %-20s %s\n",
				a.StartedAt.Local().Format("2006-01-02"),
				name,
				project,
				strings.Join(tagNames, ","),
				timer.FormatMillis(a.DurationMS),
			)
		}

		total, err := db.SumDurations(cfg.User, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(strings.Repeat("-", 100))
		fmt.Printf("Total: %s across %d activities\n", timer.FormatDuration(time.Duration(total)*time.Millisecond), len(activities))
	}),
}

func init() {
	logCmd.Flags().String("from", "", "Range start: dd/mm/yyyy, X days, X hours, X weeks")
	logCmd.Flags().String("to", "", "Range end: dd/mm/yyyy, X days, X hours, X weeks")
}
