package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/db"
)

var moveCmd = &cobra.Command{
	Use:   "move [timer-id] [project]",
	Short: "Reassign a timer to a project",
	Long: `Reassign an active timer to a project, creating the project on first use.

Examples:
  tick move 3f2a acme     # assign to project "acme"
  tick move 3f2a --none   # clear the project association`,
	Args: cobra.RangeArgs(1, 2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		adapter, err := loadedAdapter()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		id, ok := resolveTimer(adapter, args[0])
		if !ok {
			return
		}

		none, _ := cmd.Flags().GetBool("none")
		if !none && len(args) < 2 {
			fmt.Println("Error: provide a project name or --none")
			return
		}

		var projectID *uint
		label := "no project"
		if !none {
			project, err := db.FindOrCreateProject(cfg.User, args[1])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			projectID = &project.ID
			label = project.Name
		}

		if err := adapter.ReassignProject(id, projectID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		rec, _ := adapter.Set().Get(id)
		fmt.Printf("📁 Moved %s: %s → %s\n", shortID(id), rec.Name, label)
	}),
}

var tagCmd = &cobra.Command{
	Use:   "tag [timer-id] [tag]",
	Short: "Toggle a tag on a timer",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		adapter, err := loadedAdapter()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		id, ok := resolveTimer(adapter, args[0])
		if !ok {
			return
		}

		tags, err := db.FindOrCreateTags([]string{args[1]})
		if err != nil || len(tags) == 0 {
			fmt.Printf("Error: invalid tag '%s'\n", args[1])
			return
		}

		added, err := adapter.ToggleTag(id, tags[0].ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		rec, _ := adapter.Set().Get(id)
		if added {
			fmt.Printf("🏷️  Tagged %s: %s with #%s\n", shortID(id), rec.Name, tags[0].Name)
		} else {
			fmt.Printf("🏷️  Removed #%s from %s: %s\n", tags[0].Name, shortID(id), rec.Name)
		}
	}),
}

func init() {
	moveCmd.Flags().Bool("none", false, "Clear the project association")
}
