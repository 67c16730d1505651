package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/db"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		project, err := db.FindOrCreateProject(cfg.User, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📁 Project #%d: %s\n", project.ID, project.Name)
	}),
}

var projectListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		includeArchived, _ := cmd.Flags().GetBool("all")
		projects, err := db.ListProjects(cfg.User, includeArchived)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(projects) == 0 {
			fmt.Println("No projects yet. Use 'tick project add <name>' to create one.")
			return
		}

		fmt.Printf("%-4s %-30s %s\n", "ID", "NAME", "STATE")
		fmt.Println(strings.Repeat("-", 45))
		for _, p := range projects {
			state := "active"
			if p.Archived {
				state = "archived"
			}
			fmt.Printf("%-4d %-30s %s\n", p.ID, p.Name, state)
		}
	}),
}

var projectArchiveCmd = &cobra.Command{
	Use:   "archive [name]",
	Short: "Archive a project",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		project, err := db.ArchiveProject(cfg.User, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗃️  Archived project: %s\n", project.Name)
	}),
}

func init() {
	projectListCmd.Flags().Bool("all", false, "Include archived projects")
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectArchiveCmd)
}
