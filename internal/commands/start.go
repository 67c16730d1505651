package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/db"
	"github.com/mkaganek/tick/internal/parser"
)

var startCmd = &cobra.Command{
	Use:   "start [description]",
	Short: "Start a new timer",
	Long: `Start a new timer. Any number of timers can run at once.

Smart parsing syntax:
  #tag1,tag2  - Tags (comma-separated or individual)
  @project    - Project name

Examples:
  tick start "Write report @acme #deep,writing"
  tick start "Code review" --project acme --tags review`,
	Args: cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		parsed := parser.ParseTitle(input)
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		// Flags take precedence over parsed metadata
		project := parsed.Project
		if flagProject, _ := cmd.Flags().GetString("project"); flagProject != "" {
			project = flagProject
		}
		tags := parsed.Tags
		if flagTags, _ := cmd.Flags().GetStringSlice("tags"); len(flagTags) > 0 {
			tags = flagTags
		}

		var projectID *uint
		if project != "" {
			p, err := db.FindOrCreateProject(cfg.User, project)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			projectID = &p.ID
		}

		var tagIDs []uint
		if len(tags) > 0 {
			tagRows, err := db.FindOrCreateTags(tags)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			tagIDs = db.TagIDs(tagRows)
		}

		adapter := newAdapter(nil)
		id, err := adapter.StartNew(parsed.Description, projectID, tagIDs)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏱️  Started timer %s: %s\n", shortID(id), parsed.Description)
		if project != "" {
			fmt.Printf("  Project: %s\n", project)
		}
		if len(tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(tags, ", "))
		}
	}),
}

func init() {
	startCmd.Flags().StringP("project", "p", "", "Project name")
	startCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
}
