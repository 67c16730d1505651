package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mkaganek/tick/internal/timer"
)

var pauseCmd = &cobra.Command{
	Use:   "pause [timer-id]",
	Short: "Pause a running timer",
	Args:  cobra.ExactArgs(1),
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

		if err := adapter.Pause(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		rec, _ := adapter.Set().Get(id)
		fmt.Printf("⏸️  Paused %s: %s at %s\n", shortID(id), rec.Name, timer.FormatDuration(rec.Elapsed))
	}),
}

var resumeCmd = &cobra.Command{
	Use:   "resume [timer-id]",
	Short: "Resume a paused timer",
	Args:  cobra.ExactArgs(1),
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

		if err := adapter.Resume(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		rec, _ := adapter.Set().Get(id)
		fmt.Printf("▶️  Resumed %s: %s at %s\n", shortID(id), rec.Name, timer.FormatDuration(rec.Elapsed))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop [timer-id]",
	Short: "Stop a timer and record the activity",
	Args:  cobra.ExactArgs(1),
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

		snap, err := adapter.Stop(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("⏹️  Stopped %s: %s\n", shortID(id), snap.Name)
		fmt.Printf("Tracked time: %s\n", timer.FormatDuration(snap.Duration))
	}),
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [timer-id]",
	Short: "Discard a timer without recording an activity",
	Args:  cobra.ExactArgs(1),
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
		rec, _ := adapter.Set().Get(id)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			confirm := false
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Discard timer \"%s\"?", rec.Name)).
					Description("The tracked time will not be saved.").
					Value(&confirm),
			))
			if err := form.Run(); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !confirm {
				fmt.Println("Kept the timer running.")
				return
			}
		}

		if err := adapter.Cancel(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Discarded %s: %s (%s untracked)\n", shortID(id), rec.Name, timer.FormatDuration(rec.Elapsed))
	}),
}

func init() {
	cancelCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
