package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/runonsave/internal/handlers/ui"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured run-on-save rules.",
		Long:  `Displays the rules read from the configuration file, in the order they run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, rt)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, rt *Runtime) error {
	if err := rt.Service.Reload(); err != nil {
		return fmt.Errorf("could not load rules: %w", err)
	}
	cfg := rt.Service.Config()
	out := cmd.OutOrStdout()

	if len(cfg.Commands) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No commands configured in %s.", rt.ConfigPath)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Rules (from %s):", rt.ConfigPath)))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Shell: %s   Auto clear console: %s", shellLabel(cfg.Shell), yesNo(cfg.AutoClearConsole))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Match", "Not Match", "Command", "Async", "Shortcut", "WSL"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})
	table.AppendBulk(ruleRows(cfg.Commands))
	table.Render()
	return nil
}
