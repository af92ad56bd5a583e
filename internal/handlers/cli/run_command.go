package cli

import (
	"fmt"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/handlers/ui"
)

// NewRunCommand creates the 'run' subcommand, a single save trigger for one file.
func NewRunCommand(rt *Runtime) *cobra.Command {
	var shortcut bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run the configured commands for one file as if it had been saved.",
		Long: `Runs every rule that matches <file>. Without --shortcut only automatic
rules run; with --shortcut only rules marked useShortcut run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("invalid file path %s: %w", args[0], err)
			}
			return rt.Service.RunCommands(filePath, triggerMode(shortcut))
		},
	}

	cmd.Flags().BoolVarP(&shortcut, "shortcut", "s", false, "Trigger shortcut-only rules instead of automatic ones.")
	return cmd
}

// NewResolveCommand creates the 'resolve' subcommand, a dry run of 'run'.
func NewResolveCommand(rt *Runtime) *cobra.Command {
	var shortcut bool

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Show the commands that would run for a file, without running them.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("invalid file path %s: %w", args[0], err)
			}
			mode := triggerMode(shortcut)
			commands, err := rt.Service.Resolve(filePath, mode)
			if err != nil {
				return fmt.Errorf("could not resolve commands: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(commands) == 0 {
				fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No %s commands match %s.", mode, filePath)))
				return nil
			}

			fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Commands for %s (%s):", filePath, mode)))
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"#", "Command", "Async", "WSL"})
			table.SetBorder(true)
			table.SetAutoWrapText(false)
			table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})
			table.AppendBulk(resolvedRows(commands))
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&shortcut, "shortcut", "s", false, "Resolve shortcut-only rules instead of automatic ones.")
	return cmd
}

func triggerMode(shortcut bool) rule.TriggerMode {
	if shortcut {
		return rule.TriggerShortcut
	}
	return rule.TriggerAuto
}
