package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/runonsave/internal/handlers/ui"
)

// NewEnableCommand creates the 'enable' subcommand.
func NewEnableCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Enable running commands on save.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.Service.SetEnabled(true)
		},
	}
}

// NewDisableCommand creates the 'disable' subcommand.
func NewDisableCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disable running commands on save without removing the configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.Service.SetEnabled(false)
		},
	}
}

// NewStatusCommand creates the 'status' subcommand.
func NewStatusCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether run-on-save is enabled and where its configuration lives.",
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := rt.Service.IsEnabled()
			if err != nil {
				return fmt.Errorf("could not read status: %w", err)
			}
			out := cmd.OutOrStdout()
			if enabled {
				fmt.Fprintln(out, ui.SuccessColor("Run On Save enabled."))
			} else {
				fmt.Fprintln(out, ui.WarningColor("Run On Save disabled."))
			}
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Workspace: %s", rt.WorkspaceRoot)))
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Config:    %s", rt.ConfigPath)))
			return nil
		},
	}
}
