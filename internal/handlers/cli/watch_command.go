package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/runonsave/internal/adapters/filewatch"
	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/handlers/ui"
	"github.com/AntonioJCosta/runonsave/internal/logging"
)

// NewWatchCommand creates the 'watch' subcommand.
func NewWatchCommand(rt *Runtime) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the workspace and run matching commands on every save.",
		Long: `Watches every directory of the workspace (except those matched by the
ignore globs) and runs the automatic rules for each saved file.
The configuration is reloaded whenever the configuration file changes.
Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatchCmd(ctx, cmd, rt, debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", filewatch.DefaultDebounce, "Quiet period after the last write before a file counts as saved.")
	return cmd
}

func runWatchCmd(ctx context.Context, cmd *cobra.Command, rt *Runtime, debounce time.Duration) error {
	logger := logging.GetLogger("watch")
	errOut := cmd.ErrOrStderr()

	if err := rt.Service.Reload(); err != nil {
		return err
	}

	var watcher *filewatch.Watcher
	watcher, err := filewatch.New(rt.WorkspaceRoot, filewatch.Options{
		ConfigPath: rt.ConfigPath,
		Ignore:     rt.Service.Config().Ignore,
		Debounce:   debounce,
		OnSave: func(path string) {
			if err := rt.Service.RunCommands(path, rule.TriggerAuto); err != nil {
				logger.Warn().Err(err).Str("file", path).Msg("Run on save failed")
				fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Error running commands for %s: %v", path, err)))
			}
		},
		OnConfigChange: func() {
			if err := rt.Service.Reload(); err != nil {
				fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Configuration not reloaded: %v", err)))
				return
			}
			if err := watcher.SetIgnore(rt.Service.Config().Ignore); err != nil {
				fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("Ignore globs not updated: %v", err)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("Configuration reloaded."))
		},
	})
	if err != nil {
		return fmt.Errorf("could not start watcher: %w", err)
	}

	go func() {
		select {
		case <-watcher.Ready():
			fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor(fmt.Sprintf("Watching %s for saves (Ctrl-C to stop)...", rt.WorkspaceRoot)))
		case <-ctx.Done():
		}
	}()

	return watcher.Run(ctx)
}
