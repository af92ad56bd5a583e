package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/runonsave/internal/core/ports"
	"github.com/AntonioJCosta/runonsave/internal/logging"
)

// Runtime holds what the subcommands need once the global flags are known.
type Runtime struct {
	Service       ports.RunOnSaveService
	WorkspaceRoot string
	ConfigPath    string
}

// RuntimeFactory builds the Runtime for a workspace root and an optional explicit config path.
type RuntimeFactory func(workspaceRoot, configPath string) (*Runtime, error)

type globalFlags struct {
	workspace string
	config    string
	verbosity int
}

func NewRootCommand(version string, factory RuntimeFactory) *cobra.Command {
	var flags globalFlags
	rt := &Runtime{}

	rootCmd := &cobra.Command{
		Use:   "runonsave",
		Short: "runonsave runs shell commands when files are saved.",
		Long: `runonsave watches a workspace and runs the commands configured in
.runonsave.yaml for every saved file whose path matches a rule.
Command templates may use ${file}, ${relativeFile}, ${workspaceRoot},
${fileBasename}, ${fileDirname}, ${fileExtname}, ${fileBasenameNoExt},
${cwd} and ${env.NAME}.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(flags.verbosity)

			if factory == nil {
				return fmt.Errorf("runtime factory not initialized for command %s", cmd.Name())
			}
			root, err := resolveWorkspace(flags.workspace)
			if err != nil {
				return err
			}
			built, err := factory(root, flags.config)
			if err != nil {
				return fmt.Errorf("could not initialize runonsave: %w", err)
			}
			if built == nil || built.Service == nil {
				return fmt.Errorf("run-on-save service not initialized for command %s", cmd.Name())
			}
			*rt = *built
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.workspace, "workspace", "w", "", "Workspace root (default: current directory).")
	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file (default: <workspace>/.runonsave.yaml).")
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace).")

	rootCmd.AddCommand(NewWatchCommand(rt))
	rootCmd.AddCommand(NewRunCommand(rt))
	rootCmd.AddCommand(NewResolveCommand(rt))
	rootCmd.AddCommand(NewListCommand(rt))
	rootCmd.AddCommand(NewEnableCommand(rt))
	rootCmd.AddCommand(NewDisableCommand(rt))
	rootCmd.AddCommand(NewStatusCommand(rt))

	return rootCmd
}

func resolveWorkspace(flagValue string) (string, error) {
	root := flagValue
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not determine current directory: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid workspace %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("invalid workspace %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workspace %s is not a directory", abs)
	}
	return abs, nil
}
