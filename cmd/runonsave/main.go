package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/runonsave/internal/adapters/console"
	"github.com/AntonioJCosta/runonsave/internal/adapters/oscommand"
	"github.com/AntonioJCosta/runonsave/internal/adapters/ruleconfig"
	"github.com/AntonioJCosta/runonsave/internal/core/services/runonsave"
	"github.com/AntonioJCosta/runonsave/internal/handlers/cli"
	"github.com/AntonioJCosta/runonsave/internal/handlers/ui"
	"github.com/AntonioJCosta/runonsave/internal/repositories/configfile"
	"github.com/AntonioJCosta/runonsave/internal/repositories/state"
)

// Version is set at build time
var Version = "dev"

func newRuntime(workspaceRoot, configFlag string) (*cli.Runtime, error) {
	finder := configfile.NewWorkspaceFileFinder(workspaceRoot)
	configPath, err := configfile.Resolve(configFlag, workspaceRoot, finder)
	if err != nil {
		return nil, fmt.Errorf("locating configuration: %w", err)
	}

	configProvider, err := ruleconfig.NewYAMLProvider(configPath)
	if err != nil {
		return nil, err
	}

	cmdExec := oscommand.NewOSCommandExecutor()
	stateStore := state.NewStateStore()
	reporter := console.NewReporter(os.Stdout)

	svc := runonsave.NewService(configProvider, cmdExec, stateStore, reporter, workspaceRoot)
	return &cli.Runtime{
		Service:       svc,
		WorkspaceRoot: workspaceRoot,
		ConfigPath:    configPath,
	}, nil
}

func main() {
	rootCmd := cli.NewRootCommand(Version, newRuntime)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
