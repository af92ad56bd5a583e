package ports

import "github.com/AntonioJCosta/runonsave/internal/core/domain/rule"

// RunOnSaveService defines the contract for running the configured commands for a saved file.
type RunOnSaveService interface {
	// RunCommands resolves and runs every active command for filePath.
	RunCommands(filePath string, mode rule.TriggerMode) error

	// Resolve returns the commands RunCommands would run, without running them.
	Resolve(filePath string, mode rule.TriggerMode) ([]rule.ResolvedCommand, error)

	// Reload re-reads the configuration and recompiles its patterns.
	Reload() error

	// Config returns the configuration snapshot currently in use.
	Config() rule.Config

	IsEnabled() (bool, error)
	SetEnabled(enabled bool) error
}
