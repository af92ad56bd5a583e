package ports

import "github.com/AntonioJCosta/runonsave/internal/core/domain/rule"

// ConfigProvider defines the interface for sourcing the run-on-save
// configuration, like a YAML file in the workspace.
type ConfigProvider interface {
	// Load reads a fresh configuration snapshot.
	Load() (rule.Config, error)
	// Path returns the location the configuration is read from.
	Path() string
}
