package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

const stateDir = "runonsave"
const stateFilename = "state.yaml"

type persistedState struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// FileStateStore persists run-on-save state in a YAML file under the XDG state directory.
type FileStateStore struct {
	filePath string
}

// NewStateStore creates a FileStateStore at $XDG_STATE_HOME/runonsave/state.yaml.
func NewStateStore() ports.StateStore {
	return NewStateStoreAt(filepath.Join(xdg.StateHome, stateDir, stateFilename))
}

// NewStateStoreAt creates a FileStateStore backed by filePath.
func NewStateStoreAt(filePath string) ports.StateStore {
	return &FileStateStore{filePath: filePath}
}

// IsEnabled implements the ports.StateStore interface.
// A missing state file, or one without an enabled key, means enabled.
func (s *FileStateStore) IsEnabled() (bool, error) {
	st, err := s.read()
	if err != nil {
		return false, err
	}
	if st.Enabled == nil {
		return true, nil
	}
	return *st.Enabled, nil
}

// SetEnabled implements the ports.StateStore interface.
func (s *FileStateStore) SetEnabled(enabled bool) error {
	st, err := s.read()
	if err != nil {
		return err
	}
	st.Enabled = &enabled

	data, err := yaml.Marshal(&st)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dirPath := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", toUserFriendlyPath(dirPath), err)
	}

	// Write to a sibling file first so a crash never leaves a truncated state file.
	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", toUserFriendlyPath(tmpPath), err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", toUserFriendlyPath(s.filePath), err)
	}
	return nil
}

func (s *FileStateStore) read() (persistedState, error) {
	var st persistedState

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("failed to read state file %s: %w", toUserFriendlyPath(s.filePath), err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("failed to parse state file %s: %w", toUserFriendlyPath(s.filePath), err)
	}
	return st, nil
}

// toUserFriendlyPath replaces the home directory prefix with "~".
func toUserFriendlyPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return filepath.Join("~", strings.TrimPrefix(path, home+string(filepath.Separator)))
	}
	return path
}
