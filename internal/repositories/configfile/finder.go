package configfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

// DefaultFileName is the configuration file looked up in the workspace root.
const DefaultFileName = ".runonsave.yaml"

// ErrConfigNotFound indicates that none of the candidate files exist.
var ErrConfigNotFound = errors.New("no run-on-save configuration file found")

var candidateNames = []string{DefaultFileName, ".runonsave.yml"}

// WorkspaceFileFinder looks for the configuration file in a workspace root.
type WorkspaceFileFinder struct {
	workspaceRoot string
}

// NewWorkspaceFileFinder creates a new WorkspaceFileFinder.
func NewWorkspaceFileFinder(workspaceRoot string) ports.ConfigFileFinder {
	return &WorkspaceFileFinder{workspaceRoot: workspaceRoot}
}

// Find implements the ports.ConfigFileFinder interface.
// It returns the first candidate that exists as a regular file.
func (f *WorkspaceFileFinder) Find() (string, error) {
	for _, name := range candidateNames {
		candidate := filepath.Join(f.workspaceRoot, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("%w in %s", ErrConfigNotFound, f.workspaceRoot)
}

// Resolve returns the configuration path to use: explicit when set,
// otherwise whatever finder locates, otherwise the default file name in
// workspaceRoot so that a file created later is still picked up.
func Resolve(explicit, workspaceRoot string, finder ports.ConfigFileFinder) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	found, err := finder.Find()
	if err == nil {
		return found, nil
	}
	if errors.Is(err, ErrConfigNotFound) {
		return filepath.Join(workspaceRoot, DefaultFileName), nil
	}
	return "", err
}
