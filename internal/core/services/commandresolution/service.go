package commandresolution

import (
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/core/domain/wslpath"
	"github.com/AntonioJCosta/runonsave/internal/core/ports"
	"github.com/AntonioJCosta/runonsave/internal/core/services/rulematching"
	"github.com/AntonioJCosta/runonsave/internal/core/services/templating"
)

type service struct {
	rules         *rulematching.RuleSet
	workspaceRoot string
	environ       func() []string
}

// NewService compiles the rules of cfg once and returns a resolver bound to workspaceRoot.
// A malformed pattern fails here with a *rule.InvalidPatternError.
func NewService(cfg rule.Config, workspaceRoot string) (ports.CommandResolver, error) {
	set, err := rulematching.Compile(cfg.Commands)
	if err != nil {
		return nil, fmt.Errorf("failed to compile command rules: %w", err)
	}
	return &service{
		rules:         set,
		workspaceRoot: workspaceRoot,
		environ:       os.Environ,
	}, nil
}

// Resolve selects the active rules for filePath and expands each command template.
func (s *service) Resolve(filePath string, mode rule.TriggerMode) ([]rule.ResolvedCommand, error) {
	active, err := s.rules.Select(filePath, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to select rules for %s: %w", filePath, err)
	}

	resolved := make([]rule.ResolvedCommand, 0, len(active))
	if len(active) == 0 {
		return resolved, nil
	}

	env := envSnapshot(s.environ())
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	for _, r := range active {
		vars := templating.Vars{
			File:          filePath,
			WorkspaceRoot: s.workspaceRoot,
			Cwd:           cwd,
			Env:           env,
		}
		if r.WSL {
			// ${workspaceRoot} stays native; only the file and the root it is
			// made relative to are translated.
			vars.File = wslpath.Translate(filePath)
			vars.RelativeRoot = wslpath.Translate(s.workspaceRoot)
		}

		resolved = append(resolved, rule.ResolvedCommand{
			CommandText:    templating.Expand(r.Cmd, vars),
			RunAsync:       r.IsAsync,
			IsShortcutOnly: r.UseShortcut,
			UseAltPath:     r.WSL,
		})
	}
	return resolved, nil
}

// envSnapshot turns KEY=VALUE pairs into a map. Later duplicates win, as with os.Getenv.
func envSnapshot(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}
