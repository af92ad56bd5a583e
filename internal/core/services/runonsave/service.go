package runonsave

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/core/ports"
	"github.com/AntonioJCosta/runonsave/internal/core/services/commandresolution"
	"github.com/AntonioJCosta/runonsave/internal/logging"
)

type service struct {
	configProvider ports.ConfigProvider
	executor       ports.CommandExecutor
	state          ports.StateStore
	reporter       ports.Reporter
	workspaceRoot  string
	logger         zerolog.Logger

	mu       sync.RWMutex
	loaded   bool
	config   rule.Config
	resolver ports.CommandResolver
}

// NewService creates a new run-on-save service for the workspace at workspaceRoot.
// It panics if any dependency is nil. The configuration is loaded on first use.
func NewService(
	cp ports.ConfigProvider,
	ex ports.CommandExecutor,
	st ports.StateStore,
	rp ports.Reporter,
	workspaceRoot string,
) ports.RunOnSaveService {
	if cp == nil {
		panic("configProvider cannot be nil")
	}
	if ex == nil {
		panic("executor cannot be nil")
	}
	if st == nil {
		panic("state cannot be nil")
	}
	if rp == nil {
		panic("reporter cannot be nil")
	}
	return &service{
		configProvider: cp,
		executor:       ex,
		state:          st,
		reporter:       rp,
		workspaceRoot:  workspaceRoot,
		logger:         logging.GetLogger("runonsave"),
	}
}

// Reload reads the configuration again and recompiles its patterns.
// On failure the previous snapshot stays in use.
func (s *service) Reload() error {
	cfg, err := s.configProvider.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", s.configProvider.Path(), err)
	}
	resolver, err := commandresolution.NewService(cfg, s.workspaceRoot)
	if err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", s.configProvider.Path(), err)
	}

	s.mu.Lock()
	s.config = cfg
	s.resolver = resolver
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info().
		Str("config", s.configProvider.Path()).
		Int("commands", len(cfg.Commands)).
		Msg("Configuration loaded")
	return nil
}

func (s *service) snapshot() (rule.Config, ports.CommandResolver, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Reload(); err != nil {
			return rule.Config{}, nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.resolver, nil
}

// Config returns the configuration snapshot currently in use.
// It is the zero Config until the first successful load.
func (s *service) Config() rule.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Resolve returns the commands that RunCommands would run for filePath.
func (s *service) Resolve(filePath string, mode rule.TriggerMode) ([]rule.ResolvedCommand, error) {
	_, resolver, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return resolver.Resolve(filePath, mode)
}

func (s *service) IsEnabled() (bool, error) {
	enabled, err := s.state.IsEnabled()
	if err != nil {
		return false, fmt.Errorf("failed to read enabled state: %w", err)
	}
	return enabled, nil
}

func (s *service) SetEnabled(enabled bool) error {
	if err := s.state.SetEnabled(enabled); err != nil {
		return fmt.Errorf("failed to save enabled state: %w", err)
	}
	s.reporter.Output(enabledMessage(enabled))
	return nil
}

func enabledMessage(enabled bool) string {
	if enabled {
		return "Run On Save enabled."
	}
	return "Run On Save disabled."
}

/*
RunCommands resolves the commands for filePath and runs them in
configuration order. Synchronous commands block the ones after them; async
commands start immediately and are waited for before RunCommands returns.
A failing command does not stop the others; all failures are returned joined.
*/
func (s *service) RunCommands(filePath string, mode rule.TriggerMode) error {
	cfg, resolver, err := s.snapshot()
	if err != nil {
		return err
	}

	if cfg.AutoClearConsole {
		s.reporter.Clear()
	}

	enabled, err := s.IsEnabled()
	if err != nil {
		return err
	}
	if !enabled || len(cfg.Commands) == 0 {
		s.reporter.Output(enabledMessage(enabled))
		return nil
	}

	commands, err := resolver.Resolve(filePath, mode)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		s.logger.Debug().Str("file", filePath).Str("mode", string(mode)).Msg("No active commands")
		return nil
	}

	done := logging.LogOperationStart(s.logger, "run commands")
	defer done()
	s.reporter.Status("Running on save commands...")

	var (
		wg     sync.WaitGroup
		errMu  sync.Mutex
		errs   []error
		record = func(err error) {
			errMu.Lock()
			errs = append(errs, err)
			errMu.Unlock()
		}
	)

	for _, c := range commands {
		if c.RunAsync {
			wg.Add(1)
			go func(c rule.ResolvedCommand) {
				defer wg.Done()
				if err := s.runOne(cfg.Shell, c); err != nil {
					record(err)
				}
			}(c)
			continue
		}
		if err := s.runOne(cfg.Shell, c); err != nil {
			record(err)
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (s *service) runOne(shell string, c rule.ResolvedCommand) error {
	s.logger.Info().Str("command", c.CommandText).Bool("async", c.RunAsync).Msg("Running command")
	s.reporter.Output("> " + c.CommandText)

	stdout, stderr, err := s.executor.Execute(shell, c.CommandText)
	if out := strings.TrimRight(stdout, "\n"); out != "" {
		s.reporter.Output(out)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("command", c.CommandText).Msg("Command failed")
		s.reporter.Error(fmt.Sprintf("Command failed: %s: %v", c.CommandText, err))
		return fmt.Errorf("command %q failed: %w", c.CommandText, err)
	}
	if errOut := strings.TrimRight(stderr, "\n"); errOut != "" {
		s.reporter.Output(errOut)
	}
	return nil
}
