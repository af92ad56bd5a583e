package testutil

import (
	"errors"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

// MockRunOnSaveService is a mock implementation of ports.RunOnSaveService.
type MockRunOnSaveService struct {
	RunCommandsFunc func(filePath string, mode rule.TriggerMode) error
	ResolveFunc     func(filePath string, mode rule.TriggerMode) ([]rule.ResolvedCommand, error)
	ReloadFunc      func() error
	ConfigValue     rule.Config
	IsEnabledFunc   func() (bool, error)
	SetEnabledFunc  func(enabled bool) error
}

func (m *MockRunOnSaveService) RunCommands(filePath string, mode rule.TriggerMode) error {
	if m.RunCommandsFunc != nil {
		return m.RunCommandsFunc(filePath, mode)
	}
	return errors.New("MockRunOnSaveService: RunCommandsFunc not implemented")
}

func (m *MockRunOnSaveService) Resolve(filePath string, mode rule.TriggerMode) ([]rule.ResolvedCommand, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(filePath, mode)
	}
	return nil, errors.New("MockRunOnSaveService: ResolveFunc not implemented")
}

func (m *MockRunOnSaveService) Reload() error {
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}

func (m *MockRunOnSaveService) Config() rule.Config {
	return m.ConfigValue
}

func (m *MockRunOnSaveService) IsEnabled() (bool, error) {
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc()
	}
	return false, errors.New("MockRunOnSaveService: IsEnabledFunc not implemented")
}

func (m *MockRunOnSaveService) SetEnabled(enabled bool) error {
	if m.SetEnabledFunc != nil {
		return m.SetEnabledFunc(enabled)
	}
	return errors.New("MockRunOnSaveService: SetEnabledFunc not implemented")
}

var _ ports.RunOnSaveService = (*MockRunOnSaveService)(nil)
