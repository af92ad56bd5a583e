package testutil

import (
	"errors"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

// MockConfigProvider is a mock implementation of ports.ConfigProvider for testing.
type MockConfigProvider struct {
	LoadFunc  func() (rule.Config, error)
	PathValue string
	LoadCalls int
}

func (m *MockConfigProvider) Load() (rule.Config, error) {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return rule.Config{}, errors.New("MockConfigProvider: LoadFunc not implemented")
}

func (m *MockConfigProvider) Path() string {
	return m.PathValue
}

var _ ports.ConfigProvider = (*MockConfigProvider)(nil)
