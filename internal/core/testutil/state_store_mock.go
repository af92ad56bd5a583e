package testutil

import (
	"errors"

	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

// MockStateStore is a mock implementation of ports.StateStore for testing.
type MockStateStore struct {
	IsEnabledFunc  func() (bool, error)
	SetEnabledFunc func(enabled bool) error
}

func (m *MockStateStore) IsEnabled() (bool, error) {
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc()
	}
	return false, errors.New("MockStateStore: IsEnabledFunc not implemented")
}

func (m *MockStateStore) SetEnabled(enabled bool) error {
	if m.SetEnabledFunc != nil {
		return m.SetEnabledFunc(enabled)
	}
	return errors.New("MockStateStore: SetEnabledFunc not implemented")
}

// EnabledStateStore returns a MockStateStore that always reports enabled.
func EnabledStateStore() *MockStateStore {
	return &MockStateStore{
		IsEnabledFunc:  func() (bool, error) { return true, nil },
		SetEnabledFunc: func(bool) error { return nil },
	}
}

var _ ports.StateStore = (*MockStateStore)(nil)
