package testutil

import (
	"sync"

	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

// MockReporter records every message it receives. It is safe for concurrent use.
type MockReporter struct {
	mu       sync.Mutex
	Outputs  []string
	Statuses []string
	Errors   []string
	Clears   int
}

func (m *MockReporter) Output(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Outputs = append(m.Outputs, message)
}

func (m *MockReporter) Status(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Statuses = append(m.Statuses, message)
}

func (m *MockReporter) Error(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors = append(m.Errors, message)
}

func (m *MockReporter) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Clears++
}

var _ ports.Reporter = (*MockReporter)(nil)
