package testutil

import (
	"errors"
	"sync"
)

// ExecutedCommand records one call to MockCommandExecutor.Execute.
type ExecutedCommand struct {
	Shell   string
	Command string
}

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
// It is safe for concurrent use.
type MockCommandExecutor struct {
	ExecuteFunc func(shellName, command string) (stdout string, stderr string, err error)

	mu    sync.Mutex
	calls []ExecutedCommand
}

// Execute records the call and delegates to ExecuteFunc.
func (m *MockCommandExecutor) Execute(shellName, command string) (string, string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ExecutedCommand{Shell: shellName, Command: command})
	m.mu.Unlock()

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellName, command)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

// Calls returns a copy of the recorded calls in the order they were made.
func (m *MockCommandExecutor) Calls() []ExecutedCommand {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecutedCommand(nil), m.calls...)
}
