package oscommand

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct {
	// useTerminal runs commands inside a pseudo-terminal so tools keep their colored output.
	useTerminal bool
}

// NewOSCommandExecutor creates a new OSCommandExecutor. Commands run in a
// pseudo-terminal when stdout is itself a terminal.
func NewOSCommandExecutor() ports.CommandExecutor {
	fd := os.Stdout.Fd()
	return &OSCommandExecutor{useTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

// Execute runs command in a shell and returns its stdout, stderr, and any error.
// The shell is shellName when set, otherwise $SHELL, falling back to the platform default.
// In terminal mode stdout and stderr are merged into stdout.
func (e *OSCommandExecutor) Execute(shellName, command string) (string, string, error) {
	shellExecPath := resolveShell(shellName)
	cmd := exec.Command(shellExecPath, shellArgs(shellExecPath, command)...)

	if e.useTerminal {
		if out, ok, err := runInTerminal(cmd); ok {
			if err != nil {
				return out, "", fmt.Errorf("executing command with shell '%s': %w", shellExecPath, err)
			}
			return out, "", nil
		}
		// The pty could not be started; run the same command again with pipes.
		cmd = exec.Command(shellExecPath, shellArgs(shellExecPath, command)...)
	}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		return stdout, stderr, fmt.Errorf("executing command with shell '%s': %w. Stderr: %s", shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

func resolveShell(shellName string) string {
	if shellName != "" {
		return shellName
	}
	if shellPath := os.Getenv("SHELL"); shellPath != "" {
		return shellPath
	}
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	return "/bin/sh"
}

func shellArgs(shellExecPath, command string) []string {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(shellExecPath), filepath.Ext(shellExecPath)))
	switch name {
	case "cmd":
		return []string{"/C", command}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command", command}
	default:
		return []string{"-c", command}
	}
}
