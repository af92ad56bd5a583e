package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/fatih/color"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/core/testutil"
)

// isolateState points the XDG state directory, and with it the log file, at a temp dir.
func isolateState(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload) // runs after the environment is restored
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
}

func setNoColor(t *testing.T, noColor bool) {
	t.Helper()
	original := color.NoColor
	color.NoColor = noColor
	t.Cleanup(func() { color.NoColor = original })
}

func executeRoot(t *testing.T, svc *testutil.MockRunOnSaveService, args ...string) (string, error) {
	t.Helper()
	setNoColor(t, true)
	isolateState(t)

	workspace := t.TempDir()
	factory := func(workspaceRoot, configPath string) (*Runtime, error) {
		if configPath == "" {
			configPath = filepath.Join(workspaceRoot, ".runonsave.yaml")
		}
		return &Runtime{Service: svc, WorkspaceRoot: workspaceRoot, ConfigPath: configPath}, nil
	}

	root := NewRootCommand("test", factory)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--workspace", workspace}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantMode rule.TriggerMode
	}{
		{name: "automatic by default", args: []string{"run", "/p/a.go"}, wantMode: rule.TriggerAuto},
		{name: "shortcut flag", args: []string{"run", "--shortcut", "/p/a.go"}, wantMode: rule.TriggerShortcut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var gotMode rule.TriggerMode
			svc := &testutil.MockRunOnSaveService{
				RunCommandsFunc: func(filePath string, mode rule.TriggerMode) error {
					gotPath, gotMode = filePath, mode
					return nil
				},
			}

			if _, err := executeRoot(t, svc, tt.args...); err != nil {
				t.Fatalf("Execute() unexpected error = %v", err)
			}
			if gotPath != filepath.Clean("/p/a.go") {
				t.Errorf("RunCommands() path = %q, want /p/a.go", gotPath)
			}
			if gotMode != tt.wantMode {
				t.Errorf("RunCommands() mode = %q, want %q", gotMode, tt.wantMode)
			}
		})
	}
}

func TestRunCommand_RelativePathIsMadeAbsolute(t *testing.T) {
	var gotPath string
	svc := &testutil.MockRunOnSaveService{
		RunCommandsFunc: func(filePath string, mode rule.TriggerMode) error {
			gotPath = filePath
			return nil
		},
	}

	if _, err := executeRoot(t, svc, "run", "src/a.go"); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	cwd, _ := os.Getwd()
	if want := filepath.Join(cwd, "src", "a.go"); gotPath != want {
		t.Errorf("RunCommands() path = %q, want %q", gotPath, want)
	}
}

func TestRunCommand_PropagatesErrors(t *testing.T) {
	boom := errors.New("invalid pattern in commands[0].match")
	svc := &testutil.MockRunOnSaveService{
		RunCommandsFunc: func(string, rule.TriggerMode) error { return boom },
	}

	if _, err := executeRoot(t, svc, "run", "/p/a.go"); !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want %v", err, boom)
	}
}

func TestResolveCommand(t *testing.T) {
	svc := &testutil.MockRunOnSaveService{
		ResolveFunc: func(filePath string, mode rule.TriggerMode) ([]rule.ResolvedCommand, error) {
			return []rule.ResolvedCommand{
				{CommandText: "tsc /p/a.ts", RunAsync: true},
				{CommandText: "wsl lint /mnt/c/p/a.ts", UseAltPath: true},
			}, nil
		},
	}

	out, err := executeRoot(t, svc, "resolve", "/p/a.ts")
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	for _, want := range []string{"tsc /p/a.ts", "wsl lint /mnt/c/p/a.ts", "COMMAND"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResolveCommand_NoMatches(t *testing.T) {
	svc := &testutil.MockRunOnSaveService{
		ResolveFunc: func(string, rule.TriggerMode) ([]rule.ResolvedCommand, error) {
			return []rule.ResolvedCommand{}, nil
		},
	}

	out, err := executeRoot(t, svc, "resolve", "--shortcut", "/p/a.ts")
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if !strings.Contains(out, "No shortcut commands match") {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand(t *testing.T) {
	svc := &testutil.MockRunOnSaveService{
		ConfigValue: rule.Config{
			Shell: "/bin/zsh",
			Commands: []rule.Rule{
				{Match: `\.go$`, NotMatch: `_test\.go$`, Cmd: "gofmt -w ${file}"},
				{Cmd: "make", UseShortcut: true},
			},
		},
	}

	out, err := executeRoot(t, svc, "list")
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	for _, want := range []string{`\.go$`, `_test\.go$`, "gofmt -w ${file}", "make", "/bin/zsh"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListCommand_Empty(t *testing.T) {
	out, err := executeRoot(t, &testutil.MockRunOnSaveService{}, "list")
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if !strings.Contains(out, "No commands configured") {
		t.Errorf("output = %q", out)
	}
}

func TestListCommand_ReloadError(t *testing.T) {
	svc := &testutil.MockRunOnSaveService{ReloadFunc: func() error { return rule.ErrInvalidPattern }}

	if _, err := executeRoot(t, svc, "list"); !errors.Is(err, rule.ErrInvalidPattern) {
		t.Errorf("Execute() error = %v, want %v", err, rule.ErrInvalidPattern)
	}
}

func TestToggleCommands(t *testing.T) {
	var saved []bool
	svc := &testutil.MockRunOnSaveService{
		SetEnabledFunc: func(enabled bool) error {
			saved = append(saved, enabled)
			return nil
		},
	}

	for _, args := range [][]string{{"disable"}, {"enable"}} {
		if _, err := executeRoot(t, svc, args...); err != nil {
			t.Fatalf("Execute(%v) unexpected error = %v", args, err)
		}
	}
	if !reflect.DeepEqual(saved, []bool{false, true}) {
		t.Errorf("saved = %v, want [false true]", saved)
	}
}

func TestStatusCommand(t *testing.T) {
	svc := &testutil.MockRunOnSaveService{IsEnabledFunc: func() (bool, error) { return false, nil }}

	out, err := executeRoot(t, svc, "status")
	if err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if !strings.Contains(out, "Run On Save disabled.") || !strings.Contains(out, ".runonsave.yaml") {
		t.Errorf("output = %q", out)
	}
}

func TestRootCommand_InvalidWorkspace(t *testing.T) {
	isolateState(t)
	root := NewRootCommand("test", func(string, string) (*Runtime, error) {
		t.Error("factory should not be called for an invalid workspace")
		return nil, nil
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--workspace", filepath.Join(t.TempDir(), "missing"), "status"})

	if err := root.Execute(); err == nil {
		t.Error("Execute() expected error for missing workspace, got nil")
	}
}

func TestRootCommand_FactoryError(t *testing.T) {
	isolateState(t)
	boom := errors.New("cannot stat config")
	root := NewRootCommand("test", func(string, string) (*Runtime, error) { return nil, boom })
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--workspace", t.TempDir(), "status"})

	if err := root.Execute(); !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want %v", err, boom)
	}
}

func TestRuleRows(t *testing.T) {
	setNoColor(t, true)
	rows := ruleRows([]rule.Rule{
		{Cmd: "make"},
		{Match: "x", NotMatch: "y", Cmd: "lint", IsAsync: true, UseShortcut: true, WSL: true},
	})
	want := [][]string{
		{"0", "-", "-", "make", "", "", ""},
		{"1", "x", "y", "lint", "x", "x", "x"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ruleRows() = %v, want %v", rows, want)
	}
}

func TestTableRows_Colored(t *testing.T) {
	if os.Getenv("NO_COLOR") != "" {
		t.Skip("NO_COLOR disables colors for every palette entry")
	}
	setNoColor(t, false)

	rows := ruleRows([]rule.Rule{{Match: `\.go$`, Cmd: "gofmt -l ${file}", IsAsync: true}})
	for _, cell := range rows[0][1:5] {
		if cell == "" {
			continue
		}
		if !strings.Contains(cell, "\x1b[") {
			t.Errorf("ruleRows() cell %q is not colored", cell)
		}
	}

	resolved := resolvedRows([]rule.ResolvedCommand{{CommandText: "gofmt -l main.go"}})
	if !strings.Contains(resolved[0][1], "\x1b[") || !strings.Contains(resolved[0][1], "gofmt -l main.go") {
		t.Errorf("resolvedRows() command cell = %q, want colored command text", resolved[0][1])
	}
}
