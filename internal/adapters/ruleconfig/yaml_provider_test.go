package ruleconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
)

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("/p/.runonsave.yaml")
	if err != nil {
		t.Fatalf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}
	if provider.Path() != "/p/.runonsave.yaml" {
		t.Errorf("Path() = %q", provider.Path())
	}

	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected error, got nil")
	}
}

func TestYAMLProvider_Load(t *testing.T) {
	validYAML := `
shell: /bin/bash
autoClearConsole: true
ignore:
  - "**/node_modules/**"
commands:
  - match: "\\.ts$"
    notMatch: "\\.d\\.ts$"
    cmd: "tsc ${file}"
    isAsync: true
  - cmd: "echo ${fileBasename}"
    useShortcut: true
    wsl: true
`
	expectedValid := rule.Config{
		Shell:            "/bin/bash",
		AutoClearConsole: true,
		Ignore:           []string{"**/node_modules/**"},
		Commands: []rule.Rule{
			{Match: `\.ts$`, NotMatch: `\.d\.ts$`, Cmd: "tsc ${file}", IsAsync: true},
			{Cmd: "echo ${fileBasename}", UseShortcut: true, WSL: true},
		},
	}

	tests := []struct {
		name                string
		content             *string // nil means the file is not created
		want                rule.Config
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{name: "valid configuration", content: ptr(validYAML), want: expectedValid},
		{name: "missing file", content: nil, want: rule.Config{}},
		{name: "empty file", content: ptr(""), want: rule.Config{}},
		{name: "whitespace only", content: ptr("  \n\n"), want: rule.Config{}},
		{name: "comments only", content: ptr("# nothing configured yet\n"), want: rule.Config{}},
		{
			name:                "unknown field rejected",
			content:             ptr("commands:\n  - cmd: make\n    matches: \"x\"\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "field matches not found",
		},
		{
			name:                "malformed yaml",
			content:             ptr("commands: [\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".runonsave.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatalf("failed to write fixture: %v", err)
				}
			}
			provider := &YAMLProvider{filePath: path}

			got, err := provider.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("Load() error = %q, want snippet %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestYAMLProvider_Load_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be read as a file.
	provider := &YAMLProvider{filePath: dir}

	if _, err := provider.Load(); err == nil {
		t.Error("Load() expected error reading a directory, got nil")
	}
}

func ptr(s string) *string { return &s }
