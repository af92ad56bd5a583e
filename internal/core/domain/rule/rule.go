/*
Package rule defines the core domain entities for run-on-save rules:
the configured rule itself, the configuration snapshot that carries them,
and the command resolved from a rule for one saved file.
*/
package rule

/*
Rule associates a file-path pattern with a command template.
Match and NotMatch are regular expressions; an empty Match always matches
and an empty NotMatch never excludes. This is a core domain entity.
*/
type Rule struct {
	Match       string `yaml:"match"`
	NotMatch    string `yaml:"notMatch"`
	Cmd         string `yaml:"cmd"`
	IsAsync     bool   `yaml:"isAsync"`
	UseShortcut bool   `yaml:"useShortcut"`
	WSL         bool   `yaml:"wsl"`
}

// Config is an immutable snapshot of the run-on-save configuration.
type Config struct {
	Shell            string   `yaml:"shell"`
	AutoClearConsole bool     `yaml:"autoClearConsole"`
	Ignore           []string `yaml:"ignore"`
	Commands         []Rule   `yaml:"commands"`
}

// ResolvedCommand is the final command text produced from one matched rule.
type ResolvedCommand struct {
	CommandText    string
	RunAsync       bool
	IsShortcutOnly bool
	UseAltPath     bool
}

// TriggerMode tells whether a selection pass comes from an automatic save
// or from an explicit shortcut invocation.
type TriggerMode string

const (
	TriggerAuto     TriggerMode = "auto"
	TriggerShortcut TriggerMode = "shortcut"
)
