package ruleconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/core/ports"
)

// YAMLProvider implements the ConfigProvider interface
// by reading the run-on-save configuration from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML configuration file.
func NewYAMLProvider(filePath string) (ports.ConfigProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// Path returns the configuration file path.
func (p *YAMLProvider) Path() string {
	return p.filePath
}

// Load reads and parses the configured YAML file.
// If the file does not exist or is empty, it returns an empty configuration and no error.
// Unknown keys are rejected so typos in rule fields surface immediately.
func (p *YAMLProvider) Load() (rule.Config, error) {
	var cfg rule.Config

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return rule.Config{}, fmt.Errorf("failed to read configuration file %s: %w", p.filePath, err)
	}

	if len(bytes.TrimSpace(yamlFile)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A document holding only comments or "---" decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return rule.Config{}, nil
		}
		return rule.Config{}, fmt.Errorf("failed to unmarshal configuration from %s: %w", p.filePath, err)
	}

	return cfg, nil
}
