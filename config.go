package scenecmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the editor-tunable settings of the command subsystem.
// It is usually loaded from the editor's settings file.
type Config struct {
	History   HistoryConfig   `yaml:"history"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
}

// HistoryConfig configures the command history.
type HistoryConfig struct {
	// MaxDepth is the number of commands retained for undo.
	MaxDepth int `yaml:"max_depth"`
}

// ClipboardConfig configures paste/duplicate behavior.
type ClipboardConfig struct {
	// OffsetEnabled controls whether pasted and duplicated roots are
	// nudged away from their source position.
	OffsetEnabled bool `yaml:"offset_enabled"`

	// Offset is the distance added to each planar coordinate when
	// OffsetEnabled is set.
	Offset float64 `yaml:"offset"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		History:   HistoryConfig{MaxDepth: DefaultMaxDepth},
		Clipboard: ClipboardConfig{OffsetEnabled: true, Offset: SpawnOffset},
	}
}

// ParseConfig decodes YAML settings over the defaults, so a file only
// needs to name the fields it changes.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("scenecmd: parsing config: %w", err)
	}
	if cfg.History.MaxDepth < 1 {
		cfg.History.MaxDepth = DefaultMaxDepth
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML settings file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("scenecmd: reading config: %w", err)
	}
	return ParseConfig(data)
}
