/*
File    : notlox/repl/config.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package repl

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable REPL settings, loaded from an optional
// ~/.notloxrc.yaml file. Absent file or absent keys keep the defaults.
//
// Example file:
//
//	prompt: "lox> "
//	history_file: /tmp/notlox_history
//	color: false
type Config struct {
	Prompt      string `yaml:"prompt"`       // Prompt string (default "> ")
	HistoryFile string `yaml:"history_file"` // Readline history path
	Color       *bool  `yaml:"color"`        // Force colors on/off
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(home, ".notlox_history"),
	}
}

// LoadConfig reads ~/.notloxrc.yaml over the defaults. A missing file is
// not an error; a malformed one is ignored rather than blocking the REPL.
// The color setting applies immediately to all colored output.
func LoadConfig() Config {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(filepath.Join(home, ".notloxrc.yaml"))
	if err != nil {
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg
	}
	if fileCfg.Prompt != "" {
		cfg.Prompt = fileCfg.Prompt
	}
	if fileCfg.HistoryFile != "" {
		cfg.HistoryFile = fileCfg.HistoryFile
	}
	if fileCfg.Color != nil {
		color.NoColor = !*fileCfg.Color
	}
	return cfg
}
