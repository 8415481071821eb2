package edit

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gline-sh/gline/pkg/ui"
)

// Config is the editor configuration, normally read from a YAML file.
type Config struct {
	// Prompt written before the edited line. Defaults to "> ".
	Prompt string `yaml:"prompt"`

	History HistoryConfig `yaml:"history"`

	// Overrides of the default key bindings, from key specs in the ui.ParseKey
	// syntax to names of editor functions. An empty function name unbinds the
	// key.
	Bindings map[string]string `yaml:"bindings"`
}

// HistoryConfig configures the history store.
type HistoryConfig struct {
	// Path of the history database. Empty means in-memory history only.
	File string `yaml:"file"`
	// Maximum number of entries kept in the database; the oldest entries
	// beyond it are deleted when new ones are added. 0 means no limit.
	MaxEntries int `yaml:"max-entries"`
}

// DefaultMaxEntries is the history cap used when the configuration does not
// specify one.
const DefaultMaxEntries = 10000

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Prompt:  defaultPrompt,
		History: HistoryConfig{MaxEntries: DefaultMaxEntries},
	}
}

// DefaultConfigPath returns the default path of the configuration file,
// $XDG_CONFIG_HOME/gline/gline.yaml or the OS equivalent.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gline", "gline.yaml"), nil
}

// LoadConfig reads the configuration from the named file. A missing file is
// not an error and yields the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %v: %w", path, err)
	}
	return cfg, nil
}

// Resolves the default bindings plus the configured overrides into a lookup
// table of editor functions.
func (c Config) bindings() (map[ui.Key]func(*Editor) action, error) {
	resolved := make(map[ui.Key]func(*Editor) action, len(defaultBindings))
	for k, name := range defaultBindings {
		resolved[k] = builtins[name]
	}
	for spec, name := range c.Bindings {
		k, err := ui.ParseKey(spec)
		if err != nil {
			return nil, fmt.Errorf("bad binding: %w", err)
		}
		if name == "" {
			delete(resolved, k)
			continue
		}
		fn, ok := builtins[name]
		if !ok {
			return nil, fmt.Errorf("bad binding: unknown function %q", name)
		}
		resolved[k] = fn
	}
	return resolved, nil
}
