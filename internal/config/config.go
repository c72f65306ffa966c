package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// localConfigName is checked in the working directory before falling back
// to the user config dir.
const localConfigName = ".file-journal.toml"

var (
	// ErrMissing means no config file was found anywhere in the search order.
	ErrMissing = errors.New("no config file found; run 'file-journal init' or pass --path")

	// ErrNoDefaultPath means a config file was found but default_path is unset.
	ErrNoDefaultPath = errors.New("config has no default_path; run 'file-journal init'")
)

// Config is the on-disk configuration. default_path is the only recognized
// key; unknown keys are ignored.
type Config struct {
	DefaultPath string `toml:"default_path"`
}

// Load reads configuration with priority: explicit path > ./.file-journal.toml
// > ~/.config/file-journal/config.toml. Returns ErrMissing when nothing is
// found (or when the explicit path doesn't exist).
func Load(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	if _, err := os.Stat(localConfigName); err == nil {
		return loadFile(localConfigName)
	}

	defaultPath, err := Path()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return nil, ErrMissing
	}

	return loadFile(defaultPath)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissing
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.DefaultPath = ExpandPath(cfg.DefaultPath)
	return &cfg, nil
}

// JournalRoot resolves the journal root for a command: the --path flag
// wins, then the config's default_path. loadErr is whatever Load returned;
// it is only consulted when the flag doesn't settle the question.
func JournalRoot(pathFlag string, cfg *Config, loadErr error) (string, error) {
	if pathFlag != "" {
		return ExpandPath(pathFlag), nil
	}
	if loadErr != nil {
		return "", loadErr
	}
	if cfg.DefaultPath == "" {
		return "", ErrNoDefaultPath
	}
	return cfg.DefaultPath, nil
}

// Path returns the user config file location:
// ~/.config/file-journal/config.toml.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "file-journal", "config.toml"), nil
}

// Dir returns the user config directory, used for the debug log as well.
func Dir() (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// Write serializes cfg as TOML to path, creating parent directories.
func Write(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
