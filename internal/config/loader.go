package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the configuration path used when none is given on the
// command line: $ASKPASS_CONFIG, then $XDG_CONFIG_HOME/askpass/askpass.toml.
func DefaultPath() string {
	if p := os.Getenv("ASKPASS_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "askpass", "askpass.toml")
}

// Load resolves the configuration: built-in defaults, then the file at path
// (or DefaultPath when empty), then ASKPASS_* environment overrides. A
// missing default-path file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(path, data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("reading configuration: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.Decode(string(data), cfg)
		return err
	}
}

// WriteDefault emits the built-in configuration as TOML, suitable as a
// starting point for a user configuration file.
func WriteDefault(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "# askpass configuration"); err != nil {
		return err
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	return enc.Encode(Default())
}
