// Package config loads the optional setup.toml that tunes the provisioner.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

// ConfigDir is the project-relative directory holding setup.toml.
const ConfigDir = ".seahorse"

// ConfigFile is the setup.toml file name.
const ConfigFile = "setup.toml"

// DefaultMinimumPython is the oldest interpreter the voice agent supports.
// pydantic v2 and recent Playwright wheels both require 3.9.
const DefaultMinimumPython = "3.9"

// Config is the parsed setup.toml.
type Config struct {
	Python   PythonConfig   `toml:"python"`
	Packages PackagesConfig `toml:"packages"`
	Browsers BrowsersConfig `toml:"browsers"`
}

// PythonConfig selects and gates the interpreter.
type PythonConfig struct {
	// Interpreter is a path or PATH-resolvable name; empty means auto-detect.
	Interpreter string `toml:"interpreter"`
	// MinimumVersion overrides DefaultMinimumPython.
	MinimumVersion string `toml:"minimum_version"`
}

// PackagesConfig appends packages to the fixed install list.
type PackagesConfig struct {
	Extra []string `toml:"extra"`
}

// BrowsersConfig controls the Playwright browser step.
type BrowsersConfig struct {
	Skip bool `toml:"skip"`
}

// Default returns the configuration used when no setup.toml exists.
func Default() Config {
	return Config{
		Python: PythonConfig{MinimumVersion: DefaultMinimumPython},
	}
}

// Path returns the setup.toml path under root.
func Path(root string) string {
	return filepath.Join(root, ConfigDir, ConfigFile)
}

// Load reads setup.toml from root. A missing file is not an error; defaults
// are returned. Unknown keys are rejected so typos surface instead of
// silently doing nothing.
func Load(root string) (Config, error) {
	cfg := Default()
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf(messages.ConfigParseFailedFmt, path, err)
	}
	if cfg.Python.MinimumVersion == "" {
		cfg.Python.MinimumVersion = DefaultMinimumPython
	}
	if _, err := semver.NewVersion(cfg.Python.MinimumVersion); err != nil {
		return Default(), fmt.Errorf(messages.ConfigBadMinVersionFmt, cfg.Python.MinimumVersion, err)
	}
	return cfg, nil
}

// MinimumPython parses the configured minimum interpreter version.
func (c Config) MinimumPython() *semver.Version {
	v, err := semver.NewVersion(c.Python.MinimumVersion)
	if err != nil {
		v = semver.MustParse(DefaultMinimumPython)
	}
	return v
}
