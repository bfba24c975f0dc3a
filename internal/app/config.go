package app

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the file looked up under Home when no path is given.
const ConfigFileName = "config.toml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home            string // config directory, e.g. $HOME/.stackmeter
	DataDir         string // where domain files live; relative paths resolve under Home
	Encrypt         bool   // seal stored values with Passphrase
	CompressExports bool   // zstd-compress documents written by export
	LogLevel        string
	Passphrase      string // never read from the config file
}

type fileConfig struct {
	DataDir         string `toml:"data_dir"`
	Encrypt         bool   `toml:"encrypt"`
	CompressExports bool   `toml:"compress_exports"`
	LogLevel        string `toml:"log_level"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig(home string) Config {
	return Config{Home: home, DataDir: "data", LogLevel: "info"}
}

// LoadConfig overlays the TOML file at path on the defaults for home. An
// empty path means <home>/config.toml, which may be missing.
func LoadConfig(home, path string) (Config, error) {
	cfg := DefaultConfig(home)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, ConfigFileName)
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("data_dir") {
		if dir := strings.TrimSpace(raw.DataDir); dir != "" {
			cfg.DataDir = dir
		}
	}
	if meta.IsDefined("encrypt") {
		cfg.Encrypt = raw.Encrypt
	}
	if meta.IsDefined("compress_exports") {
		cfg.CompressExports = raw.CompressExports
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}

// DataPath returns the absolute-or-home-relative data directory.
func (c Config) DataPath() string {
	if filepath.IsAbs(c.DataDir) {
		return c.DataDir
	}
	return filepath.Join(c.Home, c.DataDir)
}
