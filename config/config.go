package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"

	appDir   = "cellpad"
	fileName = "config.toml"
)

type Config struct {
	// EnableLogger sends the standard logger to LogFile instead of
	// discarding its output.
	EnableLogger bool   `toml:"enable_logger"`
	LogFile      string `toml:"log_file"`

	// Backend selects how the screen is driven: "ansi" writes escape
	// sequences to the terminal directly, "tcell" goes through terminfo.
	Backend string `toml:"backend"`

	// AmbiguousWide counts East Asian ambiguous characters as two columns.
	// Only the ansi backend honours it; tcell sizes cells itself.
	AmbiguousWide bool `toml:"ambiguous_wide"`
}

func DefaultConfig() Config {
	return Config{
		EnableLogger:  false,
		LogFile:       "cellpad.log",
		Backend:       BackendANSI,
		AmbiguousWide: false,
	}
}

// Path returns the location of the user config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// LoadConfig reads the user config file. A missing or broken file yields
// the defaults; problems are logged, never fatal.
func LoadConfig() Config {
	path, err := Path()
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		return DefaultConfig()
	}
	cfg, err := LoadConfigFrom(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: %v, using defaults", err)
		}
		return DefaultConfig()
	}
	return cfg
}

// LoadConfigFrom decodes path over the defaults, so keys left out of the
// file keep their default values.
func LoadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("config: ignoring unknown keys in %s: %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendANSI, BackendTcell)
	}
	if c.AmbiguousWide && c.Backend == BackendTcell {
		return errors.New("ambiguous_wide is only supported by the ansi backend")
	}
	if c.EnableLogger && c.LogFile == "" {
		return errors.New("enable_logger is set but log_file is empty")
	}
	return nil
}

// SaveConfig writes cfg to the user config file, creating its directory.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := SaveConfigTo(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", path)
	return nil
}

func SaveConfigTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
