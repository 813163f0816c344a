package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
)

// configFile is the file name looked up under the config directory.
const configFile = "config.toml"

// Config is the on-disk CLI configuration. Command-line flags override it.
type Config struct {
	Validation ValidationConfig `toml:"validation"`
	Multiply   MultiplyConfig   `toml:"multiply"`
	Render     RenderConfig     `toml:"render"`
}

// ValidationConfig controls how input files are checked.
type ValidationConfig struct {
	Level          int  `toml:"level"`
	StrictOrdering bool `toml:"strict_ordering"`
}

// MultiplyConfig holds the defaults of the multiply command.
type MultiplyConfig struct {
	CoverageTag string  `toml:"coverage_tag"`
	Unit        float64 `toml:"unit"` // 0 derives the unit from the graph mean
}

// RenderConfig holds the defaults of the render command.
type RenderConfig struct {
	Detailed  bool   `toml:"detailed"`
	Direction string `toml:"direction"`
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() Config {
	return Config{
		Validation: ValidationConfig{Level: int(gfa.LevelStrict)},
		Multiply:   MultiplyConfig{CoverageTag: "RC"},
		Render:     RenderConfig{Direction: "LR"},
	}
}

// Level returns the validation level as a gfa.Level.
func (c Config) Level() gfa.Level { return gfa.Level(c.Validation.Level) }

func (c Config) validate() error {
	if c.Validation.Level < int(gfa.LevelNone) || c.Validation.Level > int(gfa.LevelComplete) {
		return errors.New(errors.ErrCodeArgument, "validation level must be between %d and %d, got %d",
			gfa.LevelNone, gfa.LevelComplete, c.Validation.Level)
	}
	if c.Multiply.Unit < 0 {
		return errors.New(errors.ErrCodeArgument, "multiply unit must not be negative, got %g", c.Multiply.Unit)
	}
	return nil
}

// configDir returns the config directory using the XDG standard
// (~/.config/gfakit/).
func configDir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the configuration at path over the defaults. An empty
// path means the default location, which may be missing; an explicit path
// must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, errors.New(errors.ErrCodeArgument, "config %s: unknown key %s", path, keys[0])
	}
	return cfg, cfg.validate()
}
