package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output controls where edited subtitles are written.
type Output struct {
	Suffix    string `toml:"suffix"`
	Overwrite bool   `toml:"overwrite"`
}

type Log struct {
	Verbose bool `toml:"verbose"`
}

type Config struct {
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

func Default() Config {
	return Config{
		Output: Output{Suffix: "edited"},
	}
}

// Load reads the TOML file at path over the defaults. An empty path or a
// file that does not exist yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()

			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Output.Suffix == "" {
		return fmt.Errorf("output.suffix must not be empty: the default output would replace the input")
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return fmt.Errorf("output.suffix %q must not contain path separators", c.Output.Suffix)
	}
	return nil
}
