package suite

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoverse/alice/internal/prover"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory.
const DefaultConfigFile = ".alice.yaml"

// Config holds the settings shared by the prove and check commands.
type Config struct {
	Name string `yaml:"name"`
	// MaxDepth caps proof search recursion. Zero means unbounded.
	MaxDepth int `yaml:"max_depth"`
	// Workers bounds batch concurrency. Zero means one per CPU.
	Workers int `yaml:"workers"`
	// CacheDir enables the verdict cache when non-empty.
	CacheDir string `yaml:"cache_dir"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Name:     "alice",
		MaxDepth: prover.DefaultMaxDepth,
	}
}

// LoadConfig reads the configuration at path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return config, nil
}

// Validate rejects settings no command can honor.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// WriteConfig writes c to path, replacing any existing file.
func WriteConfig(path string, c Config) error {
	d, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
