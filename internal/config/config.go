package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. SPECFILTER_JOURNAL_DIR.
const EnvPrefix = "SPECFILTER"

type Config struct {
	Debug     bool          `yaml:"debug" mapstructure:"debug"`
	Catalog   string        `yaml:"catalog" mapstructure:"catalog"`
	Parallel  bool          `yaml:"parallel" mapstructure:"parallel"`
	ChunkSize int           `yaml:"chunk_size" mapstructure:"chunk_size"`
	Journal   JournalConfig `yaml:"journal" mapstructure:"journal"`
}

type JournalConfig struct {
	Dir       string `yaml:"dir" mapstructure:"dir"`
	Overwrite bool   `yaml:"overwrite" mapstructure:"overwrite"`
	Open      bool   `yaml:"open" mapstructure:"open"`
}

func DefaultConfig() *Config {
	return &Config{
		ChunkSize: 1024,
		Journal: JournalConfig{
			Dir: ".",
		},
	}
}

// SearchPaths returns the directories Load looks for specfilter.yaml in:
// the working directory, then $XDG_CONFIG_HOME/specfilter or ~/.config/specfilter.
func SearchPaths() []string {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return append(paths, filepath.Join(xdg, "specfilter"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "specfilter"))
	}
	return paths
}

// Load reads specfilter.yaml from the first of paths holding one, then applies
// SPECFILTER_* environment variables and any flags already bound to v.
// A missing config file is not an error.
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault("debug", def.Debug)
	v.SetDefault("catalog", def.Catalog)
	v.SetDefault("parallel", def.Parallel)
	v.SetDefault("chunk_size", def.ChunkSize)
	v.SetDefault("journal.dir", def.Journal.Dir)
	v.SetDefault("journal.overwrite", def.Journal.Overwrite)
	v.SetDefault("journal.open", def.Journal.Open)

	v.SetConfigName("specfilter")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("config: chunk_size must be positive, got %d", c.ChunkSize)
	}
	if strings.TrimSpace(c.Journal.Dir) == "" {
		return fmt.Errorf("config: journal.dir is required")
	}
	return nil
}
