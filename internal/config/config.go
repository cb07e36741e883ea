package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"handtype-server/internal/util"
	"handtype-server/pkg/deck"
)

// Config provides configuration for the hand-type classifier
type Config struct {
	loaded bool

	// Ranks names the rank ordering: "ace-one", "standard", or a comma separated list of labels
	Ranks    string `yaml:"ranks" envconfig:"ranks"`
	MaxBatch int    `yaml:"maxBatch" envconfig:"max_batch"`
	Log      struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Ranks:    "ace-one",
		MaxBatch: 100,
	}

	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("ht", &cfg); err != nil {
		return err
	}

	if _, err := cfg.Ordering(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Ordering returns the configured rank ordering
func (c Config) Ordering() (*deck.Ordering, error) {
	return deck.OrderingByName(c.Ranks)
}
