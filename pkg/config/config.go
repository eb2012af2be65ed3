package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// EnvPrefix is prepended to every environment variable name, e.g. INVENTORY_LOG_LEVEL
const EnvPrefix = "inventory"

// Config holds runtime configuration for the inventory command
type Config struct {
	Format        string `envconfig:"FORMAT" default:"table"`
	SeedFile      string `envconfig:"SEED_FILE"`
	NamePolicy    string `envconfig:"NAME_POLICY" default:"reject"`
	MaxNameLength int    `envconfig:"MAX_NAME_LENGTH" default:"25"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:"text"`
	NoColor       bool   `envconfig:"NO_COLOR" default:"false"`
}

// FromEnv reads configuration from INVENTORY_* environment variables
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to read environment")
	}
	return cfg.Normalize(), nil
}

// Normalize trims and lower-cases the keyword settings so later
// comparisons can match them exactly
func (c Config) Normalize() Config {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.NamePolicy = strings.ToLower(strings.TrimSpace(c.NamePolicy))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.SeedFile = strings.TrimSpace(c.SeedFile)
	return c
}

// Validate checks values that envconfig cannot. Call it on a normalized Config.
func (c Config) Validate() error {
	switch c.Format {
	case "table", "json", "csv":
	default:
		return errors.Errorf("unsupported output format: %s", c.Format)
	}
	if c.MaxNameLength <= 0 {
		return errors.Errorf("max name length must be positive, got %d", c.MaxNameLength)
	}
	if _, err := entities.ParseNamePolicy(c.NamePolicy); err != nil {
		return err
	}
	return nil
}

// NameRules converts the name settings into entities.NameRules
func (c Config) NameRules() (entities.NameRules, error) {
	policy, err := entities.ParseNamePolicy(c.NamePolicy)
	if err != nil {
		return entities.NameRules{}, err
	}
	return entities.NameRules{MaxLength: c.MaxNameLength, Policy: policy}, nil
}
