// Package config loads the deployment settings the wiring front door
// needs.  Nothing here changes core register behavior; it only says
// where the database lives and how the process logs.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "ATLAS"

type Config struct {
	Env        string `envconfig:"ENV" default:"dev"`
	DBPath     string `envconfig:"DB_PATH" default:"./data/atlas.db"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogConsole bool   `envconfig:"LOG_CONSOLE" default:"false"`

	// SeedSampleData inserts the starter profiles into an empty store.
	SeedSampleData bool `envconfig:"SEED_SAMPLE_DATA" default:"false"`
}

func (c Config) IsDev() bool {
	return strings.EqualFold(c.Env, "dev")
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if !strings.EqualFold(cfg.Env, "dev") && !strings.EqualFold(cfg.Env, "prod") {
		// fail-soft: treat unknown environments as dev
		cfg.Env = "dev"
	}
	return cfg, nil
}
