package config

import (
	"github.com/caarlos0/env/v11"

	"adpulse/internal/config/configs"
)

// Config is everything the dashboard API reads from its environment. Each
// section keeps its own prefix (HTTP_, LOG_, SEED_, PROJECTION_, METRICS_)
// and its defaults live next to its type in configs.
type Config struct {
	// Env is attached to every log line as "env".
	Env string `env:"ENV" envDefault:"prod"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Seed       configs.Seed       `envPrefix:"SEED_"`
	Projection configs.Projection `envPrefix:"PROJECTION_"`
	Metrics    configs.Metrics    `envPrefix:"METRICS_"`
}

// Load parses the environment. Unset variables take their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
