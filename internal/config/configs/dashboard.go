package configs

// Seed controls the demo dataset loaded at start.
type Seed struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// Projection configures range scaling. RandSeed fixes the chart jitter
// sequence; zero seeds from the clock.
type Projection struct {
	RandSeed uint64 `env:"RAND_SEED" envDefault:"0"`
}

// Metrics toggles the Prometheus endpoint.
type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}
