package config

import "fmt"

// Config aggregates every config section the engine needs. Each section
// loads from the environment and validates itself.
type Config struct {
	General GeneralConfig
	Quoting QuotingConfig
	Chain   ChainConfig
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cfg.General.Load(); err != nil {
		return nil, fmt.Errorf("general config: %w", err)
	}
	if err := cfg.Quoting.Load(); err != nil {
		return nil, fmt.Errorf("quoting config: %w", err)
	}
	if err := cfg.Chain.Load(); err != nil {
		return nil, fmt.Errorf("chain config: %w", err)
	}
	return cfg, nil
}
