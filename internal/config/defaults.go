package config

import (
	_ "embed"

	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

//go:embed defaults/targeting.yaml
var defaultYAML []byte

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 50051},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Targeting: engine.DefaultDefaults(),
	}
}
