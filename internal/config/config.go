// Package config loads the server configuration from YAML
package config

import (
	"strings"

	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/redis"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

// Log levels accepted by the logging package
var LogLevels = []string{"debug", "info", "warn", "error"}

// Log formats accepted by the logging package
var LogFormats = []string{"text", "json", "logfmt"}

// Config is the full server configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	Targeting engine.Defaults `yaml:"targeting"`
}

// ServerConfig holds the gRPC listener settings
type ServerConfig struct {
	Port int `yaml:"port"`
}

// RedisConfig selects the scene store. An empty endpoint keeps scenes in memory.
type RedisConfig struct {
	Endpoint     string `yaml:"endpoint"`
	PoolSize     int    `yaml:"pool_size"`
	MinIdleConns int    `yaml:"min_idle_conns"`
	UseTLS       bool   `yaml:"use_tls"`
}

// Options converts the settings for the redis client factory
func (r RedisConfig) Options() *redis.Options {
	return &redis.Options{
		PoolSize:     r.PoolSize,
		MinIdleConns: r.MinIdleConns,
		UseTLS:       r.UseTLS,
	}
}

// LogConfig controls the process logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate checks every section. Targeting defaults are validated by the
// engine rules and reported under the "targeting." prefix.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		vb.Fieldf("server.port", "must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Redis.PoolSize < 0 {
		vb.Fieldf("redis.pool_size", "must not be negative, got %d", c.Redis.PoolSize)
	}
	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), LogLevels, vb)
	errors.ValidateEnum("log.format", strings.ToLower(c.Log.Format), LogFormats, vb)

	if err := c.Targeting.Validate(); err != nil {
		for field, messages := range validationFields(err) {
			for _, msg := range messages {
				vb.Field("targeting."+field, msg)
			}
		}
	}

	return vb.Build()
}

func validationFields(err error) map[string][]string {
	fields, ok := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
	if !ok {
		return map[string][]string{"": {errors.GetMessage(err)}}
	}
	return fields
}
