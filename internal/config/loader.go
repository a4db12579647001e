package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-targeting/internal/errors"
)

// LocalPath is the working-directory config file checked when no custom path
// is given.
const LocalPath = "configs/targeting.yaml"

// Load reads and validates the configuration.
// Search order: customPath -> ./configs/targeting.yaml -> embedded default.
// Keys missing from a file keep their built-in values.
func Load(customPath string) (*Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", customPath)
		}
		return Parse(data)
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		return Parse(data)
	}

	return Parse(defaultYAML)
}

// Parse decodes YAML over the built-in configuration and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}
