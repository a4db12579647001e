package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-targeting/internal/config"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeConfig(body string) string {
	path := filepath.Join(s.T().TempDir(), "targeting.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestLoadEmbedded() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadCustomPath() {
	path := s.writeConfig(`
server:
  port: 6000
redis:
  endpoint: localhost:6379
targeting:
  tolerance: 0.25
  collision_method: AREA_INTERSECTION
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(6000, cfg.Server.Port)
	s.Equal("localhost:6379", cfg.Redis.Endpoint)
	s.InDelta(0.25, cfg.Targeting.Tolerance, 1e-9)
	s.Equal(engine.MethodAreaIntersection, cfg.Targeting.CollisionMethod)

	s.Run("missing keys keep built-in values", func() {
		s.Equal(engine.TokenShapeRectangle, cfg.Targeting.TokenCollisionShape)
		s.Equal("info", cfg.Log.Level)
		s.Equal(10, cfg.Redis.PoolSize)
	})
}

func (s *ConfigTestSuite) TestLoadMissingCustomPath() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read config")
}

func (s *ConfigTestSuite) TestParseErrors() {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "zero tolerance",
			body:  "targeting:\n  tolerance: 0\n",
			field: "targeting.tolerance",
		},
		{
			name:  "negative tolerance",
			body:  "targeting:\n  tolerance: -1\n",
			field: "targeting.tolerance",
		},
		{
			name:  "tolerance above one",
			body:  "targeting:\n  tolerance: 1.5\n",
			field: "targeting.tolerance",
		},
		{
			name:  "unknown method",
			body:  "targeting:\n  collision_method: NEAREST\n",
			field: "targeting.collision_method",
		},
		{
			name:  "unknown token shape",
			body:  "targeting:\n  token_collision_shape: HEX\n",
			field: "targeting.token_collision_shape",
		},
		{
			name:  "bad port",
			body:  "server:\n  port: 70000\n",
			field: "server.port",
		},
		{
			name:  "bad log level",
			body:  "log:\n  level: loud\n",
			field: "log.level",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Parse([]byte(tc.body))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(tc.field, errors.GetField(err))
		})
	}

	s.Run("malformed yaml", func() {
		_, err := config.Parse([]byte("targeting: [unclosed"))
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ConfigTestSuite) TestRedisOptions() {
	opts := config.RedisConfig{PoolSize: 20, MinIdleConns: 4, UseTLS: true}.Options()
	s.Equal(20, opts.PoolSize)
	s.Equal(4, opts.MinIdleConns)
	s.True(opts.UseTLS)
}
