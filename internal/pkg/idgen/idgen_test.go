package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-targeting/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenTestSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUIDGenerator() {
	id := idgen.NewUUID("scene").Generate()
	s.True(strings.HasPrefix(id, "scene_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "scene_"))
	s.NoError(err)

	plain := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(plain)
	s.NoError(err)
	s.NotEqual(plain, idgen.NewUUID("").Generate())
}
