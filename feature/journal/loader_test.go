package journal

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	svc := setupSQLite(t)
	feature := NewFeature(svc.db, zap.NewNop(), true)

	assert.Equal(t, "journal", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
	assert.Same(t, feature.Service(), feature.service)
}

func TestLoader_DisabledWithoutDatabase(t *testing.T) {
	assert.False(t, NewFeature(nil, zap.NewNop(), true).IsEnabled())
	assert.False(t, NewFeature(setupSQLite(t).db, zap.NewNop(), false).IsEnabled())
}
