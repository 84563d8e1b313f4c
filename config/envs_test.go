package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("VINOM_PATHFINDER_UNSET", "fallback"))
		assert.Equal(t, 42, getEnvAsIntWithDefault("VINOM_PATHFINDER_UNSET", 42))
		assert.Equal(t, int64(7), getEnvAsInt64WithDefault("VINOM_PATHFINDER_UNSET", 7))
	})

	t.Run("value when set", func(t *testing.T) {
		t.Setenv("VINOM_PATHFINDER_PORT", "9090")
		t.Setenv("VINOM_PATHFINDER_SEED", "-3")
		t.Setenv("VINOM_PATHFINDER_MODE", "debug")

		assert.Equal(t, 9090, getEnvAsIntWithDefault("VINOM_PATHFINDER_PORT", 8080))
		assert.Equal(t, int64(-3), getEnvAsInt64WithDefault("VINOM_PATHFINDER_SEED", 1))
		assert.Equal(t, "debug", getEnvWithDefault("VINOM_PATHFINDER_MODE", "release"))
	})
}
