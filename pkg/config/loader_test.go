package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkvaulthq/linkvault/pkg/config"
)

type serverConfig struct {
	Addr    string        `env:"TEST_SERVER_ADDR" envDefault:":9090"`
	Timeout time.Duration `env:"TEST_SERVER_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("returns cached value on repeated load", func(t *testing.T) {
		var first serverConfig
		require.NoError(t, config.Load(&first))

		// Changing the environment after the first load must not change
		// the cached config.
		t.Setenv("TEST_SERVER_ADDR", ":7070")

		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first.Addr, second.Addr)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[serverConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
