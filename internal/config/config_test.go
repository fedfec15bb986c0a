package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, Load(viper.New()))

	c := Get()
	assert.Equal(t, ":5000", c.Server.Addr)
	assert.NotEmpty(t, c.Server.TempDir)
	assert.Equal(t, "medium", c.Protection.DefaultLevel)
	assert.Equal(t, "info", c.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("server.addr", ":8080")
	v.Set("protection.default_level", "nuclear")
	v.Set("logging.level", "debug")
	require.NoError(t, Load(v))

	c := Get()
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "nuclear", c.Protection.DefaultLevel)
	assert.Equal(t, "debug", c.Logging.Level)
}
