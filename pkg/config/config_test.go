package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizardwayz/portal/pkg/config"
)

type sample struct {
	Name  string        `env:"SAMPLE_NAME" envDefault:"wizardwayz"`
	Delay time.Duration `env:"SAMPLE_DELAY" envDefault:"500ms"`
	Port  int           `env:"SAMPLE_PORT"`
}

type cached struct {
	Value string `env:"CONFIG_TEST_CACHED" envDefault:"first"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var s sample
		require.NoError(t, config.Parse(&s, map[string]string{}))
		assert.Equal(t, "wizardwayz", s.Name)
		assert.Equal(t, 500*time.Millisecond, s.Delay)
		assert.Zero(t, s.Port)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		var s sample
		require.NoError(t, config.Parse(&s, map[string]string{
			"SAMPLE_NAME":  "portal",
			"SAMPLE_DELAY": "2s",
			"SAMPLE_PORT":  "9000",
		}))
		assert.Equal(t, "portal", s.Name)
		assert.Equal(t, 2*time.Second, s.Delay)
		assert.Equal(t, 9000, s.Port)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var s sample
		err := config.Parse(&s, map[string]string{"SAMPLE_PORT": "not-a-number"})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, config.Parse[sample](nil, nil), config.ErrNilPointer)
	})
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var a cached
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var b cached
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)

	assert.ErrorIs(t, config.Load[cached](nil), config.ErrNilPointer)
}
