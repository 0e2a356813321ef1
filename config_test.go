package ordsort

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConfigNil(t *testing.T) {
	c := mergeConfig(nil)
	require.NotNil(t, c.Logger)
	assert.False(t, c.RecoverComparisonPanics)
	assert.Positive(t, c.Workers)
}

func TestMergeConfigKeepsSetValues(t *testing.T) {
	in := &Config{RecoverComparisonPanics: true, Workers: 3}
	c := mergeConfig(in)
	assert.True(t, c.RecoverComparisonPanics)
	assert.Equal(t, 3, c.Workers)
	require.NotNil(t, c.Logger)
	assert.Nil(t, in.Logger, "caller config must not be modified")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	err := (&Config{Workers: -1}).Validate()
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "Workers", cfgErr.Field)
	assert.Contains(t, err.Error(), "must not be negative")
}
