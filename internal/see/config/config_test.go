package config

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/libsee/internal/see/rawout"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "stdout", cfg.Output)
	assert.False(t, cfg.Trace)
	assert.True(t, cfg.Grouping)
	assert.False(t, cfg.Signals)
	assert.Equal(t, "disabled", cfg.LogLevel)
	assert.Equal(t, byte(rawout.DefaultSeparator), cfg.Separator())
}

func TestLoad(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"LIBSEE_OUTPUT":   "/tmp/see.txt",
		"LIBSEE_TRACE":    "1",
		"LIBSEE_GROUPING": "false",
		"LIBSEE_SIGNALS":  "true",
		"LIBSEE_LOG":      "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Output:   "/tmp/see.txt",
		Trace:    true,
		Grouping: false,
		Signals:  true,
		LogLevel: "debug",
	}, cfg)
	assert.Zero(t, cfg.Separator())
}

func TestLoadExpandsPID(t *testing.T) {
	cfg, err := Load(env(map[string]string{"LIBSEE_OUTPUT": "/tmp/reports/libsee-%p.txt"}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports/libsee-"+strconv.Itoa(os.Getpid())+".txt", cfg.Output)
}

func TestLoadIgnoresEmptyValues(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"LIBSEE_OUTPUT":   "",
		"LIBSEE_GROUPING": "  ",
	}))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidBooleans(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"LIBSEE_TRACE":    "sometimes",
		"LIBSEE_GROUPING": "nope",
		"LIBSEE_OUTPUT":   "stderr",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), "LIBSEE_TRACE")
	assert.Contains(t, err.Error(), "LIBSEE_GROUPING")

	assert.False(t, cfg.Trace)
	assert.True(t, cfg.Grouping, "invalid values keep the default")
	assert.Equal(t, "stderr", cfg.Output, "valid values still apply")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LIBSEE_OUTPUT", "tty")
	t.Setenv("LIBSEE_TRACE", "")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "tty", cfg.Output)
	assert.False(t, cfg.Trace)
}
