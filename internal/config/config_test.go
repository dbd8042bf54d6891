package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"QUIZ_FILE", "QUIZ_LOG_LEVEL", "QUIZ_NO_COLOR", "QUIZ_EXPORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"-f", "geo.yml", "--log-level", "debug", "--no-color", "--export", "out.csv"})
	require.NoError(t, err)

	assert.Equal(t, "geo.yml", cfg.QuizFile)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "out.csv", cfg.ExportPath)
	assert.False(t, cfg.Show)
}

func TestLoad_PositionalFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{"--show", "geo.json"})
	require.NoError(t, err)

	assert.Equal(t, "geo.json", cfg.QuizFile)
	assert.True(t, cfg.Show)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZ_FILE", "env.yml")
	t.Setenv("QUIZ_LOG_LEVEL", "WARN")
	t.Setenv("QUIZ_NO_COLOR", "yes")
	t.Setenv("QUIZ_EXPORT", "mistakes.csv")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "env.yml", cfg.QuizFile)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "mistakes.csv", cfg.ExportPath)

	// Флаги важнее окружения
	cfg, err = Load([]string{"--file", "flag.yml", "--log-level", "error"})
	require.NoError(t, err)
	assert.Equal(t, "flag.yml", cfg.QuizFile)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
}

func TestLoad_PositionalFileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZ_FILE", "env.yml")

	cfg, err := Load([]string{"cli.yml"})
	require.NoError(t, err)
	assert.Equal(t, "cli.yml", cfg.QuizFile)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "missing file", args: nil},
		{name: "unknown flag", args: []string{"--shuffle", "geo.yml"}},
		{name: "invalid log level", args: []string{"--log-level", "loud", "geo.yml"}},
		{name: "file twice", args: []string{"-f", "a.yml", "b.yml"}},
		{name: "show with export", args: []string{"--show", "--export", "out.csv", "geo.yml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)

			cfg, err := Load(tc.args)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, Usage(), "--file")
}
