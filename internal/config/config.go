// Package config собирает настройки запуска из переменных окружения и флагов.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// ErrUsage возвращается при неверных аргументах командной строки.
var ErrUsage = errors.New("usage error")

// Config содержит настройки запуска квиза.
type Config struct {
	QuizFile   string
	LogLevel   slog.Level
	NoColor    bool
	ExportPath string
	Show       bool
}

// Load читает настройки: значения по умолчанию берутся из окружения
// (QUIZ_FILE, QUIZ_LOG_LEVEL, QUIZ_NO_COLOR, QUIZ_EXPORT), флаги их переопределяют.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("quizrunner", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	quizFile := flags.StringP("file", "f", getEnv("QUIZ_FILE", ""), "path to the quiz file (json or yaml)")
	logLevel := flags.String("log-level", getEnv("QUIZ_LOG_LEVEL", "info"), "log level: debug, info, warn, error")
	noColor := flags.Bool("no-color", getEnvBool("QUIZ_NO_COLOR", false), "disable colored output")
	exportPath := flags.String("export", getEnv("QUIZ_EXPORT", ""), "write incorrect answers to this CSV file")
	show := flags.Bool("show", false, "print all questions with answers and exit")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if flags.NArg() > 0 {
		if flags.Changed("file") {
			return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, flags.Args())
		}
		*quizFile = flags.Arg(0)
	}

	cfg := &Config{
		QuizFile:   strings.TrimSpace(*quizFile),
		NoColor:    *noColor,
		ExportPath: strings.TrimSpace(*exportPath),
		Show:       *show,
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(*logLevel))); err != nil {
		return nil, fmt.Errorf("%w: invalid log level %q", ErrUsage, *logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate проверяет, что все обязательные поля заданы.
func (c *Config) Validate() error {
	if c.QuizFile == "" {
		return fmt.Errorf("%w: quiz file is required (--file or QUIZ_FILE)", ErrUsage)
	}

	if c.Show && c.ExportPath != "" {
		return fmt.Errorf("%w: --export can not be used with --show", ErrUsage)
	}

	return nil
}

// Usage возвращает справку по флагам.
func Usage() string {
	return `Usage:
  quizrunner [options] <quiz file>

Options:
  -f, --file string        path to the quiz file (json or yaml), env QUIZ_FILE
      --log-level string   log level: debug, info, warn, error, env QUIZ_LOG_LEVEL (default "info")
      --no-color           disable colored output, env QUIZ_NO_COLOR
      --export string      write incorrect answers to this CSV file, env QUIZ_EXPORT
      --show               print all questions with answers and exit
`
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
