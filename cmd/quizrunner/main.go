package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/letsssgooo/quizrunner/internal/config"
	"github.com/letsssgooo/quizrunner/internal/console"
	"github.com/letsssgooo/quizrunner/internal/lib/slogcustom"
	"github.com/letsssgooo/quizrunner/internal/loader"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	envErr := godotenv.Load()

	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(stdout, config.Usage())
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n%s", err, config.Usage())
		return exitUsage
	}

	color.NoColor = color.NoColor || cfg.NoColor

	log := slogcustom.NewLogger(stderr, cfg.LogLevel)
	slog.SetDefault(log)

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	q, err := loader.LoadFile(cfg.QuizFile)
	if err != nil {
		slog.Error("failed to load quiz", "err", err)
		return exitError
	}

	if cfg.Show {
		out, err := q.RenderAll()
		if err != nil {
			slog.Error("failed to render quiz", "err", err)
			return exitError
		}

		fmt.Fprint(stdout, out)
		return exitOK
	}

	slog.Info("starting quiz", "name", q.Name(), "questions", q.Len())

	result, err := q.RunFull(ctx, console.NewLineAsker(stdin, stdout), console.NewReporter(stdout))
	if err != nil {
		slog.Error("quiz run failed", "err", err)
		return exitError
	}

	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, result.Summary())

	if cfg.ExportPath != "" {
		data, err := result.ExportCSV()
		if err != nil {
			slog.Error("failed to export results", "err", err)
			return exitError
		}

		if err = os.WriteFile(cfg.ExportPath, data, 0o644); err != nil {
			slog.Error("failed to write results", "path", cfg.ExportPath, "err", err)
			return exitError
		}

		slog.Info("results exported", "path", cfg.ExportPath, "mistakes", len(result.Mistakes))
	}

	return exitOK
}
