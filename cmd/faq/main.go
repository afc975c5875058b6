package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/faq/internal/cli"
	"github.com/idilsaglam/faq/internal/config"
	"github.com/idilsaglam/faq/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(2)
	}

	// Root flags (apply to every subcommand) override the environment.
	flag.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "content file (.json or .toml)")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "classic, neon or mono")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}
	ui.SetTheme(cfg.Theme)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  cfg.Level(),
		Prefix: "faq",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(ctx, flag.Args(), cli.Options{
		Config: cfg,
		Logger: logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	stop()
	os.Exit(code)
}
