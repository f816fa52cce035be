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

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/internal/cli"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	interactive := isTerminal(in)
	slog.Debug("starting ledger shell", "env", cfg.Env, "interactive", interactive)

	shell := cli.New(
		app.New(deps, cfg),
		out,
		cli.WithInteractive(interactive),
		cli.WithColor(cfg.CLI.Color && interactive && isTerminal(out)),
	)
	if err := shell.Run(ctx, in); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shell stopped: %w", err)
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
