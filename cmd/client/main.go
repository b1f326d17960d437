package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"AdminDashboard/internal/cli/bootstrap"
	"AdminDashboard/internal/cli/commands"
	"AdminDashboard/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	os.Exit(run(cfg, flag.Args()))
}

func run(cfg *config.Config, args []string) int {
	logger := zap.NewNop()
	if cfg.Verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	sugar := logger.Sugar()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// state → storage → router → ui → api
	app := bootstrap.NewApp(cfg, sugar)
	for _, p := range bootstrap.Default(commands.Dispatch) {
		app.Use(p)
	}
	if err := app.Mount(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			sugar.Warnw("close app", "error", err)
		}
	}()

	code, err := app.Run(ctx, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return code
}

func printVersion() {
	fmt.Printf("AdminDashboard CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
