package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ftcscope/internal/config"
	"ftcscope/internal/ui"
	"ftcscope/internal/util/logx"
	"ftcscope/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("ftcscope", version.String())
		return
	}

	// Setup cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting ftcscope %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		logx.Errorf("ftcscope exited with error: %v", err)
		os.Exit(1)
	}
}
