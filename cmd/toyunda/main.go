package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/PizzaHomicide/toyunda/internal/cli"
	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/native"
	"github.com/PizzaHomicide/toyunda/internal/player"
)

func init() {
	// SDL and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// It is unrecoverable if we cannot produce an application config
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Interrupts end the control loop, which still tears down the engine and window
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, cfg, play, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func play(ctx context.Context, cfg *config.Config, opts player.Options) error {
	return player.New(native.Backend{}, cfg).Play(ctx, opts)
}
