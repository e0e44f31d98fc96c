package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mobile-next/mobileinput/cli"
	"github.com/mobile-next/mobileinput/commands"
	"github.com/mobile-next/mobileinput/server"
	"github.com/mobile-next/mobileinput/session"
)

func main() {
	// create session registry for cleanup tracking
	registry := session.NewRegistry()
	commands.SetRegistry(registry)

	// setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// run command in goroutine
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx)
	}()

	// wait for command completion or signal
	select {
	case <-ctx.Done():
		// a running server shuts itself down on the cancelled context
		select {
		case <-done:
		case <-time.After(server.ShutdownTimeout):
		}
		registry.CleanupAll()
		os.Exit(0)
	case err := <-done:
		registry.CleanupAll()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
