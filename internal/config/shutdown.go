package config

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var shutdownCtx, shutdownCancel = context.WithCancel(context.Background())

// StartListeningForShutdownSignal cancels the shutdown context on
// SIGINT/SIGTERM so background workers can drain before the process exits.
func StartListeningForShutdownSignal() {
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		shutdownCancel()
	}()
}

func GetShutdownContext() context.Context {
	return shutdownCtx
}
