package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"caritas/internal/app/bootstrap"
)

// Worker process entrypoint: relays outbox notification rows to the bus.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("build worker: %v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run worker: %v", err)
	}
}
