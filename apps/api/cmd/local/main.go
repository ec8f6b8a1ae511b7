//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chokka/chokka-api/apps/api/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, os.Getenv("PORT"), ".env", "../../.env"); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
	log.Println("Server exiting")
}
