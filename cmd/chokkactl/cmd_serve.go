package main

import (
	"os/signal"
	"syscall"

	"github.com/chokka/chokka-api/apps/api/server"

	"github.com/spf13/cobra"
)

var servePort string

// serveCmd runs the HTTP API until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.Serve(ctx, servePort, envFiles...)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (defaults to PORT)")
}
