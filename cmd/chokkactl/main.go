package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// envFiles are loaded before the runtime starts
	envFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "chokkactl",
	Short: "Operate the Chokka storefront backend",
	Long: `chokkactl runs maintenance tasks against the Chokka database and
courier account, and can serve the API locally.

Available commands:
  sync           - Reconcile open shipments with Steadfast
  low-stock      - List inventory at or below its reorder level
  hash-password  - Print a bcrypt hash for ADMIN_PASSWORD_HASH
  serve          - Run the HTTP API`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", []string{".env"}, "dotenv files to load")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(lowStockCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
