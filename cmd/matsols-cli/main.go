package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matsols-cli",
	Short: "MATSOLS API operations tool",
	Long: `matsols-cli runs one-off operations against the MATSOLS database.

It reads the same environment as the API server (DATABASE_URL, .env files).

Examples:
  matsols-cli seed degrees --file seed/degrees.yaml
  matsols-cli seed updates --file seed/updates.yaml
  matsols-cli create-admin --email admin@matsols.com --password '...'
  matsols-cli prune-chat --older-than 720h`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(pruneChatCmd)
}
