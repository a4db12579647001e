// Package main is the entry point for the targeting server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-targeting/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-targeting",
	Short: "Collision and targeting query server",
	Long: `rpg-targeting answers which tokens on a tabletop scene are covered by
area templates. It runs as a gRPC server, answers one-off queries against a
scene file, and ships client commands for a running server.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
