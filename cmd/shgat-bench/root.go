package main

import (
	"github.com/spf13/cobra"
)

var (
	fixturePath string
	configPath  string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "shgat-bench",
	Short: "Exercise the SHGAT routing engine from the command line",
	Long: `shgat-bench loads a fixture snapshot of registered tools and
capabilities, builds a routing.Engine from it, and drives the engine's
public API — scoreCapabilities/scoreTools, suggestDag, findShortestHyperpath,
and a synthetic training loop — without any of this codebase's outer
surfaces (no MCP/JSON-RPC framing, no persistence).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fixturePath, "fixture", "fixture.json", "path to the tool/capability fixture JSON file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional path to a YAML config.Config document")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(trainCmd)
}
