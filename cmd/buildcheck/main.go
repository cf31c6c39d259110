// buildcheck evaluates PC builds from the command line against the part
// catalog used by the API.
//
// Usage:
//
//	buildcheck evaluate --build build.yaml [--catalog catalog.yaml] [--region EU] [--format human|json|yaml]
//	buildcheck catalog [--category gpu]
//	buildcheck presets
//	buildcheck token --user <id> --secret <jwt-secret>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	catalogPath string
}

var rootCmd = &cobra.Command{
	Use:   "buildcheck",
	Short: "Check PC builds for compatibility, performance and upgrades",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "Catalog YAML (defaults to the built-in catalog)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
