/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "specdoc",
	Short: "Generate HTML documentation from OpenAPI and Swagger documents",
	Long: `specdoc turns an OpenAPI 3.x or Swagger 2.0 document (JSON or YAML) into a
single self-contained HTML page with collapsible endpoints and a search box.

Usage:
  specdoc generate openapi.yaml docs.html
  specdoc normalize -i openapi.yaml -o normalized.json
  specdoc serve --port 3000`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
