// Package main provides the entry point for the pagescan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pagescan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagescan",
		Short: "HTML document analysis and scoring tool",
		Long: `Pagescan analyzes HTML documents for structure, metadata, and quality.

It parses a document into a tree, validates its structure, extracts
metadata and resources, and scores the document for SEO, accessibility,
performance, and readability.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewQueryCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
