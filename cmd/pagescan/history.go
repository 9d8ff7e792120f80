package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/pagescan/internal/config"
	"github.com/nao1215/pagescan/internal/database"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command inspects past analysis results stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [source]",
		Short: "Show past analysis results",
		Long: `History displays analysis results stored in the history database.

Each 'pagescan analyze' run saves its report unless --no-history was
given. This command lists those reports with their scores, so score
trends for a document are visible across runs.

Examples:
  # List all analyzed documents
  pagescan history --list-sources

  # Show analysis history for a document
  pagescan history index.html

  # Show the latest full report for a document as JSON
  pagescan history --json index.html

  # Show a specific report by ID (IDs are shown in the listing)
  pagescan history --id 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("list-sources", "L", false,
		"List all analyzed documents in the database")
	cmd.Flags().BoolP("json", "j", false,
		"Print the latest full report for the document as JSON")
	cmd.Flags().Int64P("id", "i", 0,
		"Print the full report with this ID as JSON")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	listSources, err := cmd.Flags().GetBool("list-sources")
	if err != nil {
		return err
	}
	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	reportID, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database
	var source string
	if len(args) > 0 {
		source = args[0]
	}
	if !listSources && reportID == 0 && source == "" {
		return errors.New("document source is required (use --list-sources to see analyzed documents)")
	}

	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("failed to open database (run 'pagescan analyze' first): %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch {
	case listSources:
		sources, err := db.ListSources(ctx)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			fmt.Fprintln(out, "No analyzed documents in the database.")
			return nil
		}
		for _, s := range sources {
			fmt.Fprintln(out, s)
		}
		return nil

	case reportID != 0:
		r, err := db.GetReportByID(ctx, reportID)
		if err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("no report with ID %d", reportID)
		}
		return printJSON(cmd, r)

	case jsonOut:
		r, err := db.GetLatestReport(ctx, source)
		if err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("no reports for %s", source)
		}
		return printJSON(cmd, r)

	default:
		return printHistoryTable(cmd, db, source)
	}
}

// printHistoryTable prints analysis metadata for a document as a table.
func printHistoryTable(cmd *cobra.Command, db *database.HistoryDB, source string) error {
	metas, err := db.GetHistoryWithMetadata(cmd.Context(), source)
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		return fmt.Errorf("no reports for %s", source)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Analysis history for %s (%d run(s)):\n\n", source, len(metas))
	fmt.Fprintf(out, "%-6s %-20s %5s %7s %6s %6s %7s %9s\n",
		"ID", "DATE", "SEO", "ACCESS", "PERF", "READ", "ISSUES", "DURATION")
	fmt.Fprintln(out, strings.Repeat("-", 72))

	for _, m := range metas {
		fmt.Fprintf(out, "%-6d %-20s %5d %7d %6d %6d %7d %7dms\n",
			m.ID,
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.SEOScore,
			m.AccessibilityScore,
			m.PerformanceScore,
			m.ReadabilityScore,
			m.IssueCount,
			m.DurationMS,
		)
	}

	return nil
}

// printJSON writes a value as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
