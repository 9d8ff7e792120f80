package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nao1215/pagescan/internal/dom"
	"github.com/spf13/cobra"
)

// NewQueryCmd creates the query command.
// It runs CSS selectors against parsed documents, which is useful for
// inspecting what the analyzer sees without running a full analysis.
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <selector> [file...]",
		Short: "Run a CSS selector against HTML documents",
		Long: `Query parses HTML documents and prints elements matching a CSS selector.

By default the matched elements are printed as HTML. Use --text to print
their text content, --attr to print a single attribute value, or --count
to print only the number of matches.

Examples:
  # Print all images in a document
  pagescan query "img" index.html

  # Print the text of every second-level heading
  pagescan query --text "h2" index.html

  # Print the href of external links
  pagescan query --attr href "a[target=_blank]" index.html

  # Count meta tags read from stdin
  pagescan query --count "meta" - < index.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: runQueryCmd,
	}

	cmd.Flags().BoolP("text", "t", false,
		"Print the text content of matched elements")
	cmd.Flags().StringP("attr", "a", "",
		"Print the value of the named attribute for matched elements")
	cmd.Flags().BoolP("count", "C", false,
		"Print only the number of matched elements")

	return cmd
}

// runQueryCmd executes the query command.
func runQueryCmd(cmd *cobra.Command, args []string) error {
	selector := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}

	textMode, err := cmd.Flags().GetBool("text")
	if err != nil {
		return err
	}
	attrName, err := cmd.Flags().GetString("attr")
	if err != nil {
		return err
	}
	countMode, err := cmd.Flags().GetBool("count")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	showSource := len(files) > 1

	for _, file := range files {
		input, err := readDocument(cmd, file)
		if err != nil {
			return err
		}

		tree, err := dom.Load(input, dom.Options{})
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}

		sel := tree.Document().Find(selector)

		if countMode {
			if showSource {
				fmt.Fprintf(out, "%s: %d\n", file, sel.Length())
			} else {
				fmt.Fprintf(out, "%d\n", sel.Length())
			}
			continue
		}

		var walkErr error
		sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			line, err := renderSelection(s, textMode, attrName)
			if err != nil {
				walkErr = err
				return false
			}
			if line == "" {
				return true
			}
			if showSource {
				fmt.Fprintf(out, "%s: %s\n", file, line)
			} else {
				fmt.Fprintln(out, line)
			}
			return true
		})
		if walkErr != nil {
			return walkErr
		}
	}

	return nil
}

// renderSelection formats one matched element per the output flags.
func renderSelection(s *goquery.Selection, textMode bool, attrName string) (string, error) {
	switch {
	case attrName != "":
		val, ok := s.Attr(attrName)
		if !ok {
			return "", nil
		}
		return val, nil
	case textMode:
		return strings.Join(strings.Fields(s.Text()), " "), nil
	default:
		html, err := goquery.OuterHtml(s)
		if err != nil {
			return "", fmt.Errorf("failed to render element: %w", err)
		}
		return strings.TrimSpace(html), nil
	}
}

// readDocument reads a document from a file or stdin for the "-" source.
func readDocument(cmd *cobra.Command, file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}
