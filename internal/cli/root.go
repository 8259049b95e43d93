// Package cli implements the restruct command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/restruct"
	"github.com/MatLN8/pdf-restruct/internal/section"
	"github.com/spf13/cobra"
)

var (
	headingRegex      string
	minFontSize       float64
	removeIfContains  []string
	headerHeight      float64
	footerHeight      float64
	startPage         int
	endPage           int
	startHeaderNumber string
	outputPath        string
	nested            bool
	strictSequence    bool
	pageTolerance     int
	quiet             bool
)

var rootCmd = &cobra.Command{
	Use:   "restruct <document>",
	Short: "Extract numbered section headings and content as JSON",
	Long: `Restruct scans a technical document (PDF, Markdown, HTML, DOCX, plain
text) for numbered headings like "1", "1.2", "2.3.4" and writes the
section hierarchy, with the body text of each section, as flat or
nested JSON.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0])
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&headingRegex, "heading-regex", "", "override the numeric heading pattern (group 1 = number, group 2 = title)")
	flags.Float64Var(&minFontSize, "min-font-size", 0, "minimum font size for headings (0 disables the gate)")
	flags.StringArrayVar(&removeIfContains, "remove-header-footer-if-contains", nil, "drop spans containing this substring (repeatable)")
	flags.Float64Var(&headerHeight, "header-height", 0, "ignore spans within this many points of the page top")
	flags.Float64Var(&footerHeight, "footer-height", 0, "ignore spans within this many points of the page bottom")
	flags.IntVar(&startPage, "start-page", 0, "first page to process (1-based, inclusive)")
	flags.IntVar(&endPage, "end-page", 0, "last page to process (1-based, inclusive)")
	flags.StringVar(&startHeaderNumber, "start-header-number", "", "discard content before this heading number")
	flags.StringVarP(&outputPath, "output", "o", "", "output JSON path (default <input>.json, or <input>_nested.json)")
	flags.BoolVar(&nested, "nested", false, "emit the nested tree instead of the flat list")
	flags.BoolVar(&strictSequence, "strict-sequence", false, "demote headings that break numeric continuity")
	flags.IntVar(&pageTolerance, "page-tolerance", 0, "page slack when validating headings against the outline")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress the console outline")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, input string) error {
	opts := restruct.Options{
		HeadingRegex:      headingRegex,
		MinFontSize:       minFontSize,
		RemoveIfContains:  removeIfContains,
		HeaderHeight:      headerHeight,
		FooterHeight:      footerHeight,
		StartPage:         startPage,
		EndPage:           endPage,
		StartHeaderNumber: startHeaderNumber,
		PageTolerance:     pageTolerance,
		StrictSequence:    strictSequence,
	}

	sections, err := restruct.ExtractFile(input, opts)
	if err != nil {
		return err
	}

	out := sections
	if nested {
		out = section.Nest(sections)
	}
	data, err := restruct.EncodeJSON(out)
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = defaultOutputPath(input, nested)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !quiet {
		RenderOutline(cmd.OutOrStdout(), sections)
		fmt.Fprintln(cmd.OutOrStdout(), summaryLine(len(sections), path))
	}
	return nil
}

func defaultOutputPath(input string, nested bool) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if nested {
		return base + "_nested.json"
	}
	return base + ".json"
}
