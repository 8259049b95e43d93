package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/section"
	"github.com/charmbracelet/lipgloss"
)

var (
	// numberStyle for section designators
	numberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// titleStyle for section titles
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// dimStyle for page references and the summary line
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for the final count
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// RenderOutline prints the extracted sections as an indented outline.
func RenderOutline(w io.Writer, sections []*section.Section) {
	for _, s := range sections {
		indent := strings.Repeat("  ", s.Level-1)
		fmt.Fprintf(w, "%s%s %s %s\n",
			indent,
			numberStyle.Render(s.Number),
			titleStyle.Render(s.Title),
			dimStyle.Render(fmt.Sprintf("(page %d)", s.Page)),
		)
	}
}

func summaryLine(count int, path string) string {
	return fmt.Sprintf("%s %s",
		successStyle.Render(fmt.Sprintf("%d sections", count)),
		dimStyle.Render("→ "+path),
	)
}
