package verify

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	passStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Render formats a verification result for the terminal. With plain set,
// styling is skipped so the output can be redirected to the report file.
func Render(r *Result, plain bool) string {
	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(style(titleStyle, "verification report"))
	b.WriteString(fmt.Sprintf("\nwords checked: %d\n", r.Words))

	if r.Ok() {
		b.WriteString(style(passStyle, "PASS"))
	} else {
		b.WriteString(style(failStyle, fmt.Sprintf("FAIL (%d fatal)", len(r.Fatal()))))
	}
	b.WriteString("\n")

	for _, f := range r.Findings {
		line := fmt.Sprintf("  [%s] %s: %s", f.Severity, f.Check, f.Detail)
		if f.Severity == SeverityFatal {
			b.WriteString(style(failStyle, line))
		} else {
			b.WriteString(style(advisoryStyle, line))
		}
		b.WriteString("\n")
	}
	if len(r.Findings) == 0 {
		b.WriteString(style(detailStyle, "  no findings\n"))
	}
	return b.String()
}
