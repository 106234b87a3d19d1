// Package styles renders self-test reports for the terminal.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/addcheck/internal/selftest"
)

var (
	ColorGreen = lipgloss.Color("10")
	ColorRed   = lipgloss.Color("9")
	ColorGray  = lipgloss.Color("8")

	PassStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	FailStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	DimStyle  = lipgloss.NewStyle().Foreground(ColorGray)
	BoldStyle = lipgloss.NewStyle().Bold(true)
)

const (
	passLabel = "PASS"
	failLabel = "FAIL"
)

// RenderReport formats a report as one line per executed case plus a summary.
// When styled is false the output contains no escape sequences.
func RenderReport(report selftest.Report, styled bool) string {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	width := 0
	for _, res := range report.Results {
		if w := ansi.StringWidth(res.Case.String()); w > width {
			width = w
		}
	}

	var lines []string
	passed := 0
	for _, res := range report.Results {
		name := res.Case.String()
		pad := strings.Repeat(" ", width-ansi.StringWidth(name))
		if res.Passed {
			passed++
			lines = append(lines, fmt.Sprintf("%s  %s%s = %d", render(PassStyle, passLabel), render(BoldStyle, name), pad, res.Got))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s%s = %d %s",
			render(FailStyle, failLabel), render(BoldStyle, name), pad, res.Got,
			render(DimStyle, fmt.Sprintf("(want %d)", res.Case.Want))))
	}

	summary := fmt.Sprintf("%d/%d passed", passed, report.Total)
	if len(report.Results) < report.Total {
		summary += fmt.Sprintf(", %d not run", report.Total-len(report.Results))
	}
	lines = append(lines, "", render(DimStyle, summary))

	content := strings.Join(lines, "\n")
	if !styled {
		return content
	}

	border := ColorGray
	if !report.Passed() {
		border = ColorRed
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(content)
}
