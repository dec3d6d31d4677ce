package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pyrolayout/boardplan/pkg/errors"
	"github.com/pyrolayout/boardplan/pkg/pipeline"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// PrintError prints a failed run's error to stderr, with its code when it
// carries one.
func PrintError(err error) {
	msg := err.Error()
	if code := errors.GetCode(err); code != "" {
		msg = fmt.Sprintf("%s %s", StyleDim.Render(string(code)), errors.UserMessage(err))
	}
	fmt.Fprintln(os.Stderr, styleIconError.Render(iconError)+" "+msg)
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Plan Summary
// =============================================================================

// printPlanSummary prints half-board count and per-caliber packing.
func printPlanSummary(res *pipeline.Result, labels plan.Labels) {
	fmt.Println(StyleTitle.Render(res.Plan.Model.Title()))
	printKeyValue("half-boards", StyleNumber.Render(fmt.Sprint(res.Stats.HalfBoards)))

	stats := res.Plan.Stats()
	for _, c := range plan.KnownCalibers() {
		if stats.Guns[c] == 0 && stats.Crates[c] == 0 {
			continue
		}
		printKeyValue(labels.Label(c), summaryLine(stats, c))
	}
}

// summaryLine renders one caliber's totals: "12 guns · 2 crates · 2 extra".
func summaryLine(s plan.Stats, c plan.Caliber) string {
	parts := []string{
		fmt.Sprintf("%d guns", s.Guns[c]),
		fmt.Sprintf("%d crates", s.Crates[c]),
		fmt.Sprintf("%d racks", s.Racks[c]),
		fmt.Sprintf("%d extra", s.Extras[c]),
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}
