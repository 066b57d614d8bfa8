// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across all CLI output.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text and absent values.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for valid descriptors and true predicates.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors and invalid descriptors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for descriptors and report keys.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for valid results and true predicates.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and invalid results.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for descriptors, keys and code.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// reportKeyStyle pads report keys into a column.
	reportKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Width(18)

	// tableHeaderStyle is for the constants table header row.
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Width(30)

	// tableCellStyle is for constants table cells.
	tableCellStyle = lipgloss.NewStyle().
			Width(30)
)

// boolStyle renders a predicate result.
func boolStyle(v bool) string {
	if v {
		return SuccessStyle.Render("true")
	}
	return SubtitleStyle.Render("false")
}
