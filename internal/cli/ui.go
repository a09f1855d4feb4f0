package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleError for error messages.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)

	// styleKey for key-value listing keys.
	styleKey = lipgloss.NewStyle().Foreground(colorGray)

	// styleIconSpinner for the spinner glyph.
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// printSuccess prints a green checkmark line.
func printSuccess(format string, args ...any) {
	fmt.Println(StyleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// printInfo prints a muted informational line.
func printInfo(format string, args ...any) {
	fmt.Println(StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints an aligned "Key: value" line with the value highlighted.
func printKeyValue(key, value string) {
	fmt.Printf("%s %s\n", styleKey.Render(key+":"), StyleHighlight.Render(value))
}

// printFile points the user at a written output file.
func printFile(path string) {
	fmt.Println(StyleDim.Render("  → " + path))
}
