package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleSuccess for success messages.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleSpinner for the spinner glyph.
	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)
