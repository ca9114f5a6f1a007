package savekeeper

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatDim returns the string dimmed using pterm
func formatDim(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Gray(s)
}
