// Package ui prints the status lines filepacker shows on the terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output is where all lines go.
var Output io.Writer = os.Stdout

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func PrintHeader(msg string) {
	fmt.Fprintf(Output, "\n%s\n", headerStyle.Render(msg))
}

func PrintSuccess(label, detail string) {
	printLine(successStyle, "✔", label, detail)
}

func PrintError(label, detail string) {
	printLine(errorStyle, "✘", label, detail)
}

func PrintWarning(label, detail string) {
	printLine(warningStyle, "!", label, detail)
}

func PrintInfo(label, detail string) {
	printLine(infoStyle, "•", label, detail)
}

func printLine(style lipgloss.Style, mark, label, detail string) {
	fmt.Fprintf(Output, "  %s %-15s %s\n", style.Render(mark), label, style.Render(detail))
}
