// Package ui holds the terminal styles for the CLI help output. Plain
// ANSI colors only, so the palette follows the user's terminal theme.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle renders section headers.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle renders usage lines and arguments.
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle dims command descriptions.
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle renders flag names.
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
