package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	dimColor     = lipgloss.Color("7")
	accentColor  = lipgloss.Color("12")
	warningColor = lipgloss.Color("11")
	dangerColor  = lipgloss.Color("9")

	// Banner naming the provider and the commands
	BannerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// Hints and confirmations
	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)
)
