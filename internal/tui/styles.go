package tui

import "github.com/charmbracelet/lipgloss"

var (
	AccentColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	MutedColor  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ErrorColor  = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	NoticeColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(NoticeColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(0, 1)
)
