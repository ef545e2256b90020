package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	filter       lipgloss.Style
	filterActive lipgloss.Style
	summary      lipgloss.Style
	card         lipgloss.Style
	cardSelected lipgloss.Style
	done         lipgloss.Style
	pending      lipgloss.Style
	recent       lipgloss.Style
	description  lipgloss.Style
	message      lipgloss.Style
	notice       lipgloss.Style
	errorText    lipgloss.Style
	form         lipgloss.Style
	label        lipgloss.Style
	help         lipgloss.Style
}

func newStyles() styles {
	subtle := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	accent := lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#A5B4FC"}

	return styles{
		title:        lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		filter:       lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		filterActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent).Padding(0, 1),
		summary:      lipgloss.NewStyle().Foreground(subtle),
		card:         lipgloss.NewStyle().PaddingLeft(2),
		cardSelected: lipgloss.NewStyle().PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accent),
		done:         lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		recent:       lipgloss.NewStyle().Foreground(accent).Italic(true),
		description:  lipgloss.NewStyle().Foreground(subtle).PaddingLeft(4),
		message:      lipgloss.NewStyle().Foreground(subtle).Italic(true).PaddingLeft(2),
		notice:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		errorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		form:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		label:        lipgloss.NewStyle().Bold(true),
		help:         lipgloss.NewStyle().Foreground(subtle),
	}
}
