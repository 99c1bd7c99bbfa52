// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dompet/dompet/internal/model"
)

var (
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#22C55E")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#F43F5E")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#38BDF8")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// colorTokens maps the symbolic color tokens carried by category
// records to terminal colors.
var colorTokens = map[string]lipgloss.Color{
	"green":   lipgloss.Color("#22C55E"),
	"blue":    lipgloss.Color("#3B82F6"),
	"purple":  lipgloss.Color("#A855F7"),
	"teal":    lipgloss.Color("#14B8A6"),
	"amber":   lipgloss.Color("#F59E0B"),
	"indigo":  lipgloss.Color("#6366F1"),
	"pink":    lipgloss.Color("#EC4899"),
	"cyan":    lipgloss.Color("#06B6D4"),
	"violet":  lipgloss.Color("#8B5CF6"),
	"fuchsia": lipgloss.Color("#D946EF"),
	"rose":    lipgloss.Color("#F43F5E"),
	"lime":    lipgloss.Color("#84CC16"),
	"red":     lipgloss.Color("#EF4444"),
	"slate":   lipgloss.Color("#64748B"),
}

// ColorForToken resolves a symbolic color token to a terminal color,
// falling back to the neutral slate for unknown tokens.
func ColorForToken(token string) lipgloss.Color {
	if c, ok := colorTokens[token]; ok {
		return c
	}
	return colorTokens["slate"]
}

// CategoryBadge renders a category's icon and label in its color.
func CategoryBadge(info model.CategoryInfo) string {
	style := lipgloss.NewStyle().Foreground(ColorForToken(info.Color))
	if info.Icon == "" {
		return style.Render(info.Label)
	}
	return style.Render(info.Icon + " " + info.Label)
}
