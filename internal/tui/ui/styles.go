// Package ui provides shared styles, key bindings, and messages for the
// wizard TUI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Catppuccin Mocha inspired).
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"} // Blue
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#cba6f7"} // Mauve
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"} // Green
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"} // Yellow
	ColorError     = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"} // Red
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"} // Overlay0
	ColorText      = lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"} // Text
	ColorSurface   = lipgloss.AdaptiveColor{Light: "#e6e9ef", Dark: "#313244"} // Surface0
)

// Styles contains reusable lipgloss styles for the wizard.
type Styles struct {
	// Base styles
	App       lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Paragraph lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Form fields
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style

	// Buffer editor
	BufferTitle lipgloss.Style
	BufferDirty lipgloss.Style

	// Step sidebar
	SidebarItem    lipgloss.Style
	SidebarActive  lipgloss.Style
	SidebarApplied lipgloss.Style

	// List items
	ListItem       lipgloss.Style
	ListItemActive lipgloss.Style

	// Buttons
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// Help and notices
	Help    lipgloss.Style
	HelpKey lipgloss.Style
	Notice  lipgloss.Style
}

// DefaultStyles returns the default wizard styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		Paragraph: lipgloss.NewStyle().
			Foreground(ColorText),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		FieldLabel: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(18),

		FieldFocused: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Width(18),

		BufferTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary),

		BufferDirty: lipgloss.NewStyle().
			Foreground(ColorWarning),

		SidebarItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(ColorMuted),

		SidebarActive: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(ColorPrimary).
			Bold(true),

		SidebarApplied: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(ColorSuccess),

		ListItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorText),

		ListItemActive: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorPrimary).
			Bold(true),

		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorText).
			Background(ColorSurface).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted),

		ButtonActive: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorSurface).
			Background(ColorPrimary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
	}
}

// WithWidth returns styles adapted for a specific terminal width.
func (s Styles) WithWidth(width int) Styles {
	s.App = s.App.Width(width)
	return s
}
