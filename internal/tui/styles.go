package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/vidcash/internal/theme"
)

// palette is one Catppuccin flavour reduced to the roles the UI uses.
// https://catppuccin.com/palette
type palette struct {
	Text     lipgloss.Color
	Subtext  lipgloss.Color
	Overlay  lipgloss.Color
	Surface  lipgloss.Color
	Base     lipgloss.Color
	Accent   lipgloss.Color
	Brand    lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Featured lipgloss.Color
}

// Mocha
var darkPalette = palette{
	Text:     "#cdd6f4",
	Subtext:  "#a6adc8",
	Overlay:  "#6c7086",
	Surface:  "#313244",
	Base:     "#1e1e2e",
	Accent:   "#89dceb",
	Brand:    "#74c7ec",
	Success:  "#a6e3a1",
	Error:    "#f38ba8",
	Warning:  "#f9e2af",
	Featured: "#f9e2af",
}

// Latte
var lightPalette = palette{
	Text:     "#4c4f69",
	Subtext:  "#6c6f85",
	Overlay:  "#9ca0b0",
	Surface:  "#ccd0da",
	Base:     "#eff1f5",
	Accent:   "#04a5e5",
	Brand:    "#209fb5",
	Success:  "#40a02b",
	Error:    "#d20f39",
	Warning:  "#df8e1d",
	Featured: "#df8e1d",
}

func paletteFor(t theme.Theme) palette {
	if t == theme.Dark {
		return darkPalette
	}
	return lightPalette
}

type styles struct {
	Title    lipgloss.Style
	Brand    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
	Featured lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := paletteFor(t)
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Text),
		Brand:    lipgloss.NewStyle().Bold(true).Foreground(p.Brand),
		Text:     lipgloss.NewStyle().Foreground(p.Text),
		Muted:    lipgloss.NewStyle().Foreground(p.Subtext),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Success:  lipgloss.NewStyle().Foreground(p.Success),
		Warning:  lipgloss.NewStyle().Foreground(p.Warning),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Overlay).
			Padding(0, 1),
		Featured: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Featured).
			Padding(0, 1),
		Button:   lipgloss.NewStyle().Bold(true).Foreground(p.Base).Background(p.Accent).Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(p.Overlay).Background(p.Surface).Padding(0, 1),
	}
}
