package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the deck
type Styles struct {
	Title           lipgloss.Style
	PageTitle       lipgloss.Style
	Body            lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	Help            lipgloss.Style
	SegmentSelected lipgloss.Style
	SegmentIdle     lipgloss.Style
	AutoOn          lipgloss.Style
	AutoOff         lipgloss.Style
	Transitioning   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		PageTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1),
		Body:            lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:             lipgloss.NewStyle().Faint(true),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:            lipgloss.NewStyle().Faint(true),
		SegmentSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		SegmentIdle:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		AutoOn:          lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		AutoOff:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Transitioning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
