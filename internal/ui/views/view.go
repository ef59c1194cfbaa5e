package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swipedeck/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Page          domain.Page
	Indicators    []bool
	PageCounter   string
	AutoAdvance   bool
	AutoInterval  string
	InFlight      bool
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	b.WriteString(r.RenderProgress(state.Indicators, width))
	b.WriteString("\n")
	b.WriteString(r.renderHeader(state, width))
	b.WriteString("\n")

	footer := r.renderFooter(state, width)
	pageHeight := state.Height - 2 - lipgloss.Height(footer)
	if pageHeight < 1 {
		pageHeight = 1
	}
	b.WriteString(r.renderPage(state.Page, width, pageHeight))
	b.WriteString("\n")
	b.WriteString(footer)

	return b.String()
}

func (r *Renderer) renderHeader(state ViewState, width int) string {
	left := r.styles.Title.Render(state.Title)
	right := r.styles.Dim.Render(state.PageCounter)
	if state.InFlight {
		right = r.styles.Transitioning.Render("› ") + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderPage(page domain.Page, width, height int) string {
	content := r.styles.PageTitle.Render(page.Title) + "\n" + r.styles.Body.Render(page.Body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(content)
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	var status string
	if state.AutoAdvance {
		status = r.styles.AutoOn.Render("auto " + state.AutoInterval)
	} else {
		status = r.styles.AutoOff.Render("auto off")
	}
	if state.StatusMessage != "" {
		status += "  " + r.styles.Status.Render(state.StatusMessage)
	}

	lines := []string{status}
	if state.HelpView != "" {
		lines = append(lines, r.styles.Help.Width(width).Render(state.HelpView))
	}
	return strings.Join(lines, "\n")
}
