package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
	"github.com/pkg/errors"

	"swipedeck/internal/domain"
)

// PagerOps shows a page body in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal is released while ov runs
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// PageDocument renders the text handed to the pager
func PageDocument(page domain.Page) string {
	var b strings.Builder
	b.WriteString(page.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(page.Title))))
	b.WriteString("\n\n")
	b.WriteString(page.Body)
	if !strings.HasSuffix(page.Body, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// ShowPage takes over the terminal and shows the page in ov
func (p *PagerOps) ShowPage(page domain.Page) error {
	if p.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}

	defer func() {
		// Give ov time to restore the screen before Bubble Tea redraws
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(PageDocument(page)))
	if err != nil {
		return errors.Wrapf(err, "open pager for %s", page.ID)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := root.Run(); err != nil {
		return errors.Wrapf(err, "pager for %s", page.ID)
	}
	return nil
}

// showPageCmd runs the pager off the update loop
func (p *PagerOps) showPageCmd(page domain.Page) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{pageID: page.ID, err: p.ShowPage(page)}
	}
}
