package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 120

// MaxReadingWidth caps the wrap width of rendered record bodies.
const MaxReadingWidth = 100

// DisplayContext holds the detected terminal dimensions.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext detects stdout's terminal width.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	d := &DisplayContext{TermWidth: DefaultTermWidth, IsTTY: term.IsTerminal(fd)}
	if d.IsTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			d.TermWidth = w
		}
	}
	return d
}

// NewDisplayContextWithWidth creates a DisplayContext with a fixed width (for testing).
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: true}
}

// AvailableWidth returns the usable width after accounting for left margin.
func (d *DisplayContext) AvailableWidth(leftMargin int) int {
	return d.TermWidth - leftMargin
}

// ReadingWidth returns the wrap width for markdown bodies: the available
// width inside the render margins, capped at MaxReadingWidth.
func (d *DisplayContext) ReadingWidth() int {
	w := d.AvailableWidth(MarkdownRenderMargin * 2)
	if w > MaxReadingWidth {
		return MaxReadingWidth
	}
	if w < 20 {
		return 20
	}
	return w
}
