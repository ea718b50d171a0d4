package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	defaultWidth   = 40
	completeChar   = "█"
	incompleteChar = "░"
)

var (
	cyan      = lipgloss.Color("6")
	dim       = lipgloss.Color("243")
	fillStyle = lipgloss.NewStyle().Foreground(cyan)
	restStyle = lipgloss.NewStyle().Foreground(dim)
)

// Bar renders a single redrawn progress line:
//
//	Progress |████████░░░░░░░░| 42% | Installing packages
type Bar struct {
	counter

	out     *termenv.Output
	width   int
	running bool
}

// NewBar returns a Bar drawing to w.
func NewBar(w io.Writer) *Bar {
	return &Bar{
		out:   termenv.NewOutput(w),
		width: defaultWidth,
	}
}

// Start hides the cursor and draws the empty bar.
func (b *Bar) Start(total int) {
	b.start(total)
	b.running = true
	b.out.HideCursor()
	b.redraw()
}

// Advance increments the counter and redraws the line once.
func (b *Bar) Advance(label string) {
	b.advance(label)
	b.redraw()
}

// Complete fills the bar and shows label.
func (b *Bar) Complete(label string) {
	b.complete(label)
	b.redraw()
}

// Stop ends the line and restores the cursor.
func (b *Bar) Stop() {
	if !b.running {
		return
	}
	b.running = false
	fmt.Fprint(b.out, "\n")
	b.out.ShowCursor()
}

func (b *Bar) redraw() {
	if !b.running {
		return
	}
	fmt.Fprint(b.out, "\r")
	b.out.ClearLine()
	fmt.Fprint(b.out, b.line())
}

// line renders the current state without any cursor control sequences.
func (b *Bar) line() string {
	filled := 0
	if b.total > 0 {
		filled = b.count * b.width / b.total
	} else {
		filled = b.width
	}
	bar := fillStyle.Render(strings.Repeat(completeChar, filled)) +
		restStyle.Render(strings.Repeat(incompleteChar, b.width-filled))
	return fmt.Sprintf("Progress |%s| %d%% | %s", bar, b.percent(), b.label)
}
