package progress

import (
	"fmt"
	"io"
)

// Plain writes one "[n/total] label" line per update.
type Plain struct {
	counter

	w       io.Writer
	running bool
}

// NewPlain returns a Plain reporter writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Start(total int) {
	p.start(total)
	p.running = true
}

func (p *Plain) Advance(label string) {
	p.advance(label)
	p.print()
}

func (p *Plain) Complete(label string) {
	p.complete(label)
	p.print()
}

func (p *Plain) Stop() {
	p.running = false
}

func (p *Plain) print() {
	if !p.running {
		return
	}
	fmt.Fprintf(p.w, "[%d/%d] %s\n", p.count, p.total, p.label)
}
