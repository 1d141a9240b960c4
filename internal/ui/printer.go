package ui

import (
	"fmt"
	"io"
)

// Printer writes glyph-prefixed status lines. It holds a plain io.Writer so
// tests can capture output in a buffer.
type Printer struct {
	Out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

// Info prints an informational progress line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", InfoStyle.Render(IconInfo), fmt.Sprintf(format, a...))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, a ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", WarnStyle.Render(IconWarn), fmt.Sprintf(format, a...))
}

// OK prints a success line.
func (p *Printer) OK(format string, a ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", OKStyle.Render(IconOK), fmt.Sprintf(format, a...))
}

// Fail prints a failure line.
func (p *Printer) Fail(format string, a ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", FailStyle.Render(IconFail), fmt.Sprintf(format, a...))
}

// Skip prints a skipped-step line.
func (p *Printer) Skip(format string, a ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", MutedStyle.Render(IconSkip), fmt.Sprintf(format, a...))
}

// Header prints a bold section header.
func (p *Printer) Header(text string) {
	fmt.Fprintf(p.Out, "%s\n", HeaderStyle.Render(text))
}
