package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Confirmer asks the operator a yes/no question. Anything other than an
// explicit yes is a no.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// StaticConfirmer answers every prompt the same way. Used for --yes.
type StaticConfirmer bool

func (c StaticConfirmer) Confirm(string) (bool, error) {
	return bool(c), nil
}

// TerminalConfirmer prompts on the controlling terminal. On a TTY it shows a
// huh confirm form; otherwise it falls back to reading one line from In,
// where only "y"/"yes" count as affirmative and EOF or errors mean no.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin, Out: os.Stderr}
}

func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	if f, ok := c.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		var confirmed bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed).
			Run()
		if err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		return confirmed, nil
	}

	fmt.Fprintf(c.Out, "%s (y/N): ", prompt)
	reader := bufio.NewReader(c.In)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		// No input available (e.g. closed stdin in CI): default to no.
		return false, nil
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
