// Package prompt asks for input on the terminal with promptui.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/huddle/pkg/session"
)

// ErrClosed is returned when the user ends input with Ctrl-C or Ctrl-D.
var ErrClosed = errors.New("prompt: input closed")

// Prompter reads answers from In and echoes to Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	// ask runs a single prompt; tests replace it.
	ask func(label string, validate promptui.ValidateFunc) (string, error)
}

var _ session.ProfileSource = (*Prompter)(nil)

func (p *Prompter) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Prompter) run(label string, validate promptui.ValidateFunc) (string, error) {
	if p.ask != nil {
		return p.ask(label, validate)
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	in := p.In
	if in == nil {
		in = os.Stdin
	}
	pr := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{p.out()},
	}

	result, err := pr.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", ErrClosed
	}
	return result, err
}

// Required asks for a value that is not blank.
func (p *Prompter) Required(label string) (string, error) {
	return p.run(label, required)
}

// Line asks for a free-form line; blank answers are allowed.
func (p *Prompter) Line(label string) (string, error) {
	return p.run(label, nil)
}

// RequestProfile asks for a name and teaching interest, showing the reason
// the previous answer was rejected.
func (p *Prompter) RequestProfile(ctx context.Context, previous error) (string, string, error) {
	if previous != nil {
		_, _ = color.New(color.FgRed).Fprintln(p.out(), previous.Error())
	} else {
		_, _ = color.New(color.Faint).Fprintln(p.out(), "Tell the group who you are before posting.")
	}
	name, err := p.Required("Name")
	if err != nil {
		return "", "", err
	}
	interest, err := p.Required("Teaching interest")
	if err != nil {
		return "", "", err
	}
	return name, interest, nil
}

func required(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("required")
	}
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
