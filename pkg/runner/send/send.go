// Package send posts a message to the active group.
package send

import (
	"context"
	"io"

	"tableflip.dev/huddle/pkg/printers"
	"tableflip.dev/huddle/pkg/session"
)

type Send struct {
	Session *session.Controller
	// Source is asked for a profile when none is saved. Nil fails instead.
	Source session.ProfileSource
	Text   string
	JSON   bool
	Out    io.Writer
}

func (n *Send) Do(ctx context.Context) error {
	if err := n.Session.Resolve(ctx, n.Source); err != nil {
		return err
	}
	msg, err := n.Session.SendMessage(ctx, n.Text)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]any{"message": msg})
	}
	if msg == nil {
		return nil
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message(*msg)
	return nil
}
