// Package profile shows and saves the local user's profile.
package profile

import (
	"context"
	"io"

	"tableflip.dev/huddle/pkg/printers"
	"tableflip.dev/huddle/pkg/session"
)

// Show prints the saved profile.
type Show struct {
	Session *session.Controller
	JSON    bool
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	p := n.Session.Profile()
	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"profile": p,
			"gate":    n.Session.Gate().String(),
		})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Profile(p)
	return nil
}

// Set saves a profile, replacing any saved one. A group waiting on a
// profile becomes active.
type Set struct {
	Session *session.Controller
	// Source is asked for both fields when neither is given.
	Source           session.ProfileSource
	Name             string
	TeachingInterest string
	JSON             bool
	Out              io.Writer
}

func (n *Set) Do(ctx context.Context) error {
	name, interest := n.Name, n.TeachingInterest
	if name == "" && interest == "" && n.Source != nil {
		var err error
		if name, interest, err = n.Source.RequestProfile(ctx, nil); err != nil {
			return err
		}
	}
	p, err := n.Session.SaveProfile(ctx, name, interest)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, p)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Profile(p)
	if g := n.Session.ActiveGroup(); g != nil {
		pp.NewLine()
		pp.Group(g)
	}
	return nil
}
