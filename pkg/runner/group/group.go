// Package group creates and shows the study group.
package group

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/huddle/pkg/printers"
	"tableflip.dev/huddle/pkg/profile"
	"tableflip.dev/huddle/pkg/session"
)

// Create replaces the stored group with a new one and activates it. When
// Source is set and no profile exists, it is asked for one.
type Create struct {
	Session     *session.Controller
	Source      session.ProfileSource
	Name        string
	Description string
	Limit       int
	JSON        bool
	Out         io.Writer
}

func (n *Create) Do(ctx context.Context) error {
	g, gate, err := n.Session.CreateGroup(ctx, n.Name, n.Description, n.Limit)
	if err != nil {
		return err
	}
	if gate == profile.NeedsProfile && n.Source != nil {
		if err := n.Session.Resolve(ctx, n.Source); err != nil {
			return err
		}
		gate = n.Session.Gate()
	}
	if active := n.Session.ActiveGroup(); active != nil {
		g = active
	}

	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"group": g,
			"gate":  gate.String(),
		})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Group(g)
	if gate == profile.NeedsProfile {
		_, _ = color.New(color.FgYellow).Fprintln(out(n.Out), "save a profile with `huddle profile set` to join the group")
	}
	return nil
}

// Show prints the stored group and its timeline.
type Show struct {
	Session *session.Controller
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	g := n.Session.ActiveGroup()
	if g == nil {
		g = n.Session.PendingGroup()
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"group": g,
			"gate":  n.Session.Gate().String(),
		})
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.Group(g)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
