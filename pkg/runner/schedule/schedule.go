// Package schedule books a meeting and announces it on the active group.
package schedule

import (
	"context"
	"io"

	"tableflip.dev/huddle/pkg/meeting"
	"tableflip.dev/huddle/pkg/printers"
	"tableflip.dev/huddle/pkg/session"
)

type Schedule struct {
	Session   *session.Controller
	Scheduler *meeting.Scheduler
	Source    session.ProfileSource

	Topic string
	Date  string
	Time  string
	// In is a relative start such as "2h", used instead of Date and Time.
	In string

	JSON bool
	Out  io.Writer
}

func (n *Schedule) Do(ctx context.Context) error {
	sched := n.Scheduler
	if sched == nil {
		sched = &meeting.Scheduler{}
	}
	date, clock, err := sched.When(n.Date, n.Time, n.In)
	if err != nil {
		return err
	}
	if err := n.Session.Resolve(ctx, n.Source); err != nil {
		return err
	}
	ev, msg, err := n.Session.ScheduleMeeting(ctx, n.Topic, date, clock)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"meeting":      ev,
			"announcement": msg,
		})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message(*msg)
	pp.NewLine()
	pp.Meetings(ev)
	return nil
}
