// Package chat runs the interactive group chat loop.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"

	hchat "tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/group"
	"tableflip.dev/huddle/pkg/logging"
	"tableflip.dev/huddle/pkg/meeting"
	"tableflip.dev/huddle/pkg/printers"
	"tableflip.dev/huddle/pkg/prompt"
	"tableflip.dev/huddle/pkg/session"
	"tableflip.dev/huddle/pkg/store"
	"tableflip.dev/huddle/pkg/timeutil"
)

// ErrUnknownCommand is returned for slash commands the loop does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Input is the line source for the loop.
type Input interface {
	session.ProfileSource
	Line(label string) (string, error)
	Required(label string) (string, error)
}

// GroupLoader reads the stored group, bypassing the session's copy.
type GroupLoader interface {
	Load(ctx context.Context) (*hchat.Group, error)
}

// Chat reads lines from Input, posting plain text as messages and running
// slash commands.
type Chat struct {
	Session   *session.Controller
	Scheduler *meeting.Scheduler
	Input     Input
	// Watcher and Stored are optional; together they report writes made
	// by another huddle process.
	Watcher store.Watcher
	Stored  GroupLoader
	Logger  *slog.Logger
	Out     io.Writer
	Now     func() time.Time

	changed atomic.Bool
}

const help = `/schedule [in <offset>] [topic]
                        schedule a meeting, e.g. /schedule in 2h Calculus
/meets                  list meetings scheduled in this session
/group                  show the group and its timeline
/reload                 reload the profile and group from the store
/help                   show this help
/quit                   leave
//text                  post text that starts with a slash`

func (n *Chat) Do(ctx context.Context) error {
	if err := n.Session.Resolve(ctx, n.Input); err != nil {
		return err
	}
	if n.Session.ActiveGroup() == nil {
		return fmt.Errorf("%w: run `huddle group create` first", session.ErrNoActiveGroup)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	n.watch(ctx)

	pp := n.printer()
	pp.Group(n.Session.ActiveGroup())
	_, _ = color.New(color.Faint).Fprintln(n.out(), "type /help for commands")

	for {
		n.warnIfChanged(ctx)
		line, err := n.Input.Line(">")
		if errors.Is(err, prompt.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		quit, err := n.Handle(ctx, line)
		if err != nil {
			if !reportable(err) {
				return err
			}
			_, _ = color.New(color.FgRed).Fprintln(n.out(), err.Error())
		}
		if quit {
			return nil
		}
	}
}

// Handle runs one line of input and reports whether the loop should end.
func (n *Chat) Handle(ctx context.Context, line string) (bool, error) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "//") {
		return false, n.send(ctx, trimmed[1:])
	}
	if !strings.HasPrefix(trimmed, "/") {
		return false, n.send(ctx, line)
	}

	fields := strings.Fields(trimmed)
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "/quit", "/exit":
		return true, nil
	case "/help":
		_, _ = fmt.Fprintln(n.out(), help)
	case "/meets":
		pp := n.printer()
		meetings := n.Session.Meetings()
		pp.Title("Scheduled meetings")
		pp.Meetings(meetings...)
		if len(meetings) > 0 {
			pp.MeetingMonths(n.now(), meetings...)
		}
	case "/group":
		n.printer().Group(n.Session.ActiveGroup())
	case "/reload":
		if err := n.Session.Start(ctx); err != nil {
			return false, err
		}
		n.changed.Store(false)
		n.printer().Group(n.Session.ActiveGroup())
	case "/schedule":
		return false, n.schedule(ctx, args)
	default:
		return false, fmt.Errorf("%w %s, try /help", ErrUnknownCommand, cmd)
	}
	return false, nil
}

func (n *Chat) send(ctx context.Context, text string) error {
	msg, err := n.Session.SendMessage(ctx, text)
	if err != nil || msg == nil {
		return err
	}
	n.printer().Message(*msg)
	return nil
}

// schedule takes an optional "in <offset>" prefix; anything else is topic.
func (n *Chat) schedule(ctx context.Context, args []string) error {
	var topic, date, clock, in string
	if len(args) > 1 && args[0] == "in" {
		if _, _, err := timeutil.ParseWindow(args[1]); err == nil {
			in, args = args[1], args[2:]
		}
	}
	topic = strings.Join(args, " ")
	var err error
	if topic == "" {
		if topic, err = n.Input.Required("Topic"); err != nil {
			return err
		}
	}
	if in == "" {
		if date, err = n.Input.Required("Date (YYYY-MM-DD)"); err != nil {
			return err
		}
		if clock, err = n.Input.Required("Time (HH:MM)"); err != nil {
			return err
		}
	}
	date, clock, err = n.scheduler().When(date, clock, in)
	if err != nil {
		return err
	}
	_, msg, err := n.Session.ScheduleMeeting(ctx, topic, date, clock)
	if err != nil {
		return err
	}
	n.printer().Message(*msg)
	return nil
}

// watch flags writes to the group key; warnIfChanged compares them with
// the session's copy before the next prompt.
func (n *Chat) watch(ctx context.Context) {
	if n.Watcher == nil || n.Stored == nil {
		return
	}
	events, err := n.Watcher.Watch(ctx)
	if err != nil {
		logging.For(ctx, n.Logger, "chat", "watch").WarnContext(ctx, "cannot watch store", "error", err)
		return
	}
	go func() {
		for ev := range events {
			if ev.Key == group.Key {
				n.changed.Store(true)
			}
		}
	}()
}

func (n *Chat) warnIfChanged(ctx context.Context) {
	if !n.changed.Swap(false) {
		return
	}
	stored, err := n.Stored.Load(ctx)
	if err != nil {
		return
	}
	if !Diverged(n.Session.ActiveGroup(), stored) {
		return
	}
	_, _ = color.New(color.FgYellow).Fprintln(n.out(), "the group was changed by another huddle, /reload to see it")
}

// Diverged reports whether the stored group differs from the session's.
// Groups only grow, so id and length are enough.
func Diverged(active, stored *hchat.Group) bool {
	if active == nil || stored == nil {
		return active != stored
	}
	return active.ID != stored.ID || len(active.Messages) != len(stored.Messages)
}

func reportable(err error) bool {
	return hchat.IsValidation(err) ||
		errors.Is(err, session.ErrNeedsProfile) ||
		errors.Is(err, session.ErrNoActiveGroup) ||
		errors.Is(err, ErrUnknownCommand)
}

func (n *Chat) printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: n.Out, Now: n.Now}
}

func (n *Chat) scheduler() *meeting.Scheduler {
	if n.Scheduler == nil {
		return &meeting.Scheduler{}
	}
	return n.Scheduler
}

func (n *Chat) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n *Chat) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
