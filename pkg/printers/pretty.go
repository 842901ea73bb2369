package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/glyph"
	"tableflip.dev/huddle/pkg/timeutil"
)

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Now is used for the "starts in" column. Defaults to time.Now.
	Now func() time.Time
}

var (
	spacing = strings.Repeat(" ", len("1718035200000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now == nil {
		return time.Now()
	}
	return pp.Now()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Profile prints the saved profile, or a hint when there is none.
func (pp *PrettyPrint) Profile(p *chat.UserProfile) {
	if p == nil {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "no profile saved, run `huddle profile set`")
		return
	}
	b := color.New(color.Bold)
	_, _ = b.Fprint(pp.out(), p.Name)
	_, _ = fmt.Fprintf(pp.out(), " teaches %s\n", p.TeachingInterest)
}

// Group prints the group summary followed by its timeline.
func (pp *PrettyPrint) Group(g *chat.Group) {
	if g == nil {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "no group yet, run `huddle group create`")
		return
	}
	pp.Title(g.Name)
	f := color.New(color.Faint)
	if g.Description != "" {
		_, _ = f.Fprintln(pp.out(), g.Description)
	}
	_, _ = f.Fprintf(pp.out(), "up to %d members\n\n", g.Limit)
	pp.Timeline(g.Messages...)
}

// Timeline prints messages in stored order.
func (pp *PrettyPrint) Timeline(msgs ...chat.Message) {
	if len(msgs) == 0 {
		pp.none()
		return
	}
	for _, m := range msgs {
		pp.Message(m)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Message prints a single timeline line.
func (pp *PrettyPrint) Message(m chat.Message) {
	w := pp.out()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowID {
		id := m.ID
		if len(id) > len(spacing)-1 {
			id = id[:len(spacing)-1]
		}
		_, _ = y.Fprint(w, id)
		_, _ = y.Fprint(w, strings.Repeat(" ", len(spacing)-len(id)))
	}
	_, _ = fmt.Fprintf(w, "%s ", glyph.For(m.Kind))
	_, _ = f.Fprintf(w, "%s ", m.Time().Local().Format("15:04"))

	switch m.Kind {
	case chat.KindUser:
		name := color.New(color.Bold)
		if m.IsSelf {
			name = color.New(color.Bold, color.FgCyan)
		}
		_, _ = name.Fprintf(w, "%s: ", m.Username)
		_, _ = fmt.Fprintln(w, highlightLinks(m.Text, m.Links()))
	case chat.KindEvent:
		_, _ = fmt.Fprintln(w, highlightLinks(m.Text, m.Links()))
	default:
		_, _ = color.New(color.Italic).Fprintln(w, m.Text)
	}
}

// Meetings prints the scheduled meetings as a table, oldest first.
func (pp *PrettyPrint) Meetings(events ...chat.CalendarEvent) {
	if len(events) == 0 {
		pp.none()
		return
	}
	now := pp.now()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(glyph.Bold("topic"), glyph.Bold("when"), glyph.Bold("starts in"), glyph.Bold("link"))
	for _, ev := range events {
		startsIn := "?"
		if at, err := ev.StartsAt(now.Location()); err == nil {
			if d := at.Sub(now); d > 0 {
				startsIn = timeutil.FormatWindow(d.Truncate(time.Minute))
			} else {
				startsIn = "started"
			}
		}
		tbl.AddRow(ev.Topic, ev.Date+" "+ev.Time, startsIn, ev.Link)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

func highlightLinks(text string, links []string) string {
	if len(links) == 0 {
		return text
	}
	u := color.New(color.Underline, color.FgBlue)
	var b strings.Builder
	rest := text
	for _, l := range links {
		i := strings.Index(rest, l)
		b.WriteString(rest[:i])
		b.WriteString(u.Sprint(l))
		rest = rest[i+len(l):]
	}
	b.WriteString(rest)
	return b.String()
}
