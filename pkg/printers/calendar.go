package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/huddle/pkg/chat"
)

const width = len("11 12 13 14 15 16 17") // an example week

// MeetingMonth prints the month containing then, with days that have a
// meeting in bold and today underlined.
func (pp *PrettyPrint) MeetingMonth(then time.Time, events ...chat.CalendarEvent) {
	count := make([]int, DaysIn(then))
	for _, ev := range events {
		at, err := ev.StartsAt(then.Location())
		if err != nil {
			continue
		}
		if at.Year() == then.Year() && at.Month() == then.Month() {
			count[at.Day()-1]++
		}
	}
	pp.PrintMonthCount(then, count)
}

// maxMonths bounds how far ahead MeetingMonths prints.
const maxMonths = 12

// MeetingMonths prints MeetingMonth for every month from now through the
// month of the latest meeting.
func (pp *PrettyPrint) MeetingMonths(now time.Time, events ...chat.CalendarEvent) {
	last := now
	for _, ev := range events {
		if at, err := ev.StartsAt(now.Location()); err == nil && at.After(last) {
			last = at
		}
	}
	m := now
	for i := 0; i < maxMonths; i++ {
		pp.MeetingMonth(m, events...)
		if m.Year() == last.Year() && m.Month() == last.Month() {
			return
		}
		m = NextMonth(m)
	}
}

// PrintMonthCount prints a month grid, marking days with a non-zero count.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	w := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	now := pp.now().In(then.Location())
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Underline)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if now.Year() == then.Year() && now.Month() == then.Month() && now.Day() == i+1 {
			printer = today
			if i < len(count) && count[i] > 0 {
				printer = color.New(color.Underline, color.Bold)
			}
		}
		_, _ = printer.Fprintf(w, "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
