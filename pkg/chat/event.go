package chat

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate       = "2006-01-02"
	layoutClock      = "15:04"
	layoutClockExact = "15:04:05"
)

// CalendarEvent is a scheduled meeting. It is never mutated once built.
type CalendarEvent struct {
	ID        string `json:"id"`
	Topic     string `json:"topic"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Link      string `json:"link"`
	CreatedAt int64  `json:"createdAt"`
}

// StartsAt resolves the event's date and time in loc.
func (e CalendarEvent) StartsAt(loc *time.Location) (time.Time, error) {
	return ParseMeetingTime(e.Date, e.Time, loc)
}

// ParseMeetingTime combines a YYYY-MM-DD date and an HH:MM[:SS] clock
// into an instant in loc (time.Local when nil).
func ParseMeetingTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	for _, layout := range []string{layoutClock, layoutClockExact} {
		t, err := time.ParseInLocation(layoutDate+" "+layout, date+" "+clock, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("chat: unrecognised date %q or time %q", date, clock)
}
