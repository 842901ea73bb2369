// Package meeting builds CalendarEvents with a generated video-meeting link.
// It holds no state; callers decide where events go.
package meeting

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/timeutil"
)

// DefaultBaseURL prefixes every generated meeting link.
const DefaultBaseURL = "https://meet.jit.si/"

const tokenLength = 12

// Scheduler validates meeting requests and mints events.
type Scheduler struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Location interprets date and time; defaults to time.Local.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
	// Token produces the link path segment; defaults to NewToken.
	Token func() string
	// NewID names events; defaults to random UUIDs.
	NewID func() string
}

// Schedule checks that every field is present and that date+time is not in
// the past, then returns an event with a fresh link.
func (s *Scheduler) Schedule(topic, date, clock string) (chat.CalendarEvent, error) {
	if strings.TrimSpace(topic) == "" {
		return chat.CalendarEvent{}, chat.Invalid("topic", "all fields are required")
	}
	if strings.TrimSpace(date) == "" {
		return chat.CalendarEvent{}, chat.Invalid("date", "all fields are required")
	}
	if strings.TrimSpace(clock) == "" {
		return chat.CalendarEvent{}, chat.Invalid("time", "all fields are required")
	}

	start, err := chat.ParseMeetingTime(date, clock, s.location())
	if err != nil {
		return chat.CalendarEvent{}, chat.Invalid("date", "use YYYY-MM-DD and HH:MM")
	}
	now := s.now()
	if start.Before(now) {
		return chat.CalendarEvent{}, chat.Invalid("date", "cannot schedule meetings in the past")
	}

	return chat.CalendarEvent{
		ID:        s.newID(),
		Topic:     topic,
		Date:      strings.TrimSpace(date),
		Time:      strings.TrimSpace(clock),
		Link:      s.Link(),
		CreatedAt: now.UnixMilli(),
	}, nil
}

// Link returns a new meeting URL.
func (s *Scheduler) Link() string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	token := NewToken
	if s.Token != nil {
		token = s.Token
	}
	return base + token()
}

// Slot returns the date and minute-resolution time at least d from now,
// rounded up to the next whole minute.
func (s *Scheduler) Slot(d time.Duration) (date, clock string) {
	start := s.now().In(s.location()).Add(d)
	if rounded := start.Truncate(time.Minute); !rounded.Equal(start) {
		start = rounded.Add(time.Minute)
	}
	return start.Format("2006-01-02"), start.Format("15:04")
}

// When returns date and clock unchanged, or the Slot for in when a
// relative offset such as "2h" is given instead.
func (s *Scheduler) When(date, clock, in string) (string, string, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return date, clock, nil
	}
	if strings.TrimSpace(date) != "" || strings.TrimSpace(clock) != "" {
		return "", "", chat.Invalid("in", "use either a relative start or a date and time")
	}
	d, _, err := timeutil.ParseWindow(in)
	if err != nil {
		return "", "", chat.Invalid("in", err.Error())
	}
	date, clock = s.Slot(d)
	return date, clock, nil
}

// NewToken returns tokenLength lowercase hex characters from a random UUID.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLength]
}

func (s *Scheduler) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Scheduler) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

func (s *Scheduler) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}
