package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/meeting"
	"tableflip.dev/huddle/pkg/session"
	"tableflip.dev/huddle/pkg/store"
)

var reference = time.Date(2030, time.June, 15, 9, 30, 0, 0, time.UTC)

func newSession(t *testing.T) (*session.Controller, *meeting.Scheduler) {
	t.Helper()
	sched := &meeting.Scheduler{
		Location: time.UTC,
		Now:      func() time.Time { return reference },
		Token:    func() string { return "tok" },
	}
	c := session.NewForStore(store.NewMemory(), sched, nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return c, sched
}

func TestScheduleAsksForProfile(t *testing.T) {
	ctx := context.Background()
	c, sched := newSession(t)
	if _, _, err := c.CreateGroup(ctx, "Study", "", 3); err != nil {
		t.Fatalf("create group: %v", err)
	}

	asked := 0
	src := session.ProfileSourceFunc(func(context.Context, error) (string, string, error) {
		asked++
		return "Ada", "Calculus", nil
	})

	buf := &bytes.Buffer{}
	n := &Schedule{Session: c, Scheduler: sched, Source: src, Topic: "Calculus", In: "90m", JSON: true, Out: buf}
	if err := n.Do(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asked != 1 {
		t.Fatalf("expected one profile request, got %d", asked)
	}

	var got struct {
		Meeting      chat.CalendarEvent `json:"meeting"`
		Announcement chat.Message       `json:"announcement"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Meeting.Date != "2030-06-15" || got.Meeting.Time != "11:00" {
		t.Fatalf("unexpected slot %+v", got.Meeting)
	}
	if got.Announcement.Kind != chat.KindEvent || got.Announcement.Username != "Ada" {
		t.Fatalf("unexpected announcement %+v", got.Announcement)
	}
}

func TestScheduleWithoutSourceNeedsProfile(t *testing.T) {
	ctx := context.Background()
	c, sched := newSession(t)
	n := &Schedule{Session: c, Scheduler: sched, Topic: "Calculus", Date: "2030-06-16", Time: "10:00", Out: &bytes.Buffer{}}
	if err := n.Do(ctx); !errors.Is(err, session.ErrNeedsProfile) {
		t.Fatalf("expected ErrNeedsProfile, got %v", err)
	}
}

func TestScheduleRejectsBadOffsetBeforeAsking(t *testing.T) {
	ctx := context.Background()
	c, sched := newSession(t)
	src := session.ProfileSourceFunc(func(context.Context, error) (string, string, error) {
		t.Fatalf("profile should not be requested")
		return "", "", nil
	})
	n := &Schedule{Session: c, Scheduler: sched, Source: src, Topic: "Calculus", In: "whenever", Out: &bytes.Buffer{}}
	if err := n.Do(ctx); !chat.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
