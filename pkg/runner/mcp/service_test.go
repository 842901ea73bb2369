package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/group"
	"tableflip.dev/huddle/pkg/meeting"
	"tableflip.dev/huddle/pkg/profile"
	"tableflip.dev/huddle/pkg/session"
	"tableflip.dev/huddle/pkg/store"
)

var reference = time.Date(2030, time.June, 15, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s := store.NewMemory()
	now := func() time.Time { return reference }

	groups := group.NewSession(s, nil)
	groups.Now = now
	sched := &meeting.Scheduler{
		BaseURL:  "https://meet.example/",
		Location: time.UTC,
		Now:      now,
		Token:    func() string { return "abc" },
	}
	c := session.New(profile.NewManager(s, nil), groups, sched, nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return NewService(c, sched)
}

func TestServiceRequiresSession(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Group(context.Background()); err == nil {
		t.Fatalf("expected error without a session")
	}
}

func TestServiceGatesOnProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	res, err := svc.CreateGroup(ctx, "Study", "", 4)
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if res.Gate != "needs_profile" {
		t.Fatalf("expected needs_profile gate, got %s", res.Gate)
	}

	g, err := svc.Group(ctx)
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	if g.Name != "Study" || len(g.Messages) != 0 {
		t.Fatalf("expected pending group without messages, got %+v", g)
	}

	_, err = svc.SendMessage(ctx, "Hello")
	if !errors.Is(err, session.ErrNeedsProfile) {
		t.Fatalf("expected ErrNeedsProfile, got %v", err)
	}
	if !strings.Contains(err.Error(), "save_profile") {
		t.Fatalf("expected a hint, got %v", err)
	}
}

func TestServiceScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.SaveProfile(ctx, "Ada", "Calculus"); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	res, err := svc.CreateGroup(ctx, "Study", "", 4)
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if res.Gate != "ready" {
		t.Fatalf("expected ready gate, got %s", res.Gate)
	}

	msg, err := svc.SendMessage(ctx, "Hello")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Username != "Ada" || !msg.IsSelf {
		t.Fatalf("unexpected message %+v", msg)
	}

	mt, err := svc.ScheduleMeeting(ctx, ScheduleOptions{Topic: "Calculus", In: "1d"})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if mt.Meeting.Date != "2030-06-16" || mt.Meeting.Time != "09:30" {
		t.Fatalf("unexpected slot %s %s", mt.Meeting.Date, mt.Meeting.Time)
	}
	want := "Ada wants to teach you about Calculus, join here: https://meet.example/abc"
	if mt.Announcement == nil || mt.Announcement.Text != want {
		t.Fatalf("unexpected announcement %+v", mt.Announcement)
	}

	g, err := svc.Group(ctx)
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	kinds := []chat.Kind{chat.KindSystem, chat.KindUser, chat.KindEvent}
	if len(g.Messages) != len(kinds) {
		t.Fatalf("expected %d messages, got %d", len(kinds), len(g.Messages))
	}
	for i, k := range kinds {
		if g.Messages[i].Kind != k {
			t.Fatalf("message %d: expected %s, got %s", i, k, g.Messages[i].Kind)
		}
	}

	meetings, err := svc.Meetings(ctx)
	if err != nil {
		t.Fatalf("meetings: %v", err)
	}
	if len(meetings) != 1 || meetings[0].Topic != "Calculus" {
		t.Fatalf("unexpected meetings %+v", meetings)
	}
}

func TestServiceScheduleRejectsMixedInputs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.SaveProfile(ctx, "Ada", "Calculus"); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if _, err := svc.CreateGroup(ctx, "Study", "", 4); err != nil {
		t.Fatalf("create group: %v", err)
	}

	_, err := svc.ScheduleMeeting(ctx, ScheduleOptions{Topic: "x", Date: "2030-06-16", In: "1h"})
	if !chat.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.ScheduleMeeting(ctx, ScheduleOptions{Topic: "x", In: "soon"})
	if !chat.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.ScheduleMeeting(ctx, ScheduleOptions{Topic: "x", Date: "2030-06-14", Time: "10:00"})
	if !chat.IsValidation(err) {
		t.Fatalf("expected validation error for past date, got %v", err)
	}
}

func TestServiceGroupWithoutAny(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Group(context.Background())
	if !errors.Is(err, session.ErrNoActiveGroup) {
		t.Fatalf("expected ErrNoActiveGroup, got %v", err)
	}
}

func TestCheckLoopback(t *testing.T) {
	for addr, ok := range map[string]bool{
		"127.0.0.1:8080": true,
		"[::1]:0":        true,
		"localhost:9000": true,
		"0.0.0.0:8080":   false,
		"10.0.0.4:8080":  false,
		"nonsense":       false,
	} {
		err := checkLoopback(addr)
		if ok && err != nil {
			t.Fatalf("%s: unexpected error %v", addr, err)
		}
		if !ok && err == nil {
			t.Fatalf("%s: expected error", addr)
		}
	}
}
