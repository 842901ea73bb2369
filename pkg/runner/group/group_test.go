package group

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/huddle/pkg/session"
	"tableflip.dev/huddle/pkg/store"
)

func newSession(t *testing.T) *session.Controller {
	t.Helper()
	c := session.NewForStore(store.NewMemory(), nil, nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return c
}

func TestCreateWithoutProfileHints(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	n := &Create{Session: newSession(t), Name: "Study", Limit: 3, Out: buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Study") || !strings.Contains(out, "huddle profile set") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCreateResolvesProfile(t *testing.T) {
	color.NoColor = true
	c := newSession(t)
	buf := &bytes.Buffer{}
	src := session.ProfileSourceFunc(func(context.Context, error) (string, string, error) {
		return "Ada", "Calculus", nil
	})
	n := &Create{Session: c, Source: src, Name: "Study", Limit: 3, Out: buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Ada has joined the group!") {
		t.Fatalf("expected welcome in output:\n%s", buf.String())
	}
	if c.ActiveGroup() == nil {
		t.Fatalf("expected an active group")
	}
}

func TestShowNothing(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	n := &Show{Session: newSession(t), Out: buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "no group yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
