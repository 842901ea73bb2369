package send

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/huddle/pkg/session"
	"tableflip.dev/huddle/pkg/store"
)

func newSession(t *testing.T) *session.Controller {
	t.Helper()
	ctx := context.Background()
	c := session.NewForStore(store.NewMemory(), nil, nil)
	if err := c.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := c.SaveProfile(ctx, "Ada", "Calculus"); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if _, _, err := c.CreateGroup(ctx, "Study", "", 4); err != nil {
		t.Fatalf("create group: %v", err)
	}
	return c
}

func TestSendBlankJSON(t *testing.T) {
	c := newSession(t)
	before := len(c.Messages())
	buf := &bytes.Buffer{}
	n := &Send{Session: c, Text: "   ", JSON: true, Out: buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "{\n  \"message\": null\n}" {
		t.Fatalf("unexpected output %q", got)
	}
	if len(c.Messages()) != before {
		t.Fatalf("expected no new messages")
	}
}

func TestSendPrints(t *testing.T) {
	color.NoColor = true
	c := newSession(t)
	buf := &bytes.Buffer{}
	n := &Send{Session: c, Text: "Hello", Out: buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Ada: Hello") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestSendNeedsProfile(t *testing.T) {
	c := session.NewForStore(store.NewMemory(), nil, nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	n := &Send{Session: c, Text: "Hello", Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); !errors.Is(err, session.ErrNeedsProfile) {
		t.Fatalf("expected ErrNeedsProfile, got %v", err)
	}
}
