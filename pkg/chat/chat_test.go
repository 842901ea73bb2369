package chat

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestLinksKeepsURLsVerbatim(t *testing.T) {
	text := "Ada wants to teach you about Calculus, join here: https://meet.jit.si/abc123xyz"
	links := Links(text)
	if len(links) != 1 {
		t.Fatalf("expected one link, got %v", links)
	}
	if links[0] != "https://meet.jit.si/abc123xyz" {
		t.Fatalf("unexpected link %q", links[0])
	}
}

func TestLinksNone(t *testing.T) {
	if links := Links("no urls here, just meet.jit.si"); len(links) != 0 {
		t.Fatalf("expected no links, got %v", links)
	}
}

func TestParseMeetingTime(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	cases := []struct {
		date, clock string
		want        time.Time
	}{
		{"2030-05-01", "10:00", time.Date(2030, 5, 1, 10, 0, 0, 0, loc)},
		{"2030-05-01", "10:00:30", time.Date(2030, 5, 1, 10, 0, 30, 0, loc)},
		{" 2030-05-01 ", " 23:59 ", time.Date(2030, 5, 1, 23, 59, 0, 0, loc)},
	}
	for _, tc := range cases {
		got, err := ParseMeetingTime(tc.date, tc.clock, loc)
		if err != nil {
			t.Fatalf("%s %s: unexpected error: %v", tc.date, tc.clock, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%s %s: expected %v, got %v", tc.date, tc.clock, tc.want, got)
		}
	}

	if _, err := ParseMeetingTime("tomorrow", "10:00", loc); err == nil {
		t.Fatalf("expected error for unparsable date")
	}
}

func TestGroupCloneIsIndependent(t *testing.T) {
	g := &Group{ID: "1", Name: "Study", Limit: 3, Messages: []Message{{ID: "m1", Text: "hi", Kind: KindUser}}}
	cp := g.Clone()
	cp.Messages[0].Text = "changed"
	cp.Messages = append(cp.Messages, Message{ID: "m2"})
	if g.Messages[0].Text != "hi" || len(g.Messages) != 1 {
		t.Fatalf("clone shares storage with original: %+v", g.Messages)
	}
}

func TestIsValidationUnwraps(t *testing.T) {
	err := fmt.Errorf("create: %w", Invalid("limit", "group limit must be between 2 and 15"))
	if !IsValidation(err) {
		t.Fatalf("expected wrapped validation error to be detected")
	}
	if IsValidation(errors.New("disk full")) {
		t.Fatalf("plain error reported as validation")
	}
}
