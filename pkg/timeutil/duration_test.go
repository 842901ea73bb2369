package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != time.Hour {
		t.Fatalf("expected 1h, got %v", dur)
	}
	if label != "1h" {
		t.Fatalf("expected label 1h, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1d 2hours30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 26*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1d2h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3fortnights", "0m"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	cases := map[time.Duration]string{
		0:                          "0s",
		-time.Minute:               "0s",
		90 * time.Second:           "1m30s",
		8*24*time.Hour + time.Hour: "1w1d1h",
	}
	for d, want := range cases {
		if got := FormatWindow(d); got != want {
			t.Fatalf("%v: expected %q, got %q", d, want, got)
		}
	}
}
