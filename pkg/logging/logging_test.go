package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestForPrefersContextLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	ctx := ContextWithLogger(context.Background(), New(&scoped, "debug"))

	For(ctx, New(&base, "debug"), "group", "Create").Info("created")

	if base.Len() != 0 {
		t.Fatalf("base logger should not be used when context carries one: %q", base.String())
	}
	line := scoped.String()
	if !strings.Contains(line, "component=group") || !strings.Contains(line, "operation=Create") {
		t.Fatalf("expected component and operation attrs, got %q", line)
	}
}

func TestForFallsBackToBase(t *testing.T) {
	var base bytes.Buffer
	For(context.Background(), New(&base, "info"), "profile", "").Info("loaded")
	if !strings.Contains(base.String(), "component=profile") {
		t.Fatalf("expected base logger output, got %q", base.String())
	}
	if strings.Contains(base.String(), "operation=") {
		t.Fatalf("empty operation should be omitted, got %q", base.String())
	}
}
