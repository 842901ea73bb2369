package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestKeyListsEveryKind(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	if err := (&Key{Out: buf}).Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"●", "message", "○", "system notice", "◷", "meeting announcement"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in legend:\n%s", want, out)
		}
	}
	if strings.Index(out, "system notice") > strings.Index(out, "meeting announcement") {
		t.Fatalf("expected display order:\n%s", out)
	}
}
