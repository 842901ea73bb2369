package glyph

import (
	"sort"
	"testing"

	"tableflip.dev/huddle/pkg/chat"
)

func TestForKnownKinds(t *testing.T) {
	for _, kind := range []chat.Kind{chat.KindUser, chat.KindSystem, chat.KindEvent} {
		g := For(kind)
		if g.Kind != kind || g.Symbol == "" || g.Symbol == " " {
			t.Fatalf("%s: unexpected glyph %+v", kind, g)
		}
	}
}

func TestForUnknownKind(t *testing.T) {
	if g := For("reaction"); g.Symbol != " " || g.Meaning != "reaction" {
		t.Fatalf("unexpected glyph for unknown kind %+v", g)
	}
}

func TestByOrder(t *testing.T) {
	gs := DefaultGlyphs()
	gs[0], gs[2] = gs[2], gs[0]
	sort.Sort(ByOrder(gs))
	for i, g := range gs {
		if g.Order != i {
			t.Fatalf("expected order %d at %d, got %+v", i, i, g)
		}
	}
}
