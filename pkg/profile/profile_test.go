package profile

import (
	"context"
	"testing"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/store"
)

func TestLoadAbsent(t *testing.T) {
	m := NewManager(store.NewMemory(), nil)
	p, err := m.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("expected no profile, got %+v", p)
	}
	if GateFor(p) != NeedsProfile {
		t.Fatalf("expected NeedsProfile gate")
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	m := NewManager(s, nil)

	saved, err := m.Save(ctx, "  Ada ", "Algorithms")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Name != "Ada" || saved.TeachingInterest != "Algorithms" {
		t.Fatalf("unexpected saved profile %+v", saved)
	}

	loaded, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil || *loaded != *saved {
		t.Fatalf("expected %+v, got %+v", saved, loaded)
	}
	if GateFor(loaded) != Ready {
		t.Fatalf("expected Ready gate")
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory(), nil)
	if _, err := m.Save(ctx, "Ada", "Algorithms"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := m.Save(ctx, "Grace", "Compilers"); err != nil {
		t.Fatalf("save: %v", err)
	}
	p, _ := m.Load(ctx)
	if p.Name != "Grace" || p.TeachingInterest != "Compilers" {
		t.Fatalf("expected overwritten profile, got %+v", p)
	}
}

func TestSaveIdempotent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	m := NewManager(s, nil)
	if _, err := m.Save(ctx, "Ada", "Algorithms"); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, _ := s.Read(Key)
	if _, err := m.Save(ctx, "Ada", "Algorithms"); err != nil {
		t.Fatalf("save: %v", err)
	}
	second, _ := s.Read(Key)
	if string(first) != string(second) {
		t.Fatalf("expected identical persisted state, got %s then %s", first, second)
	}
}

func TestSaveValidation(t *testing.T) {
	cases := []struct{ name, interest string }{
		{"", "Algorithms"},
		{"   ", "Algorithms"},
		{"Ada", ""},
		{"Ada", "\t\n"},
	}
	for _, tc := range cases {
		s := store.NewMemory()
		m := NewManager(s, nil)
		_, err := m.Save(context.Background(), tc.name, tc.interest)
		if !chat.IsValidation(err) {
			t.Fatalf("%q/%q: expected validation error, got %v", tc.name, tc.interest, err)
		}
		if _, found, _ := store.Get[chat.UserProfile](s, Key); found {
			t.Fatalf("%q/%q: nothing should be persisted on validation failure", tc.name, tc.interest)
		}
	}
}

func TestLoadCorruptProfileIsAbsent(t *testing.T) {
	s := store.NewMemory()
	if err := s.Write(Key, []byte("{oops")); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := NewManager(s, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt profile should not surface an error, got %v", err)
	}
	if p != nil {
		t.Fatalf("expected absent profile, got %+v", p)
	}
}

func TestGateString(t *testing.T) {
	if Ready.String() != "ready" || NeedsProfile.String() != "needs_profile" {
		t.Fatalf("unexpected gate strings %q %q", Ready, NeedsProfile)
	}
}
