// Package profile owns the single local UserProfile and the gating rule
// that keeps anyone without one from posting.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/logging"
	"tableflip.dev/huddle/pkg/store"
)

// Key is where the profile lives in the store.
const Key = "userProfile"

// Gate is the outcome of the profile precondition check.
type Gate int

const (
	// NeedsProfile blocks mutating actions until a profile is saved.
	NeedsProfile Gate = iota
	// Ready means a profile exists and messaging may proceed.
	Ready
)

func (g Gate) String() string {
	switch g {
	case Ready:
		return "ready"
	case NeedsProfile:
		return "needs_profile"
	default:
		return "unknown"
	}
}

// GateFor reports whether p satisfies the profile precondition.
func GateFor(p *chat.UserProfile) Gate {
	if p == nil {
		return NeedsProfile
	}
	return Ready
}

// Manager loads and saves the profile.
type Manager struct {
	Store  store.Store
	Logger *slog.Logger
}

// NewManager returns a Manager over s.
func NewManager(s store.Store, logger *slog.Logger) *Manager {
	return &Manager{Store: s, Logger: logger}
}

// Load returns the saved profile, or nil when none was ever saved. A
// corrupt stored profile is logged and reported as absent.
func (m *Manager) Load(ctx context.Context) (*chat.UserProfile, error) {
	if m.Store == nil {
		return nil, errors.New("profile: no store configured")
	}
	p, found, err := store.Get[chat.UserProfile](m.Store, Key)
	if err != nil {
		var rErr *store.ReadError
		if errors.As(err, &rErr) {
			logging.For(ctx, m.Logger, "profile", "Load").WarnContext(ctx, "ignoring unreadable profile", "error", err)
			return nil, nil
		}
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

// Save validates and persists a profile, replacing any previous one.
func (m *Manager) Save(ctx context.Context, name, teachingInterest string) (*chat.UserProfile, error) {
	if m.Store == nil {
		return nil, errors.New("profile: no store configured")
	}
	logger := logging.For(ctx, m.Logger, "profile", "Save")

	p := chat.UserProfile{
		Name:             strings.TrimSpace(name),
		TeachingInterest: strings.TrimSpace(teachingInterest),
	}
	if p.Name == "" {
		err := chat.Invalid("name", "please fill in all fields")
		logger.DebugContext(ctx, "rejected profile", "error", err)
		return nil, err
	}
	if p.TeachingInterest == "" {
		err := chat.Invalid("teachingInterest", "please fill in all fields")
		logger.DebugContext(ctx, "rejected profile", "error", err)
		return nil, err
	}

	if err := store.Put(m.Store, Key, p); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "profile saved", "name", p.Name)
	return &p, nil
}
