// Package group owns the active Group and every append to its timeline.
//
// The persisted "groups" key holds an array of groups. Create replaces it
// with a singleton holding the new group; appends upsert the group by id
// and leave any other element untouched.
package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/logging"
	"tableflip.dev/huddle/pkg/store"
)

// Key is where the group collection lives in the store.
const Key = "groups"

// Member limit bounds, inclusive.
const (
	MinLimit = 2
	MaxLimit = 15
)

// Session creates groups and appends messages to them, persisting each
// change before it returns.
type Session struct {
	Store  store.Store
	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
	// NewID names messages; defaults to random UUIDs.
	NewID func() string
}

// NewSession returns a Session over s using the real clock and UUIDs.
func NewSession(s store.Store, logger *slog.Logger) *Session {
	return &Session{Store: s, Logger: logger}
}

func (s *Session) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Session) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}

// Create validates input and persists a new group as the only stored one.
func (s *Session) Create(ctx context.Context, name, description string, limit int) (*chat.Group, error) {
	if s.Store == nil {
		return nil, errors.New("group: no store configured")
	}
	logger := logging.For(ctx, s.Logger, "group", "Create")

	name = strings.TrimSpace(name)
	if name == "" {
		err := chat.Invalid("name", "group name is required")
		logger.DebugContext(ctx, "rejected group", "error", err)
		return nil, err
	}
	if limit < MinLimit || limit > MaxLimit {
		err := chat.Invalid("limit", fmt.Sprintf("group limit must be between %d and %d", MinLimit, MaxLimit))
		logger.DebugContext(ctx, "rejected group", "error", err, "limit", limit)
		return nil, err
	}

	g := &chat.Group{
		ID:          strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:        name,
		Description: description,
		Limit:       limit,
		Messages:    []chat.Message{},
	}
	if err := store.Put(s.Store, Key, []chat.Group{*g}); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "group created", "group_id", g.ID, "limit", g.Limit)
	return g, nil
}

// Load returns the most recently stored group, or nil when there is none.
func (s *Session) Load(ctx context.Context) (*chat.Group, error) {
	groups, err := s.stored(ctx, "Load")
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}
	g := groups[len(groups)-1]
	if g.Messages == nil {
		g.Messages = []chat.Message{}
	}
	return &g, nil
}

// EnsureWelcome posts the join notice for p on a group with no messages.
// On a non-empty timeline, or without a profile, it does nothing and
// returns nil.
func (s *Session) EnsureWelcome(ctx context.Context, g *chat.Group, p *chat.UserProfile) (*chat.Message, error) {
	if g == nil {
		return nil, errors.New("group: no group")
	}
	if p == nil || len(g.Messages) > 0 {
		return nil, nil
	}
	msg := chat.Message{
		ID:        s.newID(),
		Text:      WelcomeText(p.Name),
		Timestamp: s.now().UnixMilli(),
		Kind:      chat.KindSystem,
	}
	return s.append(ctx, "EnsureWelcome", g, msg)
}

// AppendUserMessage posts text as p. Whitespace-only text or a missing
// profile is a no-op returning nil.
func (s *Session) AppendUserMessage(ctx context.Context, g *chat.Group, p *chat.UserProfile, text string) (*chat.Message, error) {
	if g == nil {
		return nil, errors.New("group: no group")
	}
	if p == nil || strings.TrimSpace(text) == "" {
		return nil, nil
	}
	msg := chat.Message{
		ID:        s.newID(),
		Text:      text,
		Timestamp: s.now().UnixMilli(),
		Kind:      chat.KindUser,
		Username:  p.Name,
		IsSelf:    true,
	}
	return s.append(ctx, "AppendUserMessage", g, msg)
}

// AppendEventNarration announces ev on the timeline, link included verbatim.
func (s *Session) AppendEventNarration(ctx context.Context, g *chat.Group, p *chat.UserProfile, ev chat.CalendarEvent) (*chat.Message, error) {
	if g == nil {
		return nil, errors.New("group: no group")
	}
	if p == nil {
		return nil, errors.New("group: narration needs a profile")
	}
	msg := chat.Message{
		ID:        s.newID(),
		Text:      NarrationText(p.Name, ev),
		Timestamp: s.now().UnixMilli(),
		Kind:      chat.KindEvent,
		Username:  p.Name,
		IsSelf:    true,
	}
	return s.append(ctx, "AppendEventNarration", g, msg)
}

// WelcomeText is the system notice posted when name joins.
func WelcomeText(name string) string {
	return fmt.Sprintf("%s has joined the group!", name)
}

// NarrationText is the event message announcing ev on behalf of name.
func NarrationText(name string, ev chat.CalendarEvent) string {
	return fmt.Sprintf("%s wants to teach you about %s, join here: %s", name, ev.Topic, ev.Link)
}

// append adds msg to g and persists; g is left unchanged when the write fails.
func (s *Session) append(ctx context.Context, op string, g *chat.Group, msg chat.Message) (*chat.Message, error) {
	if s.Store == nil {
		return nil, errors.New("group: no store configured")
	}
	n := len(g.Messages)
	g.Messages = append(g.Messages, msg)
	if err := s.persist(ctx, op, g); err != nil {
		g.Messages = g.Messages[:n:n]
		return nil, err
	}
	logging.For(ctx, s.Logger, "group", op).DebugContext(ctx, "message appended",
		"group_id", g.ID, "kind", msg.Kind, "count", len(g.Messages))
	return &msg, nil
}

func (s *Session) persist(ctx context.Context, op string, g *chat.Group) error {
	groups, err := s.stored(ctx, op)
	if err != nil {
		return err
	}
	replaced := false
	for i := range groups {
		if groups[i].ID == g.ID {
			groups[i] = *g
			replaced = true
		}
	}
	if !replaced {
		groups = append(groups, *g)
	}
	return store.Put(s.Store, Key, groups)
}

// stored reads the group collection; an unreadable one counts as empty.
func (s *Session) stored(ctx context.Context, op string) ([]chat.Group, error) {
	if s.Store == nil {
		return nil, errors.New("group: no store configured")
	}
	groups, _, err := store.Get[[]chat.Group](s.Store, Key)
	if err != nil {
		var rErr *store.ReadError
		if errors.As(err, &rErr) {
			logging.For(ctx, s.Logger, "group", op).WarnContext(ctx, "ignoring unreadable groups", "error", err)
			return nil, nil
		}
		return nil, err
	}
	return groups, nil
}
