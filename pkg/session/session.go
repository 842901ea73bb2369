// Package session is the top-level orchestrator: it picks the active group,
// gates every mutation on a saved profile, and routes messages and meeting
// requests to the group session and scheduler.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/group"
	"tableflip.dev/huddle/pkg/logging"
	"tableflip.dev/huddle/pkg/meeting"
	"tableflip.dev/huddle/pkg/profile"
	"tableflip.dev/huddle/pkg/store"
)

var (
	// ErrNeedsProfile is returned by mutating intents until a profile is saved.
	ErrNeedsProfile = errors.New("session: a profile is required")
	// ErrNoActiveGroup is returned by timeline intents before a group is active.
	ErrNoActiveGroup = errors.New("session: no active group")
)

const maxProfileAttempts = 3

// ProfileSource supplies profile fields when gating has to block. previous
// is the validation error from the last attempt, nil on the first.
type ProfileSource interface {
	RequestProfile(ctx context.Context, previous error) (name, teachingInterest string, err error)
}

// ProfileSourceFunc adapts a function to ProfileSource.
type ProfileSourceFunc func(ctx context.Context, previous error) (string, string, error)

func (f ProfileSourceFunc) RequestProfile(ctx context.Context, previous error) (string, string, error) {
	return f(ctx, previous)
}

// Controller holds the session state: the profile, the active (or pending)
// group, and the meetings scheduled while it has been running. Intents are
// serialized; each runs to completion before the next starts.
type Controller struct {
	profiles  *profile.Manager
	groups    *group.Session
	scheduler *meeting.Scheduler
	logger    *slog.Logger

	mu       sync.Mutex
	profile  *chat.UserProfile
	active   *chat.Group
	pending  *chat.Group
	meetings []chat.CalendarEvent
}

// New composes a Controller from its collaborators.
func New(profiles *profile.Manager, groups *group.Session, scheduler *meeting.Scheduler, logger *slog.Logger) *Controller {
	if scheduler == nil {
		scheduler = &meeting.Scheduler{}
	}
	return &Controller{
		profiles:  profiles,
		groups:    groups,
		scheduler: scheduler,
		logger:    logger,
	}
}

// NewForStore wires default collaborators over s.
func NewForStore(s store.Store, scheduler *meeting.Scheduler, logger *slog.Logger) *Controller {
	return New(profile.NewManager(s, logger), group.NewSession(s, logger), scheduler, logger)
}

// Start loads the saved profile and the stored group. Having neither is a
// valid state. A stored group becomes active when a profile exists and
// pending otherwise.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.profiles.Load(ctx)
	if err != nil {
		return err
	}
	c.profile = p
	c.active, c.pending = nil, nil

	g, err := c.groups.Load(ctx)
	if err != nil {
		return err
	}
	if g == nil {
		return nil
	}
	_, err = c.activate(ctx, g)
	return err
}

// Gate reports whether mutating intents may proceed.
func (c *Controller) Gate() profile.Gate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return profile.GateFor(c.profile)
}

// SaveProfile saves the profile and completes a pending activation.
func (c *Controller) SaveProfile(ctx context.Context, name, teachingInterest string) (*chat.UserProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveProfile(ctx, name, teachingInterest)
}

// CreateGroup creates a group and activates it. Creation itself does not
// need a profile, but the group only becomes active once one exists.
func (c *Controller) CreateGroup(ctx context.Context, name, description string, limit int) (*chat.Group, profile.Gate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, err := c.groups.Create(ctx, name, description, limit)
	if err != nil {
		return nil, profile.GateFor(c.profile), err
	}
	gate, err := c.activate(ctx, g)
	if err != nil {
		return nil, gate, err
	}
	return g.Clone(), gate, nil
}

// Activate makes g the active group. Without a profile g is held pending,
// NeedsProfile is returned, and mutating intents fail with ErrNeedsProfile
// until SaveProfile or Resolve supplies one.
func (c *Controller) Activate(ctx context.Context, g *chat.Group) (profile.Gate, error) {
	if g == nil {
		return profile.GateFor(c.Profile()), errors.New("session: no group to activate")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activate(ctx, g.Clone())
}

// ActivateWith activates g, asking src for a profile first when needed.
// The session stays locked until g is active or resolution fails.
func (c *Controller) ActivateWith(ctx context.Context, g *chat.Group, src ProfileSource) error {
	if g == nil {
		return errors.New("session: no group to activate")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	gate, err := c.activate(ctx, g.Clone())
	if err != nil {
		return err
	}
	if gate == profile.Ready {
		return nil
	}
	return c.resolve(ctx, src)
}

// Resolve blocks until a profile exists, asking src for one when needed.
// Validation failures are handed back to src for another attempt.
func (c *Controller) Resolve(ctx context.Context, src ProfileSource) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve(ctx, src)
}

func (c *Controller) resolve(ctx context.Context, src ProfileSource) error {
	if c.profile != nil {
		return nil
	}
	if src == nil {
		return ErrNeedsProfile
	}

	var previous error
	for attempt := 0; attempt < maxProfileAttempts; attempt++ {
		name, interest, err := src.RequestProfile(ctx, previous)
		if err != nil {
			return err
		}
		_, err = c.saveProfile(ctx, name, interest)
		if err == nil {
			return nil
		}
		if !chat.IsValidation(err) {
			return err
		}
		previous = err
	}
	return previous
}

// SendMessage posts text to the active group. Whitespace-only text is a
// no-op returning nil.
func (c *Controller) SendMessage(ctx context.Context, text string) (*chat.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.groups.AppendUserMessage(ctx, c.active, c.profile, text)
}

// ScheduleMeeting mints a meeting, announces it on the active group, and
// records it in the meetings list.
func (c *Controller) ScheduleMeeting(ctx context.Context, topic, date, clock string) (chat.CalendarEvent, *chat.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ready(); err != nil {
		return chat.CalendarEvent{}, nil, err
	}
	ev, err := c.scheduler.Schedule(topic, date, clock)
	if err != nil {
		logging.For(ctx, c.logger, "session", "ScheduleMeeting").DebugContext(ctx, "rejected meeting", "error", err)
		return chat.CalendarEvent{}, nil, err
	}
	msg, err := c.groups.AppendEventNarration(ctx, c.active, c.profile, ev)
	if err != nil {
		return chat.CalendarEvent{}, nil, err
	}
	c.meetings = append(c.meetings, ev)
	logging.For(ctx, c.logger, "session", "ScheduleMeeting").InfoContext(ctx, "meeting scheduled",
		"group_id", c.active.ID, "event_id", ev.ID)
	return ev, msg, nil
}

// Profile returns a copy of the current profile, nil when none is saved.
func (c *Controller) Profile() *chat.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return nil
	}
	p := *c.profile
	return &p
}

// ActiveGroup returns a copy of the active group, nil when none is active.
func (c *Controller) ActiveGroup() *chat.Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active.Clone()
}

// PendingGroup returns a copy of the group waiting on a profile.
func (c *Controller) PendingGroup() *chat.Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending.Clone()
}

// Messages returns a copy of the active group's timeline.
func (c *Controller) Messages() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil
	}
	out := make([]chat.Message, len(c.active.Messages))
	copy(out, c.active.Messages)
	return out
}

// Meetings returns the meetings scheduled in this session, oldest first.
func (c *Controller) Meetings() []chat.CalendarEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]chat.CalendarEvent, len(c.meetings))
	copy(out, c.meetings)
	return out
}

func (c *Controller) activate(ctx context.Context, g *chat.Group) (profile.Gate, error) {
	if c.profile == nil {
		c.active = nil
		c.pending = g
		logging.For(ctx, c.logger, "session", "Activate").DebugContext(ctx, "activation waiting on profile", "group_id", g.ID)
		return profile.NeedsProfile, nil
	}
	if _, err := c.groups.EnsureWelcome(ctx, g, c.profile); err != nil {
		return profile.Ready, err
	}
	c.active = g
	c.pending = nil
	return profile.Ready, nil
}

func (c *Controller) saveProfile(ctx context.Context, name, teachingInterest string) (*chat.UserProfile, error) {
	p, err := c.profiles.Save(ctx, name, teachingInterest)
	if err != nil {
		return nil, err
	}
	c.profile = p
	if c.pending != nil {
		if _, err := c.activate(ctx, c.pending); err != nil {
			return nil, err
		}
	}
	cp := *p
	return &cp, nil
}

func (c *Controller) ready() error {
	if c.profile == nil {
		return ErrNeedsProfile
	}
	if c.active == nil {
		return ErrNoActiveGroup
	}
	return nil
}
