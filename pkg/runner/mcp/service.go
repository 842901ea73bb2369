// Package mcp exposes the huddle session over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/meeting"
	"tableflip.dev/huddle/pkg/session"
)

// Service adapts session intents to MCP-friendly inputs and results.
type Service struct {
	Session   *session.Controller
	Scheduler *meeting.Scheduler
}

// GroupResult reports a created group along with the gate it landed behind.
type GroupResult struct {
	Group *chat.Group `json:"group"`
	Gate  string      `json:"gate"`
}

// MeetingResult pairs a scheduled meeting with its announcement.
type MeetingResult struct {
	Meeting      chat.CalendarEvent `json:"meeting"`
	Announcement *chat.Message      `json:"announcement"`
}

// ScheduleOptions carries either an explicit date and time or a relative
// offset such as "2h".
type ScheduleOptions struct {
	Topic string
	Date  string
	Time  string
	In    string
}

// NewService builds a service over an already started session.
func NewService(c *session.Controller, s *meeting.Scheduler) *Service {
	return &Service{Session: c, Scheduler: s}
}

func (s *Service) ready() error {
	if s.Session == nil {
		return errors.New("session is not configured")
	}
	return nil
}

// Profile returns the saved profile, nil when none is saved.
func (s *Service) Profile(ctx context.Context) (*chat.UserProfile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Session.Profile(), nil
}

// SaveProfile saves the profile and activates a pending group.
func (s *Service) SaveProfile(ctx context.Context, name, teachingInterest string) (*chat.UserProfile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	p, err := s.Session.SaveProfile(ctx, name, teachingInterest)
	return p, describe(err)
}

// CreateGroup creates and activates a group.
func (s *Service) CreateGroup(ctx context.Context, name, description string, limit int) (*GroupResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	g, gate, err := s.Session.CreateGroup(ctx, name, description, limit)
	if err != nil {
		return nil, describe(err)
	}
	return &GroupResult{Group: g, Gate: gate.String()}, nil
}

// Group returns the active group, falling back to one waiting on a profile.
func (s *Service) Group(ctx context.Context) (*chat.Group, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if g := s.Session.ActiveGroup(); g != nil {
		return g, nil
	}
	if g := s.Session.PendingGroup(); g != nil {
		return g, nil
	}
	return nil, describe(session.ErrNoActiveGroup)
}

// SendMessage posts text to the active group. Blank text returns nil.
func (s *Service) SendMessage(ctx context.Context, text string) (*chat.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	msg, err := s.Session.SendMessage(ctx, text)
	return msg, describe(err)
}

// ScheduleMeeting schedules a meeting and announces it on the active group.
func (s *Service) ScheduleMeeting(ctx context.Context, opts ScheduleOptions) (*MeetingResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	date, clock, err := s.scheduler().When(opts.Date, opts.Time, opts.In)
	if err != nil {
		return nil, err
	}
	ev, msg, err := s.Session.ScheduleMeeting(ctx, opts.Topic, date, clock)
	if err != nil {
		return nil, describe(err)
	}
	return &MeetingResult{Meeting: ev, Announcement: msg}, nil
}

// Meetings lists the meetings scheduled since the server started.
func (s *Service) Meetings(ctx context.Context) ([]chat.CalendarEvent, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Session.Meetings(), nil
}

func (s *Service) scheduler() *meeting.Scheduler {
	if s.Scheduler == nil {
		return &meeting.Scheduler{}
	}
	return s.Scheduler
}

// describe points agents at the tool that unblocks a gating error.
func describe(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrNeedsProfile):
		return fmt.Errorf("%w: call save_profile first", err)
	case errors.Is(err, session.ErrNoActiveGroup):
		return fmt.Errorf("%w: call create_group first", err)
	}
	return err
}
