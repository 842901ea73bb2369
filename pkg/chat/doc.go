// Package chat holds the records a huddle session persists: the local
// profile, the active group with its timeline, and scheduled meetings.
package chat
