package session

import (
	"errors"

	"tableflip.dev/huddle/pkg/chat"
	"tableflip.dev/huddle/pkg/store"
)

// ErrorKind maps errors to a stable label for logs and JSON output.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNeedsProfile):
		return "needs_profile"
	case errors.Is(err, ErrNoActiveGroup):
		return "no_active_group"
	case chat.IsValidation(err):
		return "validation"
	}
	var rErr *store.ReadError
	if errors.As(err, &rErr) {
		return "persistence_read"
	}
	return "unexpected"
}
