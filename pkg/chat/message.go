package chat

import "time"

// Kind tags who produced a message.
type Kind string

const (
	KindUser   Kind = "user"
	KindSystem Kind = "system"
	KindEvent  Kind = "event"
)

// Message is a single timeline item. Order in Group.Messages is
// authoritative; Timestamp is informational.
type Message struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	Kind      Kind   `json:"type"`
	Username  string `json:"username,omitempty"`
	IsSelf    bool   `json:"isCurrentUser,omitempty"`
}

// Time returns Timestamp as a time.Time.
func (m Message) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// Links returns the URLs embedded in the message text.
func (m Message) Links() []string {
	return Links(m.Text)
}
