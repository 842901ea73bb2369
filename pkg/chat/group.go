package chat

// Group is a named chat room with a member cap and an ordered history.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Limit       int       `json:"limit"`
	Messages    []Message `json:"messages"`
}

// Clone returns a copy that shares no message storage with g.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Messages = make([]Message, len(g.Messages))
	copy(cp.Messages, g.Messages)
	return &cp
}
