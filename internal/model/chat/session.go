package chat

import "time"

const (
	// DefaultTitle marks a session whose title has not been derived yet.
	DefaultTitle = "New Conversation"

	// MaxSessions caps the persisted collection; insertion evicts the oldest
	// sessions beyond the cap.
	MaxSessions = 50

	titleLimit = 50
)

// Session is one continuous conversation holding an ordered message list plus
// metadata. UpdatedAt never precedes CreatedAt.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeriveTitle builds a session title from the first user message, truncated to
// 50 characters plus an ellipsis marker when longer. Without any user message
// the default title is kept.
func DeriveTitle(messages []Message) string {
	for _, m := range messages {
		if m.Role != RoleUser {
			continue
		}
		runes := []rune(m.Content)
		if len(runes) > titleLimit {
			return string(runes[:titleLimit]) + "..."
		}
		return m.Content
	}
	return DefaultTitle
}
