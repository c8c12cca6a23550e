// Package bot provides transport-neutral message types shared between the
// telegram listener, the moderation dispatcher and the recent-messages cache.
package bot

import (
	"fmt"
	"strings"
	"time"
)

// SenderChat is the sender of the message, sent on behalf of a chat. The
// channel itself for channel messages. The supergroup itself for messages
// from anonymous group administrators.
type SenderChat struct {
	// ID is a unique identifier for this chat
	ID int64 `json:"id"`
	// UserName for private chats, supergroups and channels if available, optional
	UserName string `json:"username,omitempty"`
}

// Message is the primary record passed between the listener and handlers
type Message struct {
	ID          int
	From        User
	SenderChat  SenderChat `json:"sender_chat,omitempty"`
	ChatID      int64
	Sent        time.Time
	Text        string `json:",omitempty"`
	Caption     string `json:",omitempty"`
	Quote       string `json:",omitempty"` // quoted part of the replied-to message, if any
	WithForward bool   `json:",omitempty"`
}

// ContentText returns the text of the message, falling back to the caption for
// media messages. The quote, when present, is prepended with a space separator.
func (m Message) ContentText() string {
	text := m.Text
	if text == "" {
		text = m.Caption
	}
	if m.Quote != "" {
		return m.Quote + " " + text
	}
	return text
}

// User defines user info of the Message
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"user_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// DisplayName returns user's display name or username or id
func DisplayName(msg Message) string {
	displayUsername := msg.From.DisplayName
	if displayUsername == "" {
		displayUsername = msg.From.Username
	}
	if displayUsername == "" {
		displayUsername = fmt.Sprintf("%d", msg.From.ID)
	}
	return strings.TrimSpace(displayUsername)
}
