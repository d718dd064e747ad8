package domain

import "time"

// User represents a chat-platform identity known to the bot.
// Exactly one record exists per Telegram user id; it is created lazily on
// the first inbound event and carries the conversation state between events.
type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	Username   string    `json:"username,omitempty"`
	IsActive   bool      `json:"is_active"`
	State      State     `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) Active() bool {
	return u != nil && u.IsActive
}
