package transport

import (
	"encoding/json"

	"github.com/taskgram/bot/domain"
)

// Update mirrors the chat platform's webhook payload, reduced to the
// fields the bot consumes.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64       `json:"message_id"`
	From      *Sender     `json:"from"`
	Chat      *Chat       `json:"chat"`
	Text      string      `json:"text"`
	Document  *Document   `json:"document,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
}

type Sender struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type Document struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
}

type PhotoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Event converts the update into the dispatcher's boundary contract.
// The raw payload rides along for journaling.
func (u *Update) Event(raw []byte) (domain.InboundEvent, bool) {
	if u == nil || u.Message == nil || u.Message.From == nil {
		return domain.InboundEvent{}, false
	}

	event := domain.InboundEvent{
		UpdateID:   u.UpdateID,
		TelegramID: u.Message.From.ID,
		FirstName:  u.Message.From.FirstName,
		LastName:   u.Message.From.LastName,
		Username:   u.Message.From.Username,
		Text:       u.Message.Text,
		Attachment: domain.AttachmentNone,
		Raw:        json.RawMessage(raw),
	}
	switch {
	case u.Message.Document != nil:
		event.Attachment = domain.AttachmentDocument
	case len(u.Message.Photo) > 0:
		event.Attachment = domain.AttachmentPhoto
	}
	return event, true
}
