package domain

import "encoding/json"

// AttachmentKind classifies the non-text payload of an inbound event.
type AttachmentKind string

const (
	AttachmentNone     AttachmentKind = "none"
	AttachmentDocument AttachmentKind = "document"
	AttachmentPhoto    AttachmentKind = "photo"
)

// InboundEvent is a single message notification from the chat platform,
// reduced to what the dispatcher needs. Raw carries the original update
// payload for journaling.
type InboundEvent struct {
	UpdateID   int64           `json:"update_id"`
	TelegramID int64           `json:"telegram_id"`
	FirstName  string          `json:"first_name,omitempty"`
	LastName   string          `json:"last_name,omitempty"`
	Username   string          `json:"username,omitempty"`
	Text       string          `json:"text,omitempty"`
	Attachment AttachmentKind  `json:"attachment"`
	Raw        json.RawMessage `json:"-"`
}

// HasAttachment reports whether the event carries a document or photo
// payload instead of plain text.
func (e InboundEvent) HasAttachment() bool {
	return e.Attachment == AttachmentDocument || e.Attachment == AttachmentPhoto
}

// Reply is the single outbound answer produced for an inbound event.
// Text is always non-empty.
type Reply struct {
	TelegramID int64  `json:"telegram_id"`
	Text       string `json:"text"`
}
