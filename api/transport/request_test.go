package transport

import (
	"encoding/json"
	"testing"

	"github.com/taskgram/bot/domain"
)

func TestUpdateEventText(t *testing.T) {
	raw := []byte(`{
		"update_id": 100,
		"message": {
			"message_id": 5,
			"from": {"id": 42, "first_name": "Ada", "last_name": "Lovelace", "username": "ada"},
			"chat": {"id": 42},
			"text": "/add Buy milk"
		}
	}`)

	var update Update
	if err := json.Unmarshal(raw, &update); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	event, ok := update.Event(raw)
	if !ok {
		t.Fatalf("Event() ok = false, want true")
	}
	if event.UpdateID != 100 || event.TelegramID != 42 {
		t.Fatalf("event ids = (%d, %d), want (100, 42)", event.UpdateID, event.TelegramID)
	}
	if event.Text != "/add Buy milk" {
		t.Fatalf("event.Text = %q, want %q", event.Text, "/add Buy milk")
	}
	if event.Attachment != domain.AttachmentNone {
		t.Fatalf("event.Attachment = %q, want %q", event.Attachment, domain.AttachmentNone)
	}
	if string(event.Raw) != string(raw) {
		t.Fatalf("event.Raw does not carry the original payload")
	}
}

func TestUpdateEventAttachments(t *testing.T) {
	doc := Update{
		UpdateID: 1,
		Message: &Message{
			From:     &Sender{ID: 42},
			Document: &Document{FileID: "f1", FileName: "report.pdf"},
		},
	}
	event, ok := doc.Event(nil)
	if !ok || event.Attachment != domain.AttachmentDocument {
		t.Fatalf("document event = (%+v, %v), want document attachment", event, ok)
	}

	photo := Update{
		UpdateID: 2,
		Message: &Message{
			From:  &Sender{ID: 42},
			Photo: []PhotoSize{{FileID: "p1", Width: 100, Height: 100}},
		},
	}
	event, ok = photo.Event(nil)
	if !ok || event.Attachment != domain.AttachmentPhoto {
		t.Fatalf("photo event = (%+v, %v), want photo attachment", event, ok)
	}
}

func TestUpdateEventRejectsNonMessageUpdates(t *testing.T) {
	var update Update
	if _, ok := update.Event(nil); ok {
		t.Fatalf("Event() ok = true for update without message")
	}

	update.Message = &Message{Text: "no sender"}
	if _, ok := update.Event(nil); ok {
		t.Fatalf("Event() ok = true for message without sender")
	}
}
