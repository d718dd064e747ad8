package dialog

import (
	"context"
	"fmt"

	"github.com/taskgram/bot/domain"
)

// FileSink stores the attachment of an inbound event and returns a
// download link. Upload mechanics live outside the core; the dispatcher
// only owns the active-and-idle precondition.
type FileSink interface {
	Store(ctx context.Context, event domain.InboundEvent) (string, error)
}

// StaticLinkSink acknowledges uploads with a canned download link,
// matching the placeholder behavior of the legacy bot.
type StaticLinkSink struct {
	BaseURL string
}

func (s StaticLinkSink) Store(ctx context.Context, event domain.InboundEvent) (string, error) {
	if event.Attachment == domain.AttachmentPhoto {
		return fmt.Sprintf("%s/get-photo/%d", s.BaseURL, event.UpdateID), nil
	}
	return fmt.Sprintf("%s/get-doc/%d", s.BaseURL, event.UpdateID), nil
}

// NopFileSink rejects every upload; used when no file storage is wired.
type NopFileSink struct{}

func (NopFileSink) Store(ctx context.Context, event domain.InboundEvent) (string, error) {
	return "", domain.NewError(domain.ErrCodeUnavailable, "file storage not configured")
}
