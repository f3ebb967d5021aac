package usecases

import (
	"context"
)

// PushPayload is the message handed to the push gateway for one recipient.
type PushPayload struct {
	Title          string
	Body           string
	Type           string
	NotificationID uint
}

// PushGateway delivers a payload to a single device token. Errors are
// reported per recipient and never abort a dispatch.
type PushGateway interface {
	Push(ctx context.Context, token string, payload PushPayload) error
}
