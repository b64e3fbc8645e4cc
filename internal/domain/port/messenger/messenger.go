package messenger

import (
	"context"
)

// Credentials identify the bot and the destination chat for one send.
// They come from the notifier config document, not from process config,
// so they are passed per call.
type Credentials struct {
	BotToken string
	ChatID   string
}

// Messenger is the outbound delivery transport. A single call, no retries;
// failures come back as domain.DeliveryError.
type Messenger interface {
	Send(ctx context.Context, creds Credentials, text string) error
}
