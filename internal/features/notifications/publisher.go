package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

// RealtimePublisher fans ChangeEvents out over per-user Valkey pub/sub
// channels. Delivery is best-effort: a user with no open stream simply
// misses the event and reads fresh state from the store next time.
type RealtimePublisher struct {
	client valkey.Client
	logger *slog.Logger
}

const publishTimeout = 5 * time.Second

func userChannel(userID uuid.UUID) string {
	return "marca:events:user:" + userID.String()
}

func (p *RealtimePublisher) Publish(userID uuid.UUID, event *ChangeEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal change event", slog.String("error", err.Error()))
		return
	}

	result := p.client.Do(ctx,
		p.client.B().Publish().Channel(userChannel(userID)).Message(string(data)).Build())
	if result.Error() != nil {
		p.logger.Error("failed to publish change event",
			slog.String("userId", userID.String()),
			slog.String("error", result.Error().Error()))
	}
}

// Subscribe relays the user's channel into handler until ctx is cancelled.
// It holds a dedicated connection for the duration of the subscription.
func (p *RealtimePublisher) Subscribe(
	ctx context.Context,
	userID uuid.UUID,
	handler func(message []byte),
) error {
	client, cancel := p.client.Dedicate()
	defer cancel()

	wait := client.SetPubSubHooks(valkey.PubSubHooks{
		OnMessage: func(message valkey.PubSubMessage) {
			handler([]byte(message.Message))
		},
	})

	if err := client.Do(ctx, client.B().Subscribe().Channel(userChannel(userID)).Build()).Error(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-wait:
		return err
	}
}
