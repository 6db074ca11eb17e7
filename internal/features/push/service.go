package push

import (
	"encoding/json"
	"fmt"
	"log/slog"

	users_models "marca/internal/features/users/models"
	cache_utils "marca/internal/util/cache"

	"github.com/google/uuid"
)

const pushQueueKey = "marca:push:queue"

type PushService struct {
	deviceTokenRepository *DeviceTokenRepository
	queueService          *cache_utils.ValkeyQueueService
	logger                *slog.Logger
}

func (s *PushService) RegisterToken(
	request *RegisterDeviceTokenRequestDTO,
	user *users_models.User,
) (*DeviceToken, error) {
	token := &DeviceToken{
		UserID:   user.ID,
		Token:    request.Token,
		Platform: request.Platform,
	}

	if err := s.deviceTokenRepository.SaveToken(token); err != nil {
		return nil, fmt.Errorf("failed to register device token: %w", err)
	}

	return token, nil
}

func (s *PushService) RemoveToken(tokenValue string, user *users_models.User) error {
	if err := s.deviceTokenRepository.DeleteToken(user.ID, tokenValue); err != nil {
		return fmt.Errorf("failed to remove device token: %w", err)
	}

	return nil
}

func (s *PushService) GetUserTokens(user *users_models.User) (*ListDeviceTokensResponseDTO, error) {
	tokens, err := s.deviceTokenRepository.GetTokensByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get device tokens: %w", err)
	}

	return &ListDeviceTokensResponseDTO{Tokens: tokens}, nil
}

// EnqueuePush queues one message per registered device of the user.
// Delivery is fire-and-forget: failures are logged by the worker, never
// surfaced to the caller.
func (s *PushService) EnqueuePush(userID uuid.UUID, title, body string, payload any) {
	tokens, err := s.deviceTokenRepository.GetTokensByUser(userID)
	if err != nil {
		s.logger.Error("failed to load device tokens for push",
			slog.String("userId", userID.String()),
			slog.String("error", err.Error()))
		return
	}

	for _, token := range tokens {
		message := &PushMessage{
			UserID:  userID,
			Title:   title,
			Body:    body,
			Token:   token.Token,
			Payload: payload,
		}

		data, err := json.Marshal(message)
		if err != nil {
			s.logger.Error("failed to marshal push message", slog.String("error", err.Error()))
			continue
		}

		if err := s.queueService.Enqueue(pushQueueKey, data); err != nil {
			s.logger.Error("failed to enqueue push message", slog.String("error", err.Error()))
		}
	}
}
