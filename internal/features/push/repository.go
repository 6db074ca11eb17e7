package push

import (
	"time"

	"marca/internal/storage"

	"github.com/google/uuid"
)

type DeviceTokenRepository struct{}

func (r *DeviceTokenRepository) SaveToken(token *DeviceToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	// A token can only belong to one user; re-registration moves it
	if err := storage.GetDb().Where("token = ?", token.Token).Delete(&DeviceToken{}).Error; err != nil {
		return err
	}

	return storage.GetDb().Create(token).Error
}

func (r *DeviceTokenRepository) GetTokensByUser(userID uuid.UUID) ([]*DeviceToken, error) {
	tokens := make([]*DeviceToken, 0)

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokens).Error

	return tokens, err
}

func (r *DeviceTokenRepository) DeleteToken(userID uuid.UUID, token string) error {
	return storage.GetDb().
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&DeviceToken{}).Error
}

func (r *DeviceTokenRepository) DeleteTokenValue(token string) error {
	return storage.GetDb().
		Where("token = ?", token).
		Delete(&DeviceToken{}).Error
}
