package invites

import (
	"errors"
	"time"

	"marca/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InviteRepository struct{}

const inviteListSQL = `
	SELECT
		i.id,
		i.artist_id,
		a.name as artist_name,
		i.from_user_id,
		fu.email as from_user_email,
		i.to_user_id,
		tu.email as to_user_email,
		i.role,
		i.status,
		i.created_at,
		i.responded_at
	FROM invites i
	JOIN artists a ON i.artist_id = a.id
	JOIN users fu ON i.from_user_id = fu.id
	JOIN users tu ON i.to_user_id = tu.id`

func (r *InviteRepository) CreateInvite(invite *Invite) error {
	if invite.ID == uuid.Nil {
		invite.ID = uuid.New()
	}

	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(invite).Error
}

func (r *InviteRepository) GetInviteByID(inviteID uuid.UUID) (*Invite, error) {
	var invite Invite

	err := storage.GetDb().Where("id = ?", inviteID).First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invite, nil
}

func (r *InviteRepository) GetPendingInvite(artistID, toUserID uuid.UUID) (*Invite, error) {
	var invite Invite

	err := storage.GetDb().
		Where("artist_id = ? AND to_user_id = ? AND status = ?", artistID, toUserID, InviteStatusPending).
		First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invite, nil
}

// ResolveInviteGuarded moves a PENDING invite into a terminal status.
// The status check happens inside the statement, so two concurrent
// responses cannot both claim the invite. Returns rows changed: 0 means
// the invite was already resolved (or gone).
func (r *InviteRepository) ResolveInviteGuarded(inviteID uuid.UUID, status InviteStatus) (int64, error) {
	result := storage.GetDb().
		Model(&Invite{}).
		Where("id = ? AND status = ?", inviteID, InviteStatusPending).
		Updates(map[string]any{
			"status":       status,
			"responded_at": time.Now().UTC(),
		})

	return result.RowsAffected, result.Error
}

func (r *InviteRepository) ListSentByUser(fromUserID uuid.UUID) ([]*InviteDTO, error) {
	invites := make([]*InviteDTO, 0)

	err := storage.GetDb().
		Raw(inviteListSQL+" WHERE i.from_user_id = ? ORDER BY i.created_at DESC", fromUserID).
		Scan(&invites).Error

	return invites, err
}

func (r *InviteRepository) ListReceivedByUser(toUserID uuid.UUID) ([]*InviteDTO, error) {
	invites := make([]*InviteDTO, 0)

	err := storage.GetDb().
		Raw(inviteListSQL+" WHERE i.to_user_id = ? ORDER BY i.created_at DESC", toUserID).
		Scan(&invites).Error

	return invites, err
}

func (r *InviteRepository) CancelPendingInvitesForArtist(artistID uuid.UUID) error {
	return storage.GetDb().
		Model(&Invite{}).
		Where("artist_id = ? AND status = ?", artistID, InviteStatusPending).
		Updates(map[string]any{
			"status":       InviteStatusCancelled,
			"responded_at": time.Now().UTC(),
		}).Error
}
