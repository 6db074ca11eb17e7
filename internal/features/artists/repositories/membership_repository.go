package artists_repositories

import (
	"errors"
	"time"

	artists_dto "marca/internal/features/artists/dto"
	artists_models "marca/internal/features/artists/models"
	users_enums "marca/internal/features/users/enums"
	"marca/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

var membershipRepository = &MembershipRepository{}

func GetMembershipRepository() *MembershipRepository {
	return membershipRepository
}

func (r *MembershipRepository) CreateMembership(membership *artists_models.ArtistMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetMembershipByUserAndArtist(
	userID, artistID uuid.UUID,
) (*artists_models.ArtistMembership, error) {
	var membership artists_models.ArtistMembership

	if err := storage.GetDb().
		Where("user_id = ? AND artist_id = ?", userID, artistID).
		First(&membership).Error; err != nil {
		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetArtistMembers(
	artistID uuid.UUID,
) ([]*artists_dto.ArtistMemberResponseDTO, error) {
	var members []*artists_dto.ArtistMemberResponseDTO

	err := storage.GetDb().
		Table("artist_memberships am").
		Select("am.id, am.user_id, u.email, u.display_name, am.role, am.created_at").
		Joins("JOIN users u ON am.user_id = u.id").
		Where("am.artist_id = ?", artistID).
		Order("am.created_at ASC").
		Scan(&members).Error

	return members, err
}

// UpdateMemberRoleGuarded changes a member's role while preserving the
// at-least-one-owner invariant. The owner count is evaluated inside the
// statement itself, so two concurrent demotions cannot both succeed.
// Returns the number of rows changed: 0 means the update was refused.
func (r *MembershipRepository) UpdateMemberRoleGuarded(
	userID, artistID uuid.UUID,
	role users_enums.ArtistRole,
) (int64, error) {
	result := storage.GetDb().Exec(`
		UPDATE artist_memberships am
		SET role = ?
		WHERE am.user_id = ? AND am.artist_id = ?
		  AND (am.role <> ?
		       OR ? = ?
		       OR (SELECT COUNT(*) FROM artist_memberships m
		           WHERE m.artist_id = am.artist_id AND m.role = ?) > 1)`,
		role, userID, artistID,
		users_enums.ArtistRoleOwner,
		role, users_enums.ArtistRoleOwner,
		users_enums.ArtistRoleOwner,
	)

	return result.RowsAffected, result.Error
}

// RemoveMemberGuarded deletes a membership unless the member is the artist's
// last owner. Returns the number of rows removed: 0 means the delete was
// refused.
func (r *MembershipRepository) RemoveMemberGuarded(userID, artistID uuid.UUID) (int64, error) {
	result := storage.GetDb().Exec(`
		DELETE FROM artist_memberships am
		WHERE am.user_id = ? AND am.artist_id = ?
		  AND (am.role <> ?
		       OR (SELECT COUNT(*) FROM artist_memberships m
		           WHERE m.artist_id = am.artist_id AND m.role = ?) > 1)`,
		userID, artistID,
		users_enums.ArtistRoleOwner,
		users_enums.ArtistRoleOwner,
	)

	return result.RowsAffected, result.Error
}

func (r *MembershipRepository) RemoveAllMembershipsForArtist(artistID uuid.UUID) error {
	return storage.GetDb().
		Where("artist_id = ?", artistID).
		Delete(&artists_models.ArtistMembership{}).Error
}

func (r *MembershipRepository) GetUserArtistRole(artistID, userID uuid.UUID) (*users_enums.ArtistRole, error) {
	var membership artists_models.ArtistMembership
	err := storage.GetDb().
		Where("artist_id = ? AND user_id = ?", artistID, userID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership.Role, nil
}

func (r *MembershipRepository) GetArtistOwner(artistID uuid.UUID) (*artists_models.ArtistMembership, error) {
	var membership artists_models.ArtistMembership

	err := storage.GetDb().
		Where("artist_id = ? AND role = ?", artistID, users_enums.ArtistRoleOwner).
		Order("created_at ASC").
		First(&membership).Error

	if err != nil {
		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) CountOwners(artistID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&artists_models.ArtistMembership{}).
		Where("artist_id = ? AND role = ?", artistID, users_enums.ArtistRoleOwner).
		Count(&count).Error

	return count, err
}

func (r *MembershipRepository) GetArtistMemberIDs(artistID uuid.UUID) ([]uuid.UUID, error) {
	var memberIDs []uuid.UUID

	err := storage.GetDb().
		Model(&artists_models.ArtistMembership{}).
		Where("artist_id = ?", artistID).
		Pluck("user_id", &memberIDs).Error

	return memberIDs, err
}

func (r *MembershipRepository) GetArtistsWithRolesByUserID(
	userRole users_enums.UserRole,
	userID uuid.UUID,
) ([]artists_dto.ArtistResponseDTO, error) {
	results := make([]artists_dto.ArtistResponseDTO, 0)

	if userRole == users_enums.UserRoleAdmin {
		err := storage.GetDb().Table("artists").Order("name ASC").Scan(&results).Error
		return results, err
	}

	err := storage.GetDb().
		Table("artists a").
		Select("a.id, a.name, a.genre, a.created_at, am.role as user_role").
		Joins("JOIN artist_memberships am ON a.id = am.artist_id").
		Where("am.user_id = ?", userID).
		Order("a.name ASC").
		Scan(&results).Error

	return results, err
}
