package artists_services

import (
	"errors"
	"fmt"
	"time"

	artists_dto "marca/internal/features/artists/dto"
	artists_interfaces "marca/internal/features/artists/interfaces"
	artists_models "marca/internal/features/artists/models"
	artists_repositories "marca/internal/features/artists/repositories"
	audit_logs "marca/internal/features/audit_logs"
	"marca/internal/features/permissions"
	users_enums "marca/internal/features/users/enums"
	users_models "marca/internal/features/users/models"
	users_services "marca/internal/features/users/services"
	cache_utils "marca/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ArtistService struct {
	artistRepository        *artists_repositories.ArtistRepository
	membershipRepository    *artists_repositories.MembershipRepository
	userService             *users_services.UserService
	auditLogService         *audit_logs.AuditLogService
	settingsService         *users_services.SettingsService
	permissionService       *permissions.PermissionService
	artistDeletionListeners []artists_interfaces.ArtistDeletionListener

	artistCacheUtil *cache_utils.CacheUtil[artists_models.Artist]
	singleflight    singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ArtistService) AddArtistDeletionListener(listener artists_interfaces.ArtistDeletionListener) {
	s.artistDeletionListeners = append(s.artistDeletionListeners, listener)
}

func (s *ArtistService) CreateArtist(
	request *artists_dto.CreateArtistRequestDTO,
	creator *users_models.User,
) (*artists_dto.ArtistResponseDTO, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if !creator.CanCreateArtists(settings) {
		return nil, ErrForbidden
	}

	artist := &artists_models.Artist{
		ID:        uuid.New(),
		Name:      request.Name,
		Genre:     request.Genre,
		Bio:       request.Bio,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.artistRepository.CreateArtist(artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	// Pre-warm cache with new artist for immediate availability
	s.artistCacheUtil.Set(artist.ID.String(), artist)

	membership := &artists_models.ArtistMembership{
		UserID:    creator.ID,
		ArtistID:  artist.ID,
		Role:      users_enums.ArtistRoleOwner,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create artist membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Artist created: %s", artist.Name),
		&creator.ID,
		&artist.ID,
	)

	ownerRole := users_enums.ArtistRoleOwner
	return &artists_dto.ArtistResponseDTO{
		ID:        artist.ID,
		Name:      artist.Name,
		Genre:     artist.Genre,
		CreatedAt: artist.CreatedAt,
		UserRole:  &ownerRole,
	}, nil
}

func (s *ArtistService) GetArtist(artistID uuid.UUID, user *users_models.User) (*artists_models.Artist, error) {
	isCanAccess, _, err := s.CanUserAccessArtist(artistID, user)
	if err != nil {
		return nil, err
	}
	if !isCanAccess {
		return nil, ErrForbidden
	}

	artist, err := s.artistRepository.GetArtistByID(artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}

		return nil, err
	}

	return artist, nil
}

func (s *ArtistService) GetUserArtists(user *users_models.User) (*artists_dto.ListArtistsResponseDTO, error) {
	artists, err := s.membershipRepository.GetArtistsWithRolesByUserID(user.Role, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user artists: %w", err)
	}

	return &artists_dto.ListArtistsResponseDTO{
		Artists: artists,
	}, nil
}

func (s *ArtistService) UpdateArtist(
	artistID uuid.UUID,
	request *artists_dto.UpdateArtistRequestDTO,
	user *users_models.User,
) (*artists_models.Artist, error) {
	if user.Role != users_enums.UserRoleAdmin &&
		!s.permissionService.Check(user.ID, artistID, permissions.CapManageArtist) {
		return nil, ErrForbidden
	}

	artist, err := s.artistRepository.GetArtistByID(artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}

		return nil, fmt.Errorf("failed to get artist: %w", err)
	}

	artist.Name = request.Name
	artist.Genre = request.Genre
	artist.Bio = request.Bio

	if err := s.artistRepository.UpdateArtist(artist); err != nil {
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	s.artistCacheUtil.Invalidate(artistID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Artist updated: %s", artist.Name),
		&user.ID,
		&artistID,
	)

	return artist, nil
}

func (s *ArtistService) DeleteArtist(artistID uuid.UUID, user *users_models.User) error {
	if user.Role != users_enums.UserRoleAdmin &&
		!s.permissionService.Check(user.ID, artistID, permissions.CapDeleteArtist) {
		return ErrForbidden
	}

	artist, err := s.artistRepository.GetArtistByID(artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtistNotFound
		}

		return fmt.Errorf("failed to get artist: %w", err)
	}

	for _, listener := range s.artistDeletionListeners {
		if err := listener.OnBeforeArtistDeletion(artistID); err != nil {
			return fmt.Errorf("failed to delete artist: %w", err)
		}
	}

	memberIDs, err := s.membershipRepository.GetArtistMemberIDs(artistID)
	if err != nil {
		return fmt.Errorf("failed to get artist members: %w", err)
	}

	if err := s.membershipRepository.RemoveAllMembershipsForArtist(artistID); err != nil {
		return fmt.Errorf("failed to remove artist memberships: %w", err)
	}

	if err := s.artistRepository.DeleteArtist(artistID); err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	s.artistCacheUtil.Invalidate(artistID.String())
	for _, memberID := range memberIDs {
		s.permissionService.Invalidate(memberID, artistID)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Artist deleted: %s", artist.Name),
		&user.ID,
		&artistID,
	)

	return nil
}

func (s *ArtistService) GetUserArtistRole(
	artistID uuid.UUID,
	userID uuid.UUID,
) (*users_enums.ArtistRole, error) {
	return s.membershipRepository.GetUserArtistRole(artistID, userID)
}

func (s *ArtistService) CanUserAccessArtist(
	artistID uuid.UUID,
	user *users_models.User,
) (bool, *users_enums.ArtistRole, error) {
	if user.Role == users_enums.UserRoleAdmin {
		adminRole := users_enums.ArtistRoleOwner
		return true, &adminRole, nil
	}

	snapshot, err := s.permissionService.Resolve(user.ID, artistID)
	if err != nil {
		return false, nil, err
	}

	if snapshot == nil {
		return false, nil, nil
	}

	return snapshot.Capabilities.CanViewEvents, &snapshot.Role, nil
}

func (s *ArtistService) GetArtistWithCache(artistID uuid.UUID) (*artists_models.Artist, error) {
	artistIDStr := artistID.String()

	// Tier 1: check cache
	if cachedArtist := s.artistCacheUtil.Get(artistIDStr); cachedArtist != nil {
		if cachedArtist.IsNotExists {
			return nil, ErrArtistNotFound
		}

		return cachedArtist, nil
	}

	// Tier 2: database lookup with singleflight protection (prevents thundering herd)
	result, err, _ := s.singleflight.Do(artistIDStr, func() (any, error) {
		return s.artistRepository.GetArtistByID(artistID)
	})

	if err != nil {
		// Cache the miss to prevent future DB hits
		notExists := &artists_models.Artist{
			ID:          artistID,
			IsNotExists: true,
		}
		s.artistCacheUtil.Set(artistIDStr, notExists)
		return nil, ErrArtistNotFound
	}

	artist, ok := result.(*artists_models.Artist)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Artist")
	}

	s.artistCacheUtil.Set(artistIDStr, artist)

	return artist, nil
}

func (s *ArtistService) GetAllArtists() ([]*artists_models.Artist, error) {
	return s.artistRepository.GetAllArtists()
}
