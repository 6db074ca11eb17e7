package invites

import (
	"errors"
	"fmt"
	"time"

	artists_services "marca/internal/features/artists/services"
	audit_logs "marca/internal/features/audit_logs"
	users_enums "marca/internal/features/users/enums"
	users_models "marca/internal/features/users/models"
	users_services "marca/internal/features/users/services"
	rate_limit "marca/internal/util/rate_limit"

	"github.com/google/uuid"
)

// InviteNotifier receives invite lifecycle events after they are committed.
// Implementations must not fail the originating operation.
type InviteNotifier interface {
	OnInviteCreated(invite *Invite)
	OnInviteResponded(invite *Invite)
}

type InviteService struct {
	inviteRepository  *InviteRepository
	userService       *users_services.UserService
	artistService     *artists_services.ArtistService
	membershipService *artists_services.MembershipService
	auditLogService   *audit_logs.AuditLogService
	rateLimiter       *rate_limit.RateLimiter
	inviteNotifier    InviteNotifier
}

// Invite creation budget per artist: refills one per second, bursts to 20.
const (
	inviteRatePerSecond = 1
	inviteBurstLimit    = 20
)

func (s *InviteService) SetInviteNotifier(notifier InviteNotifier) {
	s.inviteNotifier = notifier
}

func (s *InviteService) CreateInvite(
	artistID uuid.UUID,
	request *CreateInviteRequestDTO,
	sender *users_models.User,
) (*Invite, error) {
	if err := s.membershipService.ValidateCanManageMembership(artistID, sender, request.Role); err != nil {
		return nil, err
	}

	limit, err := s.rateLimiter.CheckRateLimit(artistID, inviteRatePerSecond, inviteBurstLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to check invite rate limit: %w", err)
	}
	if !limit.Allowed {
		return nil, ErrInviteRateLimited
	}

	recipient, err := s.userService.GetUserByEmail(request.Email)
	if err != nil {
		return nil, err
	}

	if recipient == nil {
		// Unknown email: create a placeholder account that activates on sign up
		recipient, err = s.userService.CreateInvitedPlaceholder(request.Email)
		if err != nil {
			return nil, err
		}
	}

	existingRole, err := s.artistService.GetUserArtistRole(artistID, recipient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existingRole != nil {
		return nil, artists_services.ErrDuplicateMembership
	}

	pendingInvite, err := s.inviteRepository.GetPendingInvite(artistID, recipient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invites: %w", err)
	}
	if pendingInvite != nil {
		return nil, ErrDuplicatePendingInvite
	}

	invite := &Invite{
		ID:         uuid.New(),
		ArtistID:   artistID,
		FromUserID: sender.ID,
		ToUserID:   recipient.ID,
		Role:       request.Role,
		Status:     InviteStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.inviteRepository.CreateInvite(invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invite created for %s as %s", recipient.Email, invite.Role),
		&sender.ID,
		&artistID,
	)

	if s.inviteNotifier != nil {
		s.inviteNotifier.OnInviteCreated(invite)
	}

	return invite, nil
}

// AcceptInvite resolves a pending invite addressed to the user and joins
// them to the artist with the invite's frozen role. The sender's current
// standing is irrelevant here: authority was checked at creation.
func (s *InviteService) AcceptInvite(inviteID uuid.UUID, user *users_models.User) (*Invite, error) {
	invite, err := s.claimInvite(inviteID, user.ID, InviteStatusAccepted)
	if err != nil {
		return nil, err
	}

	err = s.membershipService.GrantMembership(invite.ArtistID, user.ID, invite.Role)
	if err != nil && !errors.Is(err, artists_services.ErrDuplicateMembership) {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invite accepted by %s as %s", user.Email, invite.Role),
		&user.ID,
		&invite.ArtistID,
	)

	if s.inviteNotifier != nil {
		s.inviteNotifier.OnInviteResponded(invite)
	}

	return invite, nil
}

func (s *InviteService) DeclineInvite(inviteID uuid.UUID, user *users_models.User) (*Invite, error) {
	invite, err := s.claimInvite(inviteID, user.ID, InviteStatusDeclined)
	if err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invite declined by %s", user.Email),
		&user.ID,
		&invite.ArtistID,
	)

	if s.inviteNotifier != nil {
		s.inviteNotifier.OnInviteResponded(invite)
	}

	return invite, nil
}

func (s *InviteService) CancelInvite(inviteID uuid.UUID, user *users_models.User) (*Invite, error) {
	invite, err := s.inviteRepository.GetInviteByID(inviteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	isSender := invite != nil && invite.FromUserID == user.ID
	if invite == nil || invite.Status != InviteStatusPending ||
		(!isSender && user.Role != users_enums.UserRoleAdmin) {
		return nil, ErrInviteNotFound
	}

	rowsChanged, err := s.inviteRepository.ResolveInviteGuarded(inviteID, InviteStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel invite: %w", err)
	}
	if rowsChanged == 0 {
		return nil, ErrInviteNotFound
	}

	invite.Status = InviteStatusCancelled
	now := time.Now().UTC()
	invite.RespondedAt = &now

	s.auditLogService.WriteAuditLog("Invite cancelled", &user.ID, &invite.ArtistID)

	return invite, nil
}

func (s *InviteService) ListSentInvites(user *users_models.User) (*ListInvitesResponseDTO, error) {
	invites, err := s.inviteRepository.ListSentByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent invites: %w", err)
	}

	return partitionInvites(invites), nil
}

func (s *InviteService) ListReceivedInvites(user *users_models.User) (*ListInvitesResponseDTO, error) {
	invites, err := s.inviteRepository.ListReceivedByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received invites: %w", err)
	}

	return partitionInvites(invites), nil
}

// OnBeforeArtistDeletion cancels the artist's pending invites so nobody can
// join an artist that is being removed.
func (s *InviteService) OnBeforeArtistDeletion(artistID uuid.UUID) error {
	return s.inviteRepository.CancelPendingInvitesForArtist(artistID)
}

// claimInvite atomically moves a pending invite addressed to the user into a
// terminal status. Invites that do not exist, belong to someone else, or
// were already resolved are all reported as not found.
func (s *InviteService) claimInvite(
	inviteID uuid.UUID,
	recipientID uuid.UUID,
	status InviteStatus,
) (*Invite, error) {
	invite, err := s.inviteRepository.GetInviteByID(inviteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	if invite == nil || invite.ToUserID != recipientID || invite.Status != InviteStatusPending {
		return nil, ErrInviteNotFound
	}

	rowsChanged, err := s.inviteRepository.ResolveInviteGuarded(inviteID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invite: %w", err)
	}
	if rowsChanged == 0 {
		return nil, ErrInviteNotFound
	}

	invite.Status = status
	now := time.Now().UTC()
	invite.RespondedAt = &now

	return invite, nil
}

func partitionInvites(invites []*InviteDTO) *ListInvitesResponseDTO {
	response := &ListInvitesResponseDTO{
		Pending:  make([]*InviteDTO, 0),
		Resolved: make([]*InviteDTO, 0),
	}

	for _, invite := range invites {
		if invite.Status == InviteStatusPending {
			response.Pending = append(response.Pending, invite)
		} else {
			response.Resolved = append(response.Resolved, invite)
		}
	}

	return response
}
