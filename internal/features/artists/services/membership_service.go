package artists_services

import (
	"errors"
	"fmt"

	artists_dto "marca/internal/features/artists/dto"
	artists_interfaces "marca/internal/features/artists/interfaces"
	artists_models "marca/internal/features/artists/models"
	artists_repositories "marca/internal/features/artists/repositories"
	audit_logs "marca/internal/features/audit_logs"
	"marca/internal/features/permissions"
	users_enums "marca/internal/features/users/enums"
	users_models "marca/internal/features/users/models"
	users_services "marca/internal/features/users/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipService struct {
	membershipRepository *artists_repositories.MembershipRepository
	artistRepository     *artists_repositories.ArtistRepository
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
	artistService        *ArtistService
	permissionService    *permissions.PermissionService
	membershipNotifier   artists_interfaces.MembershipNotifier
}

func (s *MembershipService) SetMembershipNotifier(notifier artists_interfaces.MembershipNotifier) {
	s.membershipNotifier = notifier
}

func (s *MembershipService) GetMembers(
	artistID uuid.UUID,
	user *users_models.User,
) (*artists_dto.GetMembersResponseDTO, error) {
	canAccess, _, err := s.artistService.CanUserAccessArtist(artistID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, ErrForbidden
	}

	members, err := s.membershipRepository.GetArtistMembers(artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist members: %w", err)
	}

	membersList := make([]artists_dto.ArtistMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &artists_dto.GetMembersResponseDTO{
		Members: membersList,
	}, nil
}

func (s *MembershipService) AddMember(
	artistID uuid.UUID,
	request *artists_dto.AddMemberRequestDTO,
	addedBy *users_models.User,
) (*artists_dto.AddMemberResponseDTO, error) {
	if err := s.ValidateCanManageMembership(artistID, addedBy, request.Role); err != nil {
		return nil, err
	}

	targetUser, err := s.userService.GetUserByEmail(request.Email)
	if err != nil {
		return nil, err
	}

	if targetUser == nil {
		// Unknown email: create a placeholder account that activates on sign up
		invitedUser, err := s.userService.CreateInvitedPlaceholder(request.Email)
		if err != nil {
			return nil, err
		}

		if err := s.GrantMembership(artistID, invitedUser.ID, request.Role); err != nil {
			return nil, err
		}

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("User invited to artist: %s and added as %s", request.Email, request.Role),
			&addedBy.ID,
			&artistID,
		)

		return &artists_dto.AddMemberResponseDTO{
			Status: artists_dto.AddStatusInvited,
		}, nil
	}

	if err := s.GrantMembership(artistID, targetUser.ID, request.Role); err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User added to artist: %s as %s", targetUser.Email, request.Role),
		&addedBy.ID,
		&artistID,
	)

	return &artists_dto.AddMemberResponseDTO{
		Status: artists_dto.AddStatusAdded,
	}, nil
}

// GrantMembership creates a membership without checking the caller's
// capabilities. Invite acceptance uses it: authority was checked when the
// invite was created and the role was frozen then.
func (s *MembershipService) GrantMembership(
	artistID uuid.UUID,
	userID uuid.UUID,
	role users_enums.ArtistRole,
) error {
	existingMembership, _ := s.membershipRepository.GetMembershipByUserAndArtist(userID, artistID)
	if existingMembership != nil {
		return ErrDuplicateMembership
	}

	membership := &artists_models.ArtistMembership{
		UserID:   userID,
		ArtistID: artistID,
		Role:     role,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	s.permissionService.Invalidate(userID, artistID)

	if s.membershipNotifier != nil {
		s.membershipNotifier.OnMemberAdded(artistID, userID, role)
	}

	return nil
}

func (s *MembershipService) ChangeMemberRole(
	artistID uuid.UUID,
	memberUserID uuid.UUID,
	request *artists_dto.ChangeMemberRoleRequestDTO,
	changedBy *users_models.User,
) error {
	if err := s.ValidateCanManageMembership(artistID, changedBy, request.Role); err != nil {
		return err
	}

	if memberUserID == changedBy.ID {
		return ErrSelfModification
	}

	existingMembership, err := s.membershipRepository.GetMembershipByUserAndArtist(memberUserID, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}

		return fmt.Errorf("failed to get membership: %w", err)
	}

	targetUser, err := s.userService.GetUserByID(memberUserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	rowsChanged, err := s.membershipRepository.UpdateMemberRoleGuarded(memberUserID, artistID, request.Role)
	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	// The membership exists, so a refused update means the owner-count
	// guard fired.
	if rowsChanged == 0 {
		return ErrLastOwner
	}

	s.permissionService.Invalidate(memberUserID, artistID)

	if s.membershipNotifier != nil {
		s.membershipNotifier.OnMemberRoleChanged(artistID, memberUserID, request.Role)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf(
			"Member role changed: %s from %s to %s",
			targetUser.Email,
			existingMembership.Role,
			request.Role,
		),
		&changedBy.ID,
		&artistID,
	)

	return nil
}

func (s *MembershipService) RemoveMember(
	artistID uuid.UUID,
	memberUserID uuid.UUID,
	removedBy *users_models.User,
) error {
	if removedBy.Role != users_enums.UserRoleAdmin &&
		!s.permissionService.Check(removedBy.ID, artistID, permissions.CapManageMembers) {
		return ErrForbidden
	}

	if memberUserID == removedBy.ID {
		return ErrSelfRemoval
	}

	if _, err := s.membershipRepository.GetMembershipByUserAndArtist(memberUserID, artistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}

		return fmt.Errorf("failed to get membership: %w", err)
	}

	targetUser, err := s.userService.GetUserByID(memberUserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	rowsRemoved, err := s.membershipRepository.RemoveMemberGuarded(memberUserID, artistID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if rowsRemoved == 0 {
		return ErrLastOwner
	}

	s.permissionService.Invalidate(memberUserID, artistID)

	if s.membershipNotifier != nil {
		s.membershipNotifier.OnMemberRemoved(artistID, memberUserID)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member removed from artist: %s", targetUser.Email),
		&removedBy.ID,
		&artistID,
	)

	return nil
}

// LeaveArtist removes the caller's own membership. The last owner cannot
// leave without transferring ownership first.
func (s *MembershipService) LeaveArtist(artistID uuid.UUID, user *users_models.User) error {
	if _, err := s.membershipRepository.GetMembershipByUserAndArtist(user.ID, artistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}

		return fmt.Errorf("failed to get membership: %w", err)
	}

	rowsRemoved, err := s.membershipRepository.RemoveMemberGuarded(user.ID, artistID)
	if err != nil {
		return fmt.Errorf("failed to leave artist: %w", err)
	}

	if rowsRemoved == 0 {
		return ErrLastOwner
	}

	s.permissionService.Invalidate(user.ID, artistID)

	if s.membershipNotifier != nil {
		s.membershipNotifier.OnMemberRemoved(artistID, user.ID)
	}

	s.auditLogService.WriteAuditLog("Member left artist", &user.ID, &artistID)

	return nil
}

func (s *MembershipService) TransferOwnership(
	artistID uuid.UUID,
	request *artists_dto.TransferOwnershipRequestDTO,
	user *users_models.User,
) error {
	if user.Role != users_enums.UserRoleAdmin &&
		!s.permissionService.Check(user.ID, artistID, permissions.CapManageArtist) {
		return ErrForbidden
	}

	newOwner, err := s.userService.GetUserByEmail(request.NewOwnerEmail)
	if err != nil {
		return fmt.Errorf("failed to get new owner: %w", err)
	}

	if newOwner == nil {
		return ErrMembershipNotFound
	}

	if _, err := s.membershipRepository.GetMembershipByUserAndArtist(newOwner.ID, artistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}

		return fmt.Errorf("failed to get membership: %w", err)
	}

	currentOwner, err := s.membershipRepository.GetArtistOwner(artistID)
	if err != nil {
		return fmt.Errorf("failed to find current artist owner: %w", err)
	}

	// Promote first so the owner count never drops to zero in between.
	if _, err := s.membershipRepository.UpdateMemberRoleGuarded(
		newOwner.ID, artistID, users_enums.ArtistRoleOwner); err != nil {
		return fmt.Errorf("failed to update new owner role: %w", err)
	}

	if _, err := s.membershipRepository.UpdateMemberRoleGuarded(
		currentOwner.UserID, artistID, users_enums.ArtistRoleAdmin); err != nil {
		return fmt.Errorf("failed to update previous owner role: %w", err)
	}

	s.permissionService.Invalidate(newOwner.ID, artistID)
	s.permissionService.Invalidate(currentOwner.UserID, artistID)

	if s.membershipNotifier != nil {
		s.membershipNotifier.OnMemberRoleChanged(artistID, newOwner.ID, users_enums.ArtistRoleOwner)
		s.membershipNotifier.OnMemberRoleChanged(artistID, currentOwner.UserID, users_enums.ArtistRoleAdmin)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Artist ownership transferred to: %s", newOwner.Email),
		&user.ID,
		&artistID,
	)

	return nil
}

// ValidateCanManageMembership checks that the user may manage members of the
// artist, and additionally that granting the given role is within their
// authority: only owners hand out the OWNER role.
func (s *MembershipService) ValidateCanManageMembership(
	artistID uuid.UUID,
	user *users_models.User,
	changesRoleTo users_enums.ArtistRole,
) error {
	if user.Role == users_enums.UserRoleAdmin {
		return nil
	}

	if !s.permissionService.Check(user.ID, artistID, permissions.CapManageMembers) {
		return ErrForbidden
	}

	if changesRoleTo == users_enums.ArtistRoleOwner &&
		!s.permissionService.Check(user.ID, artistID, permissions.CapManageArtist) {
		return ErrForbidden
	}

	return nil
}
