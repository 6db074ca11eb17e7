package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	artists_services "marca/internal/features/artists/services"
	"marca/internal/features/invites"
	"marca/internal/features/push"
	users_enums "marca/internal/features/users/enums"
	users_models "marca/internal/features/users/models"
	users_services "marca/internal/features/users/services"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	notificationRepository *NotificationRepository
	realtimePublisher      *RealtimePublisher
	artistService          *artists_services.ArtistService
	userService            *users_services.UserService
	pushService            *push.PushService
	logger                 *slog.Logger
}

func (s *NotificationService) ListNotifications(
	user *users_models.User,
	request *ListNotificationsRequestDTO,
) (*ListNotificationsResponseDTO, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	notifications, err := s.notificationRepository.ListByUser(user.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	total, err := s.notificationRepository.CountByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	return &ListNotificationsResponseDTO{
		Notifications: notifications,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

func (s *NotificationService) GetUnreadCount(user *users_models.User) (*UnreadCountResponseDTO, error) {
	count, err := s.notificationRepository.CountUnread(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &UnreadCountResponseDTO{Count: count}, nil
}

func (s *NotificationService) MarkRead(notificationID uuid.UUID, user *users_models.User) error {
	rowsChanged, err := s.notificationRepository.MarkRead(user.ID, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	if rowsChanged == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (s *NotificationService) MarkAllRead(user *users_models.User) error {
	if err := s.notificationRepository.MarkAllRead(user.ID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// StreamEvents relays the user's realtime channel into handler until ctx
// is cancelled.
func (s *NotificationService) StreamEvents(
	ctx context.Context,
	userID uuid.UUID,
	handler func(message []byte),
) error {
	return s.realtimePublisher.Subscribe(ctx, userID, handler)
}

// OnMemberAdded implements artists_interfaces.MembershipNotifier.
func (s *NotificationService) OnMemberAdded(
	artistID, userID uuid.UUID,
	role users_enums.ArtistRole,
) {
	artistName := s.artistName(artistID)

	s.createAndPublish(&Notification{
		UserID:   userID,
		Kind:     NotificationKindMemberAdded,
		Message:  fmt.Sprintf("You joined %s as %s", artistName, role),
		EntityID: artistID,
		ArtistID: &artistID,
	})

	s.realtimePublisher.Publish(userID, &ChangeEvent{
		Kind:       ChangeEventMembership,
		Action:     "ADDED",
		EntityID:   artistID,
		ArtistID:   &artistID,
		OccurredAt: time.Now().UTC(),
	})

	s.pushService.EnqueuePush(userID, "New band membership",
		fmt.Sprintf("You joined %s as %s", artistName, role), nil)
}

// OnMemberRoleChanged implements artists_interfaces.MembershipNotifier.
func (s *NotificationService) OnMemberRoleChanged(
	artistID, userID uuid.UUID,
	newRole users_enums.ArtistRole,
) {
	artistName := s.artistName(artistID)

	s.createAndPublish(&Notification{
		UserID:   userID,
		Kind:     NotificationKindRoleChanged,
		Message:  fmt.Sprintf("Your role in %s is now %s", artistName, newRole),
		EntityID: artistID,
		ArtistID: &artistID,
	})

	s.realtimePublisher.Publish(userID, &ChangeEvent{
		Kind:       ChangeEventMembership,
		Action:     "ROLE_CHANGED",
		EntityID:   artistID,
		ArtistID:   &artistID,
		OccurredAt: time.Now().UTC(),
	})
}

// OnMemberRemoved implements artists_interfaces.MembershipNotifier.
func (s *NotificationService) OnMemberRemoved(artistID, userID uuid.UUID) {
	artistName := s.artistName(artistID)

	s.createAndPublish(&Notification{
		UserID:   userID,
		Kind:     NotificationKindMemberRemoved,
		Message:  fmt.Sprintf("You are no longer a member of %s", artistName),
		EntityID: artistID,
		ArtistID: &artistID,
	})

	s.realtimePublisher.Publish(userID, &ChangeEvent{
		Kind:       ChangeEventMembership,
		Action:     "REMOVED",
		EntityID:   artistID,
		ArtistID:   &artistID,
		OccurredAt: time.Now().UTC(),
	})
}

// OnInviteCreated implements invites.InviteNotifier.
func (s *NotificationService) OnInviteCreated(invite *invites.Invite) {
	artistName := s.artistName(invite.ArtistID)
	message := fmt.Sprintf("You were invited to join %s as %s", artistName, invite.Role)

	s.createAndPublish(&Notification{
		UserID:   invite.ToUserID,
		Kind:     NotificationKindInviteReceived,
		Message:  message,
		EntityID: invite.ID,
		ArtistID: &invite.ArtistID,
	})

	s.realtimePublisher.Publish(invite.ToUserID, &ChangeEvent{
		Kind:       ChangeEventInvite,
		Action:     "CREATED",
		EntityID:   invite.ID,
		ArtistID:   &invite.ArtistID,
		OccurredAt: time.Now().UTC(),
	})

	s.pushService.EnqueuePush(invite.ToUserID, "Band invite", message, nil)
}

// OnInviteResponded implements invites.InviteNotifier.
func (s *NotificationService) OnInviteResponded(invite *invites.Invite) {
	artistName := s.artistName(invite.ArtistID)

	kind := NotificationKindInviteAccepted
	verb := "accepted"
	if invite.Status == invites.InviteStatusDeclined {
		kind = NotificationKindInviteDeclined
		verb = "declined"
	}

	recipientEmail := "A user"
	if recipient, err := s.userService.GetUserByID(invite.ToUserID); err == nil {
		recipientEmail = recipient.Email
	}

	s.createAndPublish(&Notification{
		UserID:   invite.FromUserID,
		Kind:     kind,
		Message:  fmt.Sprintf("%s %s your invite to %s", recipientEmail, verb, artistName),
		EntityID: invite.ID,
		ArtistID: &invite.ArtistID,
	})

	s.realtimePublisher.Publish(invite.FromUserID, &ChangeEvent{
		Kind:       ChangeEventInvite,
		Action:     string(invite.Status),
		EntityID:   invite.ID,
		ArtistID:   &invite.ArtistID,
		OccurredAt: time.Now().UTC(),
	})
}

// OnBeforeArtistDeletion drops notifications referencing the artist.
func (s *NotificationService) OnBeforeArtistDeletion(artistID uuid.UUID) error {
	return s.notificationRepository.DeleteByArtist(artistID)
}

func (s *NotificationService) createAndPublish(notification *Notification) {
	if err := s.notificationRepository.Create(notification); err != nil {
		s.logger.Error("failed to create notification",
			slog.String("userId", notification.UserID.String()),
			slog.String("error", err.Error()))
		return
	}

	s.realtimePublisher.Publish(notification.UserID, &ChangeEvent{
		Kind:       ChangeEventNotification,
		Action:     string(notification.Kind),
		EntityID:   notification.ID,
		ArtistID:   notification.ArtistID,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *NotificationService) artistName(artistID uuid.UUID) string {
	artist, err := s.artistService.GetArtistWithCache(artistID)
	if err != nil {
		return "a band"
	}

	return artist.Name
}
