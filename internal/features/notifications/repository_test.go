package notifications

import (
	"testing"

	users_enums "marca/internal/features/users/enums"
	users_testing "marca/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotification(t *testing.T, userID uuid.UUID, message string) *Notification {
	notification := &Notification{
		UserID:   userID,
		Kind:     NotificationKindInviteReceived,
		Message:  message,
		EntityID: uuid.New(),
	}

	repository := &NotificationRepository{}
	require.NoError(t, repository.Create(notification))

	return notification
}

func Test_ListByUser_ReturnsNewestFirst(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	repository := &NotificationRepository{}

	createTestNotification(t, user.UserID, "first")
	createTestNotification(t, user.UserID, "second")

	notifications, err := repository.ListByUser(user.UserID, 10, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	assert.False(t, notifications[0].CreatedAt.Before(notifications[1].CreatedAt))
}

func Test_ListByUser_DoesNotReturnOtherUsersNotifications(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	otherUser := users_testing.CreateTestUser(users_enums.UserRoleMember)
	repository := &NotificationRepository{}

	createTestNotification(t, otherUser.UserID, "not yours")

	notifications, err := repository.ListByUser(user.UserID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func Test_CountUnread_DecreasesAfterMarkRead(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	repository := &NotificationRepository{}

	notification := createTestNotification(t, user.UserID, "unread")

	count, err := repository.CountUnread(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rowsChanged, err := repository.MarkRead(user.UserID, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rowsChanged)

	count, err = repository.CountUnread(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func Test_MarkRead_WhenNotificationBelongsToAnotherUser_ChangesNothing(t *testing.T) {
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	intruder := users_testing.CreateTestUser(users_enums.UserRoleMember)
	repository := &NotificationRepository{}

	notification := createTestNotification(t, owner.UserID, "private")

	rowsChanged, err := repository.MarkRead(intruder.UserID, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rowsChanged)

	count, err := repository.CountUnread(owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func Test_MarkAllRead_ClearsEveryUnreadNotification(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	repository := &NotificationRepository{}

	createTestNotification(t, user.UserID, "one")
	createTestNotification(t, user.UserID, "two")
	createTestNotification(t, user.UserID, "three")

	require.NoError(t, repository.MarkAllRead(user.UserID))

	count, err := repository.CountUnread(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
