package permissions

import (
	"testing"
	"time"

	artists_models "marca/internal/features/artists/models"
	artists_repositories "marca/internal/features/artists/repositories"
	users_enums "marca/internal/features/users/enums"
	users_testing "marca/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createArtistWithMembership(t *testing.T, userID uuid.UUID, role users_enums.ArtistRole) uuid.UUID {
	artist := &artists_models.Artist{
		ID:        uuid.New(),
		Name:      "Permission Test Band " + uuid.New().String()[:8],
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, artists_repositories.GetArtistRepository().CreateArtist(artist))

	membership := &artists_models.ArtistMembership{
		ID:        uuid.New(),
		UserID:    userID,
		ArtistID:  artist.ID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, artists_repositories.GetMembershipRepository().CreateMembership(membership))

	return artist.ID
}

func Test_Check_WhenUserHasNoMembership_Denies(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	allowed := GetPermissionService().Check(user.UserID, uuid.New(), CapViewEvents)

	assert.False(t, allowed)
}

func Test_Resolve_WhenUserHasNoMembership_ReturnsNil(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	snapshot, err := GetPermissionService().Resolve(user.UserID, uuid.New())

	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func Test_Resolve_WhenUserIsViewer_SnapshotMatchesRole(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artistID := createArtistWithMembership(t, user.UserID, users_enums.ArtistRoleViewer)

	snapshot, err := GetPermissionService().Resolve(user.UserID, artistID)

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, users_enums.ArtistRoleViewer, snapshot.Role)
	assert.True(t, snapshot.Capabilities.CanViewEvents)
	assert.False(t, snapshot.Capabilities.CanViewFinancials)
}

func Test_Check_WhenUserIsEditor_GrantsEventCapabilitiesOnly(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artistID := createArtistWithMembership(t, user.UserID, users_enums.ArtistRoleEditor)

	service := GetPermissionService()

	assert.True(t, service.Check(user.UserID, artistID, CapCreateEvents))
	assert.True(t, service.Check(user.UserID, artistID, CapViewFinancials))
	assert.False(t, service.Check(user.UserID, artistID, CapManageMembers))
	assert.False(t, service.Check(user.UserID, artistID, CapDeleteArtist))
}

func Test_Invalidate_AfterRoleChange_ChecksReflectNewRole(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artistID := createArtistWithMembership(t, user.UserID, users_enums.ArtistRoleViewer)

	service := GetPermissionService()
	require.False(t, service.Check(user.UserID, artistID, CapCreateEvents))

	rows, err := artists_repositories.GetMembershipRepository().
		UpdateMemberRoleGuarded(user.UserID, artistID, users_enums.ArtistRoleEditor)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	// Stale snapshot still cached until invalidated
	service.Invalidate(user.UserID, artistID)

	assert.True(t, service.Check(user.UserID, artistID, CapCreateEvents))
}
