package artists_controllers

import (
	"net/http"
	"testing"

	artists_dto "marca/internal/features/artists/dto"
	artists_models "marca/internal/features/artists/models"
	artists_testing "marca/internal/features/artists/testing"
	users_enums "marca/internal/features/users/enums"
	users_testing "marca/internal/features/users/testing"
	test_utils "marca/internal/util/testing"

	"github.com/stretchr/testify/assert"
)

// CreateArtist Tests

func Test_CreateArtist_WhenMemberCreationEnabled_ArtistCreated(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	users_testing.EnableMemberArtistCreation()
	defer users_testing.ResetSettingsToDefaults()

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	request := artists_dto.CreateArtistRequestDTO{
		Name:  "The Test Band",
		Genre: "indie rock",
	}

	var response artists_dto.ArtistResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists",
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "The Test Band", response.Name)
	assert.Equal(t, "indie rock", response.Genre)
	assert.Equal(t, users_enums.ArtistRoleOwner, *response.UserRole)
}

func Test_CreateArtist_WhenMemberCreationDisabled_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	users_testing.DisableMemberArtistCreation()
	defer users_testing.ResetSettingsToDefaults()

	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	request := artists_dto.CreateArtistRequestDTO{
		Name: "Forbidden Band",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists",
		"Bearer "+user.Token,
		request,
		http.StatusForbidden,
	)
}

func Test_CreateArtist_WhenUserIsPlatformAdmin_CreatedRegardlessOfSettings(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	users_testing.DisableMemberArtistCreation()
	defer users_testing.ResetSettingsToDefaults()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	request := artists_dto.CreateArtistRequestDTO{
		Name: "Admin Band",
	}

	var response artists_dto.ArtistResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists",
		"Bearer "+admin.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Admin Band", response.Name)
}

// GetArtist Tests

func Test_GetArtist_WhenUserIsMember_ReturnsArtist(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Visible Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleViewer, router)

	var response artists_models.Artist
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, artist.ID, response.ID)
	assert.Equal(t, "Visible Band", response.Name)
}

func Test_GetArtist_WhenUserIsNotMember_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	stranger := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Hidden Band", owner, router)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+stranger.Token,
		http.StatusForbidden,
	)
}

func Test_GetArtist_WhenUserIsPlatformAdmin_ReturnsArtist(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Any Band", owner, router)

	var response artists_models.Artist
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+admin.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, artist.ID, response.ID)
}

// GetArtists Tests

func Test_GetArtists_ReturnsOnlyUsersArtists(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	otherOwner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("My Band", owner, router)
	otherArtist, _ := artists_testing.CreateTestArtistViaAPI("Other Band", otherOwner, router)

	var response artists_dto.ListArtistsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	artistIDs := make(map[string]bool)
	for _, a := range response.Artists {
		artistIDs[a.ID.String()] = true
	}

	assert.True(t, artistIDs[artist.ID.String()])
	assert.False(t, artistIDs[otherArtist.ID.String()])
}

// UpdateArtist Tests

func Test_UpdateArtist_WhenUserIsOwner_ArtistUpdated(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Old Name", owner, router)

	request := artists_dto.UpdateArtistRequestDTO{
		Name:  "New Name",
		Genre: "jazz",
		Bio:   "Now with horns",
	}

	var response artists_models.Artist
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "New Name", response.Name)
	assert.Equal(t, "jazz", response.Genre)
}

func Test_UpdateArtist_WhenUserIsEditor_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Locked Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)

	request := artists_dto.UpdateArtistRequestDTO{
		Name: "Hijacked Name",
	}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+editor.Token,
		request,
		http.StatusForbidden,
	)
}

// DeleteArtist Tests

func Test_DeleteArtist_WhenUserIsOwner_ArtistDeleted(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Doomed Band", owner, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		http.StatusOK,
	)
	assert.Contains(t, resp.Body.String(), "Artist deleted successfully")

	// The artist is gone for everyone afterwards
	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		http.StatusForbidden,
	)
}

func Test_DeleteArtist_WhenUserIsArtistAdmin_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artistAdmin := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Protected Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, artistAdmin, users_enums.ArtistRoleAdmin, router)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+artistAdmin.Token,
		http.StatusForbidden,
	)
}

func Test_DeleteArtist_WhenUserIsPlatformAdmin_ArtistDeleted(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Removable Band", owner, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+admin.Token,
		http.StatusOK,
	)
	assert.Contains(t, resp.Body.String(), "Artist deleted successfully")
}
