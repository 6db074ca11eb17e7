package artists_controllers

import (
	"fmt"
	"net/http"
	"testing"

	artists_dto "marca/internal/features/artists/dto"
	artists_testing "marca/internal/features/artists/testing"
	users_enums "marca/internal/features/users/enums"
	users_testing "marca/internal/features/users/testing"
	test_utils "marca/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ListMembers Tests

func Test_GetArtistMembers_WhenUserIsArtistMember_ReturnsMembers(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleViewer, router)

	var response artists_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.GreaterOrEqual(t, len(response.Members), 2) // Owner + member

	memberUserIDs := make([]uuid.UUID, len(response.Members))
	for i, m := range response.Members {
		memberUserIDs[i] = m.UserID
	}
	assert.Contains(t, memberUserIDs, owner.UserID)
	assert.Contains(t, memberUserIDs, member.UserID)
}

func Test_GetArtistMembers_WhenUserIsNotArtistMember_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	nonMember := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+nonMember.Token,
		http.StatusForbidden,
	)
	assert.Contains(t, resp.Body.String(), "insufficient permissions")
}

func Test_GetArtistMembers_WhenUserIsPlatformAdmin_ReturnsMembers(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	var response artists_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+admin.Token,
		http.StatusOK,
		&response,
	)

	assert.GreaterOrEqual(t, len(response.Members), 1) // At least the owner
}

func Test_GetArtistMembers_WithInvalidArtistID_ReturnsBadRequest(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/artists/memberships/invalid-uuid/members",
		"Bearer "+user.Token,
		http.StatusBadRequest,
	)
	assert.Contains(t, resp.Body.String(), "Invalid artist ID")
}

// AddMember Tests

func Test_AddMemberToArtist_WhenUserIsOwner_MemberAdded(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	newMember := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	request := artists_dto.AddMemberRequestDTO{
		Email: newMember.Email,
		Role:  users_enums.ArtistRoleViewer,
	}

	var response artists_dto.AddMemberResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, artists_dto.AddStatusAdded, response.Status)
}

func Test_AddMemberToArtist_WhenUserIsArtistAdmin_MemberAdded(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artistAdmin := users_testing.CreateTestUser(users_enums.UserRoleMember)
	newMember := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, artistAdmin, users_enums.ArtistRoleAdmin, router)

	request := artists_dto.AddMemberRequestDTO{
		Email: newMember.Email,
		Role:  users_enums.ArtistRoleEditor,
	}

	var response artists_dto.AddMemberResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+artistAdmin.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, artists_dto.AddStatusAdded, response.Status)
}

func Test_AddMemberToArtist_WhenUserIsEditor_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)
	newMember := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)

	request := artists_dto.AddMemberRequestDTO{
		Email: newMember.Email,
		Role:  users_enums.ArtistRoleViewer,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+editor.Token,
		request,
		http.StatusForbidden,
	)
	assert.Contains(t, resp.Body.String(), "insufficient permissions")
}

func Test_AddMemberToArtist_WhenArtistAdminGrantsOwner_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artistAdmin := users_testing.CreateTestUser(users_enums.UserRoleMember)
	newMember := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, artistAdmin, users_enums.ArtistRoleAdmin, router)

	// Only owners may hand out the OWNER role
	request := artists_dto.AddMemberRequestDTO{
		Email: newMember.Email,
		Role:  users_enums.ArtistRoleOwner,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+artistAdmin.Token,
		request,
		http.StatusForbidden,
	)
	assert.Contains(t, resp.Body.String(), "insufficient permissions")
}

func Test_AddMemberToArtist_WhenUserIsAlreadyMember_ReturnsConflict(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleViewer, router)

	// Try to add the same user again
	request := artists_dto.AddMemberRequestDTO{
		Email: member.Email,
		Role:  users_enums.ArtistRoleViewer,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+owner.Token,
		request,
		http.StatusConflict,
	)
	assert.Contains(t, resp.Body.String(), "user is already a member of this artist")
}

func Test_AddMemberToArtist_WithUnknownEmail_ReturnsInvited(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	request := artists_dto.AddMemberRequestDTO{
		Email: fmt.Sprintf("newmember-%s@example.com", uuid.New().String()),
		Role:  users_enums.ArtistRoleViewer,
	}

	var response artists_dto.AddMemberResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, artists_dto.AddStatusInvited, response.Status)
}

// ChangeMemberRole Tests

func Test_ChangeMemberRole_WhenUserIsOwner_RoleChanged(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleViewer, router)

	request := artists_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ArtistRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s/role", artist.ID.String(), member.UserID.String()),
		"Bearer "+ownerToken,
		request,
		http.StatusOK,
	)
	assert.Contains(t, resp.Body.String(), "Member role changed successfully")
}

func Test_ChangeMemberRole_WhenChangingOwnRole_ReturnsBadRequest(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	request := artists_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ArtistRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s/role", artist.ID.String(), owner.UserID.String()),
		"Bearer "+ownerToken,
		request,
		http.StatusBadRequest,
	)
	assert.Contains(t, resp.Body.String(), "cannot change your own role")
}

func Test_ChangeMemberRole_WhenDemotingLastOwner_ReturnsConflict(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	request := artists_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ArtistRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s/role", artist.ID.String(), owner.UserID.String()),
		"Bearer "+admin.Token,
		request,
		http.StatusConflict,
	)
	assert.Contains(t, resp.Body.String(), "artist must keep at least one owner")
}

func Test_ChangeMemberRole_WhenTwoOwnersExist_DemotionSucceeds(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	secondOwner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, secondOwner, users_enums.ArtistRoleOwner, router)

	request := artists_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ArtistRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s/role", artist.ID.String(), secondOwner.UserID.String()),
		"Bearer "+ownerToken,
		request,
		http.StatusOK,
	)
	assert.Contains(t, resp.Body.String(), "Member role changed successfully")
}

func Test_ChangeMemberRole_WhenTargetIsNotMember_ReturnsNotFound(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	stranger := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	request := artists_dto.ChangeMemberRoleRequestDTO{
		Role: users_enums.ArtistRoleEditor,
	}

	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s/role", artist.ID.String(), stranger.UserID.String()),
		"Bearer "+ownerToken,
		request,
		http.StatusNotFound,
	)
	assert.Contains(t, resp.Body.String(), "user is not a member of this artist")
}

// RemoveMember Tests

func Test_RemoveMemberFromArtist_WhenUserIsOwner_MemberRemoved(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleViewer, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s", artist.ID.String(), member.UserID.String()),
		"Bearer "+ownerToken,
		http.StatusOK,
	)
	assert.Contains(t, resp.Body.String(), "Member removed successfully")
}

func Test_RemoveMemberFromArtist_WhenRemovingSelf_ReturnsBadRequest(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s", artist.ID.String(), owner.UserID.String()),
		"Bearer "+ownerToken,
		http.StatusBadRequest,
	)
	assert.Contains(t, resp.Body.String(), "cannot remove yourself")
}

func Test_RemoveMemberFromArtist_WhenRemovingLastOwnerAsAdmin_ReturnsConflict(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s", artist.ID.String(), owner.UserID.String()),
		"Bearer "+admin.Token,
		http.StatusConflict,
	)
	assert.Contains(t, resp.Body.String(), "artist must keep at least one owner")
}

func Test_RemoveMemberFromArtist_WhenUserIsEditor_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleViewer, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s", artist.ID.String(), member.UserID.String()),
		"Bearer "+editor.Token,
		http.StatusForbidden,
	)
	assert.Contains(t, resp.Body.String(), "insufficient permissions")
}

// LeaveArtist Tests

func Test_LeaveArtist_WhenUserIsViewer_MembershipRemoved(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleViewer, router)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/leave",
		"Bearer "+member.Token,
		nil,
		http.StatusOK,
	)
	assert.Contains(t, resp.Body.String(), "Left artist successfully")

	members := artists_testing.GetArtistMembers(artist, ownerToken, router)
	for _, m := range members.Members {
		assert.NotEqual(t, member.UserID, m.UserID)
	}
}

func Test_LeaveArtist_WhenUserIsLastOwner_ReturnsConflict(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/leave",
		"Bearer "+ownerToken,
		nil,
		http.StatusConflict,
	)
	assert.Contains(t, resp.Body.String(), "artist must keep at least one owner")
}

// TransferOwnership Tests

func Test_TransferOwnership_WhenUserIsOwner_OwnershipTransferred(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleAdmin, router)

	request := artists_dto.TransferOwnershipRequestDTO{
		NewOwnerEmail: member.Email,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/transfer-ownership",
		"Bearer "+ownerToken,
		request,
		http.StatusOK,
	)
	assert.Contains(t, resp.Body.String(), "Ownership transferred successfully")

	// Verify there is exactly one owner and the previous owner was demoted
	members := artists_testing.GetArtistMembers(artist, member.Token, router)

	ownerCount := 0
	for _, m := range members.Members {
		if m.Role == users_enums.ArtistRoleOwner {
			ownerCount++
			assert.Equal(t, member.UserID, m.UserID)
		}
		if m.UserID == owner.UserID {
			assert.Equal(t, users_enums.ArtistRoleAdmin, m.Role)
		}
	}
	assert.Equal(t, 1, ownerCount)
}

func Test_TransferOwnership_WhenUserIsArtistAdmin_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	artistAdmin := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, artistAdmin, users_enums.ArtistRoleAdmin, router)
	artists_testing.AddMemberToArtistViaOwner(artist, member, users_enums.ArtistRoleAdmin, router)

	request := artists_dto.TransferOwnershipRequestDTO{
		NewOwnerEmail: member.Email,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/transfer-ownership",
		"Bearer "+artistAdmin.Token,
		request,
		http.StatusForbidden,
	)
	assert.Contains(t, resp.Body.String(), "insufficient permissions")
}

func Test_TransferOwnership_WhenNewOwnerIsNotMember_ReturnsNotFound(t *testing.T) {
	router := artists_testing.CreateTestRouter(GetArtistController(), GetMembershipController())
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	nonMember := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Test Band", owner, router)

	request := artists_dto.TransferOwnershipRequestDTO{
		NewOwnerEmail: nonMember.Email,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/artists/memberships/"+artist.ID.String()+"/transfer-ownership",
		"Bearer "+ownerToken,
		request,
		http.StatusNotFound,
	)
	assert.Contains(t, resp.Body.String(), "user is not a member of this artist")
}
