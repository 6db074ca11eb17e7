package artists_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	artists_dto "marca/internal/features/artists/dto"
	artists_models "marca/internal/features/artists/models"
	artists_repositories "marca/internal/features/artists/repositories"
	"marca/internal/features/audit_logs"
	users_dto "marca/internal/features/users/dto"
	users_enums "marca/internal/features/users/enums"
	users_middleware "marca/internal/features/users/middleware"
	users_services "marca/internal/features/users/services"
	users_testing "marca/internal/features/users/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func CreateTestArtist(name string, owner *users_dto.SignInResponseDTO, router *gin.Engine) *artists_models.Artist {
	artist, _ := CreateTestArtistViaAPI(name, owner, router)
	return artist
}

func CreateTestArtistViaAPI(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) (*artists_models.Artist, string) {
	return createTestArtistViaAPI(name, owner, router, true)
}

func CreateTestArtistViaAPIWithoutSettingsChange(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) (*artists_models.Artist, string) {
	return createTestArtistViaAPI(name, owner, router, false)
}

func createTestArtistViaAPI(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
	enableMemberCreation bool,
) (*artists_models.Artist, string) {
	if enableMemberCreation {
		users_testing.EnableMemberArtistCreation()
		defer users_testing.ResetSettingsToDefaults()
	}

	request := artists_dto.CreateArtistRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/api/v1/artists", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to create artist. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response artists_dto.ArtistResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	artist := &artists_models.Artist{
		ID:   response.ID,
		Name: response.Name,
	}

	return artist, owner.Token
}

func AddMemberToArtist(
	artist *artists_models.Artist,
	member *users_dto.SignInResponseDTO,
	role users_enums.ArtistRole,
	ownerToken string,
	router *gin.Engine,
) {
	request := artists_dto.AddMemberRequestDTO{
		Email: member.Email,
		Role:  role,
	}

	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+ownerToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to add member to artist via API: " + w.Body.String())
	}
}

func AddMemberToArtistViaOwner(
	artist *artists_models.Artist,
	member *users_dto.SignInResponseDTO,
	role users_enums.ArtistRole,
	router *gin.Engine,
) {
	membershipRepo := artists_repositories.GetMembershipRepository()
	artistMembers, err := membershipRepo.GetArtistMembers(artist.ID)
	if err != nil {
		panic("Failed to get artist members: " + err.Error())
	}

	var ownerToken string
	for _, m := range artistMembers {
		if m.Role == users_enums.ArtistRoleOwner {
			userService := users_services.GetUserService()

			owner, err := userService.GetUserByID(m.UserID)
			if err != nil {
				panic("Failed to get owner user: " + err.Error())
			}

			tokenResponse, err := userService.GenerateAccessToken(owner)
			if err != nil {
				panic("Failed to generate owner token: " + err.Error())
			}

			ownerToken = tokenResponse.Token

			break
		}
	}

	if ownerToken == "" {
		panic("No artist owner found")
	}

	AddMemberToArtist(artist, member, role, ownerToken, router)
}

func ChangeMemberRole(
	artist *artists_models.Artist,
	memberUserID uuid.UUID,
	newRole users_enums.ArtistRole,
	changerToken string,
	router *gin.Engine,
) {
	request := artists_dto.ChangeMemberRoleRequestDTO{
		Role: newRole,
	}

	w := MakeAPIRequest(
		router,
		"PUT",
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s/role", artist.ID.String(), memberUserID.String()),
		"Bearer "+changerToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to change member role via API: " + w.Body.String())
	}
}

func RemoveMemberFromArtist(
	artist *artists_models.Artist,
	memberUserID uuid.UUID,
	removerToken string,
	router *gin.Engine,
) {
	w := MakeAPIRequest(
		router,
		"DELETE",
		fmt.Sprintf("/api/v1/artists/memberships/%s/members/%s", artist.ID.String(), memberUserID.String()),
		"Bearer "+removerToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to remove member from artist via API: " + w.Body.String())
	}
}

func GetArtistMembers(
	artist *artists_models.Artist,
	requesterToken string,
	router *gin.Engine,
) *artists_dto.GetMembersResponseDTO {
	w := MakeAPIRequest(
		router,
		"GET",
		"/api/v1/artists/memberships/"+artist.ID.String()+"/members",
		"Bearer "+requesterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to get artist members via API: " + w.Body.String())
	}

	var response artists_dto.GetMembersResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func DeleteArtist(artist *artists_models.Artist, deleterToken string, router *gin.Engine) {
	w := MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/artists/"+artist.ID.String(),
		"Bearer "+deleterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to delete artist via API: " + w.Body.String())
	}
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
