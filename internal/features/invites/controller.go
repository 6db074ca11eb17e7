package invites

import (
	"errors"
	"net/http"

	artists_services "marca/internal/features/artists/services"
	users_middleware "marca/internal/features/users/middleware"
	users_models "marca/internal/features/users/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InviteController struct {
	inviteService *InviteService
}

func (c *InviteController) RegisterRoutes(router *gin.RouterGroup) {
	inviteRoutes := router.Group("/invites")

	inviteRoutes.POST("/artists/:artistId", c.CreateInvite)
	inviteRoutes.GET("/sent", c.ListSentInvites)
	inviteRoutes.GET("/received", c.ListReceivedInvites)
	inviteRoutes.POST("/:id/accept", c.AcceptInvite)
	inviteRoutes.POST("/:id/decline", c.DeclineInvite)
	inviteRoutes.POST("/:id/cancel", c.CancelInvite)
}

// CreateInvite
// @Summary Invite a user to an artist
// @Description Create a pending invite carrying the role it should grant
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artistId path string true "Artist ID"
// @Param request body CreateInviteRequestDTO true "Invite data"
// @Success 200 {object} Invite
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /invites/artists/{artistId} [post]
func (c *InviteController) CreateInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	artistIDStr := ctx.Param("artistId")
	artistID, err := uuid.Parse(artistIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist ID"})
		return
	}

	var request CreateInviteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if !request.Role.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	invite, err := c.inviteService.CreateInvite(artistID, &request, user)
	if err != nil {
		respondWithInviteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, invite)
}

// ListSentInvites
// @Summary List invites sent by the current user
// @Description Invites partitioned into pending and resolved, newest first
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListInvitesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /invites/sent [get]
func (c *InviteController) ListSentInvites(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.inviteService.ListSentInvites(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invites"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListReceivedInvites
// @Summary List invites received by the current user
// @Description Invites partitioned into pending and resolved, newest first
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListInvitesResponseDTO
// @Failure 401 {object} map[string]string
// @Router /invites/received [get]
func (c *InviteController) ListReceivedInvites(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.inviteService.ListReceivedInvites(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invites"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptInvite
// @Summary Accept an invite
// @Description Accept a pending invite addressed to the current user
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} Invite
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invites/{id}/accept [post]
func (c *InviteController) AcceptInvite(ctx *gin.Context) {
	c.respondToInvite(ctx, c.inviteService.AcceptInvite)
}

// DeclineInvite
// @Summary Decline an invite
// @Description Decline a pending invite addressed to the current user
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} Invite
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invites/{id}/decline [post]
func (c *InviteController) DeclineInvite(ctx *gin.Context) {
	c.respondToInvite(ctx, c.inviteService.DeclineInvite)
}

// CancelInvite
// @Summary Cancel an invite
// @Description Cancel a pending invite sent by the current user
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} Invite
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invites/{id}/cancel [post]
func (c *InviteController) CancelInvite(ctx *gin.Context) {
	c.respondToInvite(ctx, c.inviteService.CancelInvite)
}

func (c *InviteController) respondToInvite(
	ctx *gin.Context,
	respond func(uuid.UUID, *users_models.User) (*Invite, error),
) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	inviteIDStr := ctx.Param("id")
	inviteID, err := uuid.Parse(inviteIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invite ID"})
		return
	}

	invite, err := respond(inviteID, user)
	if err != nil {
		respondWithInviteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, invite)
}

func respondWithInviteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, artists_services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInviteNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicatePendingInvite),
		errors.Is(err, artists_services.ErrDuplicateMembership):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInviteRateLimited):
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
