package artists_controllers

import (
	"net/http"

	artists_dto "marca/internal/features/artists/dto"
	artists_services "marca/internal/features/artists/services"
	users_middleware "marca/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArtistController struct {
	artistService *artists_services.ArtistService
}

func (c *ArtistController) RegisterRoutes(router *gin.RouterGroup) {
	artistRoutes := router.Group("/artists")

	artistRoutes.POST("", c.CreateArtist)
	artistRoutes.GET("", c.GetArtists)
	artistRoutes.GET("/:id", c.GetArtist)
	artistRoutes.PUT("/:id", c.UpdateArtist)
	artistRoutes.DELETE("/:id", c.DeleteArtist)
}

// CreateArtist
// @Summary Create a new artist
// @Description Create a new artist; the creator becomes its owner
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body artists_dto.CreateArtistRequestDTO true "Artist creation data"
// @Success 200 {object} artists_dto.ArtistResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /artists [post]
func (c *ArtistController) CreateArtist(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request artists_dto.CreateArtistRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.artistService.CreateArtist(&request, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetArtists
// @Summary List user's artists
// @Description Get list of artists the user is a member of
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} artists_dto.ListArtistsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /artists [get]
func (c *ArtistController) GetArtists(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.artistService.GetUserArtists(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve artists"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetArtist
// @Summary Get artist details
// @Description Get detailed information about a specific artist
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artist ID"
// @Success 200 {object} artists_models.Artist
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /artists/{id} [get]
func (c *ArtistController) GetArtist(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	artistIDStr := ctx.Param("id")
	artistID, err := uuid.Parse(artistIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist ID"})
		return
	}

	artist, err := c.artistService.GetArtist(artistID, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, artist)
}

// UpdateArtist
// @Summary Update artist
// @Description Update artist profile (owner only)
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artist ID"
// @Param request body artists_dto.UpdateArtistRequestDTO true "Artist update data"
// @Success 200 {object} artists_models.Artist
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /artists/{id} [put]
func (c *ArtistController) UpdateArtist(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	artistIDStr := ctx.Param("id")
	artistID, err := uuid.Parse(artistIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist ID"})
		return
	}

	var request artists_dto.UpdateArtistRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updatedArtist, err := c.artistService.UpdateArtist(artistID, &request, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedArtist)
}

// DeleteArtist
// @Summary Delete artist
// @Description Delete an artist and all its memberships (owner only)
// @Tags artists
// @Security BearerAuth
// @Param id path string true "Artist ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /artists/{id} [delete]
func (c *ArtistController) DeleteArtist(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	artistIDStr := ctx.Param("id")
	artistID, err := uuid.Parse(artistIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artist ID"})
		return
	}

	if err := c.artistService.DeleteArtist(artistID, user); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Artist deleted successfully"})
}
