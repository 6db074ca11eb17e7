package artists_controllers

import (
	"errors"
	"net/http"

	artists_services "marca/internal/features/artists/services"

	"github.com/gin-gonic/gin"
)

func respondWithServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, artists_services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, artists_services.ErrArtistNotFound),
		errors.Is(err, artists_services.ErrMembershipNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, artists_services.ErrDuplicateMembership),
		errors.Is(err, artists_services.ErrLastOwner):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, artists_services.ErrSelfModification),
		errors.Is(err, artists_services.ErrSelfRemoval):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
