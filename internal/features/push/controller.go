package push

import (
	"net/http"

	users_middleware "marca/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type PushController struct {
	pushService *PushService
}

func (c *PushController) RegisterRoutes(router *gin.RouterGroup) {
	pushRoutes := router.Group("/push")

	pushRoutes.GET("/tokens", c.ListTokens)
	pushRoutes.POST("/tokens", c.RegisterToken)
	pushRoutes.DELETE("/tokens/:token", c.RemoveToken)
}

// ListTokens
// @Summary List the current user's device tokens
// @Tags push
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListDeviceTokensResponseDTO
// @Failure 401 {object} map[string]string
// @Router /push/tokens [get]
func (c *PushController) ListTokens(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.pushService.GetUserTokens(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve device tokens"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RegisterToken
// @Summary Register a device token for push delivery
// @Tags push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterDeviceTokenRequestDTO true "Device token data"
// @Success 200 {object} DeviceToken
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/tokens [post]
func (c *PushController) RegisterToken(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request RegisterDeviceTokenRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, err := c.pushService.RegisterToken(&request, user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device token"})
		return
	}

	ctx.JSON(http.StatusOK, token)
}

// RemoveToken
// @Summary Remove a device token
// @Tags push
// @Security BearerAuth
// @Param token path string true "Device token value"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /push/tokens/{token} [delete]
func (c *PushController) RemoveToken(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	tokenValue := ctx.Param("token")
	if tokenValue == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid device token"})
		return
	}

	if err := c.pushService.RemoveToken(tokenValue, user); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove device token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Device token removed successfully"})
}
