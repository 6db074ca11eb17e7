package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/healthcheck", c.GetHealthcheck)
}

// GetHealthcheck
// @Summary System healthcheck
// @Description Report process liveness with host memory and disk usage
// @Tags system
// @Produce json
// @Success 200 {object} SystemHealth
// @Router /system/healthcheck [get]
func (c *HealthcheckController) GetHealthcheck(ctx *gin.Context) {
	health, err := c.healthcheckService.GetSystemHealth()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, health)
}
