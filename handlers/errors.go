package handlers

import (
	"errors"
	"net/http"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/models"
	"github.com/LovationAdmin/buildadvisor-api/services"
	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Contract errors from
// the caller are 400s; anything unexpected is logged and hidden.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownPart),
		errors.Is(err, services.ErrUnknownPreset),
		errors.Is(err, models.ErrTargetShape),
		errors.Is(err, config.ErrUnknownRegion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBuildNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Build not found"})
	default:
		utils.SafeError("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
