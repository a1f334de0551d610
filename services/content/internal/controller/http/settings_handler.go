package http

import (
	"net/http"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
	logger          *logger.Logger
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
		logger:          logger,
	}
}

// GetSettings godoc
// @Summary      Get site settings
// @Description  Returns the settings singleton, creating it with defaults on first read
// @Tags         settings
// @Produce      json
// @Success      200  {object}  entity.SiteSettings
// @Router       /site-settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsUseCase.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update site settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.SettingsPatch true "Fields to change"
// @Success      200  {object}  entity.SiteSettings
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/site-settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch entity.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	settings, err := h.settingsUseCase.UpdateSettings(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
