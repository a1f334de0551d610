package http

import (
	"net/http"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GenerationHandler struct {
	generationUseCase usecase.GenerationUseCase
	logger            *logger.Logger
}

func NewGenerationHandler(generationUseCase usecase.GenerationUseCase, logger *logger.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationUseCase: generationUseCase,
		logger:            logger,
	}
}

type GenerateRequest struct {
	Topic string `json:"topic"`
}

// Generate godoc
// @Summary      Generate a post from a topic
// @Description  Runs the generation pipeline: hero image, article, products and per-product reviews. Takes up to a few minutes. The post is stored with status REVIEW.
// @Tags         generation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateRequest true "Topic"
// @Success      201  {object}  entity.GenerationResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.generationUseCase.Generate(c.Request.Context(), req.Topic)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
