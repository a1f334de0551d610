package http

import (
	"net/http"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxMediaSize = 10 << 20

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// UploadMedia godoc
// @Summary      Upload an image
// @Description  Stores a hero or product image and returns its public URL
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file (max 10MB)"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/media [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if file.Size > maxMediaSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 10MB"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	url, err := h.mediaUseCase.Upload(c.Request.Context(), file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
