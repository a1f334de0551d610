package http

import (
	"net/http"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewModerationHandler(moderationUseCase usecase.ModerationUseCase, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

// ReviewQueue godoc
// @Summary      Posts awaiting review
// @Description  Posts with status REVIEW, newest first, each with only its REVIEW-status product reviews
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Post
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/review-queue [get]
func (h *ModerationHandler) ReviewQueue(c *gin.Context) {
	posts, err := h.moderationUseCase.ListReviewQueue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ReviewsQueue godoc
// @Summary      Product reviews awaiting approval
// @Description  Product reviews with status REVIEW, newest first, with the owning post id and title
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.ProductReview
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/reviews-queue [get]
func (h *ModerationHandler) ReviewsQueue(c *gin.Context) {
	reviews, err := h.moderationUseCase.ListReviewsQueue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes the post together with its product reviews and featured products
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id} [delete]
func (h *ModerationHandler) DeletePost(c *gin.Context) {
	if err := h.moderationUseCase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// DeleteReview godoc
// @Summary      Delete a product review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/reviews/{id} [delete]
func (h *ModerationHandler) DeleteReview(c *gin.Context) {
	if err := h.moderationUseCase.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TransitionPost godoc
// @Summary      Change a post status
// @Description  Approve, reject, archive or restore a post. Disallowed transitions return 400 and leave the post unchanged.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string         true  "Post ID"
// @Param        request body  StatusRequest  true  "Target status"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id}/status [put]
func (h *ModerationHandler) TransitionPost(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	post, err := h.moderationUseCase.TransitionPost(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// TransitionReview godoc
// @Summary      Change a product review status
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string         true  "Review ID"
// @Param        request body  StatusRequest  true  "Target status"
// @Success      200  {object}  entity.ProductReview
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/reviews/{id}/status [put]
func (h *ModerationHandler) TransitionReview(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	review, err := h.moderationUseCase.TransitionReview(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, review)
}
