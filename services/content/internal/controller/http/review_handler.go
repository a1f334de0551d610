package http

import (
	"net/http"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	logger        *logger.Logger
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		logger:        logger,
	}
}

// ListReviews godoc
// @Summary      List product reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status" Enums(REVIEW, PUBLISHED)
// @Param        post_id query     string  false  "Filter by owning post"
// @Success      200  {array}   entity.ProductReview
// @Failure      400  {object}  map[string]string
// @Router       /admin/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewUseCase.ListReviews(c.Request.Context(), c.Query("status"), c.Query("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary      Create a product review
// @Description  Rating defaults to 5 and must be a half-star value in [1,5]; status defaults to PUBLISHED
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.NewReview true "Review"
// @Success      201  {object}  entity.ProductReview
// @Failure      400  {object}  map[string]string
// @Router       /admin/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req entity.NewReview
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	review, err := h.reviewUseCase.CreateReview(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetReview godoc
// @Summary      Get a product review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  entity.ProductReview
// @Failure      404  {object}  map[string]string
// @Router       /admin/reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewUseCase.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// UpdateReview godoc
// @Summary      Update a product review
// @Description  Partial update. Approval is REVIEW -> PUBLISHED; published reviews cannot return to the queue.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string              true  "Review ID"
// @Param        request body  entity.ReviewPatch  true  "Fields to change"
// @Success      200  {object}  entity.ProductReview
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var patch entity.ReviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// ListPublishedReviews godoc
// @Summary      List published product reviews
// @Tags         public
// @Produce      json
// @Param        limit  query     int  false  "Limit"   default(20)
// @Param        offset query     int  false  "Offset"  default(0)
// @Success      200  {array}   entity.ProductReview
// @Router       /reviews [get]
func (h *ReviewHandler) ListPublishedReviews(c *gin.Context) {
	limit, offset := pagination(c, 20)

	reviews, err := h.reviewUseCase.ListPublishedReviews(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
