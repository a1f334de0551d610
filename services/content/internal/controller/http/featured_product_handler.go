package http

import (
	"net/http"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FeaturedProductHandler struct {
	featuredUseCase usecase.FeaturedProductUseCase
	logger          *logger.Logger
}

func NewFeaturedProductHandler(featuredUseCase usecase.FeaturedProductUseCase, logger *logger.Logger) *FeaturedProductHandler {
	return &FeaturedProductHandler{
		featuredUseCase: featuredUseCase,
		logger:          logger,
	}
}

// ListFeaturedProducts godoc
// @Summary      List featured products
// @Tags         featured-products
// @Produce      json
// @Security     BearerAuth
// @Param        post_id query     string  false  "Only products of this post"
// @Success      200  {array}   entity.FeaturedProduct
// @Router       /admin/featured-products [get]
func (h *FeaturedProductHandler) ListFeaturedProducts(c *gin.Context) {
	products, err := h.featuredUseCase.ListFeaturedProducts(c.Request.Context(), c.Query("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateFeaturedProduct godoc
// @Summary      Create a featured product
// @Tags         featured-products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.NewFeaturedProduct true "Featured product"
// @Success      201  {object}  entity.FeaturedProduct
// @Failure      400  {object}  map[string]string
// @Router       /admin/featured-products [post]
func (h *FeaturedProductHandler) CreateFeaturedProduct(c *gin.Context) {
	var req entity.NewFeaturedProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.featuredUseCase.CreateFeaturedProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetFeaturedProduct godoc
// @Summary      Get a featured product
// @Tags         featured-products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Featured product ID"
// @Success      200  {object}  entity.FeaturedProduct
// @Failure      404  {object}  map[string]string
// @Router       /admin/featured-products/{id} [get]
func (h *FeaturedProductHandler) GetFeaturedProduct(c *gin.Context) {
	product, err := h.featuredUseCase.GetFeaturedProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateFeaturedProduct godoc
// @Summary      Update a featured product
// @Tags         featured-products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                       true  "Featured product ID"
// @Param        request body  entity.FeaturedProductPatch  true  "Fields to change"
// @Success      200  {object}  entity.FeaturedProduct
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/featured-products/{id} [put]
func (h *FeaturedProductHandler) UpdateFeaturedProduct(c *gin.Context) {
	var patch entity.FeaturedProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.featuredUseCase.UpdateFeaturedProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteFeaturedProduct godoc
// @Summary      Delete a featured product
// @Tags         featured-products
// @Security     BearerAuth
// @Param        id   path      string  true  "Featured product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/featured-products/{id} [delete]
func (h *FeaturedProductHandler) DeleteFeaturedProduct(c *gin.Context) {
	if err := h.featuredUseCase.DeleteFeaturedProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Featured product deleted successfully"})
}
