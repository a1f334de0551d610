package http

import (
	"net/http"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      List all posts
// @Description  Every post regardless of status, most recently updated first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Limit"   default(50)
// @Param        offset query     int  false  "Offset"  default(0)
// @Success      200  {array}   entity.Post
// @Failure      401  {object}  map[string]string
// @Router       /admin/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, offset := pagination(c, 50)

	posts, err := h.postUseCase.ListPosts(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Creates a manually authored post with status DRAFT
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.NewPost true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req entity.NewPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get a post by ID
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Partial update. A status change must be allowed by the post transition table; a slug change must be unique.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string            true  "Post ID"
// @Param        request body  entity.PostPatch  true  "Fields to change"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var patch entity.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPostBySlug godoc
// @Summary      Get a post by slug
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        slug path      string  true  "Post slug"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /admin/slugs/{slug} [get]
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.postUseCase.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePostBySlug godoc
// @Summary      Update a post by slug
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slug    path  string            true  "Post slug"
// @Param        request body  entity.PostPatch  true  "Fields to change"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/slugs/{slug} [put]
func (h *PostHandler) UpdatePostBySlug(c *gin.Context) {
	var patch entity.PostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := h.postUseCase.UpdatePostBySlug(c.Request.Context(), c.Param("slug"), patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePostBySlug godoc
// @Summary      Delete a post by slug
// @Tags         posts
// @Security     BearerAuth
// @Param        slug path      string  true  "Post slug"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/slugs/{slug} [delete]
func (h *PostHandler) DeletePostBySlug(c *gin.Context) {
	if err := h.postUseCase.DeletePostBySlug(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// ListPublishedPosts godoc
// @Summary      List published posts
// @Tags         public
// @Produce      json
// @Param        limit  query     int  false  "Limit"   default(20)
// @Param        offset query     int  false  "Offset"  default(0)
// @Success      200  {array}   entity.Post
// @Router       /posts [get]
func (h *PostHandler) ListPublishedPosts(c *gin.Context) {
	limit, offset := pagination(c, 20)

	posts, err := h.postUseCase.ListPublishedPosts(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPublishedPost godoc
// @Summary      Get a published post
// @Description  A published post with its published reviews and featured products
// @Tags         public
// @Produce      json
// @Param        slug path      string  true  "Post slug"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{slug} [get]
func (h *PostHandler) GetPublishedPost(c *gin.Context) {
	post, err := h.postUseCase.GetPublishedPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
