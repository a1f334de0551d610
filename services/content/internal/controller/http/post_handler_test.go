package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewPostHandler(t *testing.T) {
	handler := NewPostHandler(new(MockPostUseCase), logger.NewNop())
	assert.NotNil(t, handler)
}

func TestListPosts_DefaultPagination(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/admin/posts", handler.ListPosts)

	posts := []*entity.Post{
		{ID: "post-1", Title: "Draft", Status: entity.PostStatusDraft},
		{ID: "post-2", Title: "Live", Status: entity.PostStatusPublished},
	}
	mockUseCase.On("ListPosts", mock.Anything, 50, 0).Return(posts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_ClampsLimit(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/admin/posts", handler.ListPosts)

	mockUseCase.On("ListPosts", mock.Anything, 100, 0).Return([]*entity.Post{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/posts?limit=500&offset=-3", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.POST("/admin/posts", handler.CreatePost)

	in := entity.NewPost{Title: "Cold Brew at Home", Content: "<p>Steep overnight.</p>"}
	mockUseCase.On("CreatePost", mock.Anything, in).
		Return(&entity.Post{ID: "post-1", Title: in.Title, Slug: "cold-brew-at-home", Status: entity.PostStatusDraft}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/posts", bytes.NewBufferString(`{"title":"Cold Brew at Home","content":"<p>Steep overnight.</p>"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "DRAFT", response["status"])
	assert.Equal(t, "cold-brew-at-home", response["slug"])
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_SlugTaken(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.POST("/admin/posts", handler.CreatePost)

	mockUseCase.On("CreatePost", mock.Anything, mock.AnythingOfType("entity.NewPost")).
		Return(nil, entity.NewValidationError("slug", "already in use"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/posts", bytes.NewBufferString(`{"title":"A","slug":"taken"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/admin/posts/:id", handler.GetPost)

	mockUseCase.On("GetPost", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/posts/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.PUT("/admin/posts/:id", handler.UpdatePost)

	title := "New Title"
	status := entity.PostStatusPublished
	patch := entity.PostPatch{Title: &title, Status: &status}
	mockUseCase.On("UpdatePost", mock.Anything, "post-1", patch).
		Return(&entity.Post{ID: "post-1", Title: title, Status: status}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/posts/post-1", bytes.NewBufferString(`{"title":"New Title","status":"PUBLISHED"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_InvalidJSON(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.PUT("/admin/posts/:id", handler.UpdatePost)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/posts/post-1", bytes.NewBufferString(`{"title":`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePost_StoreFailure(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.PUT("/admin/posts/:id", handler.UpdatePost)

	mockUseCase.On("UpdatePost", mock.Anything, "post-1", mock.AnythingOfType("entity.PostPatch")).
		Return(nil, errors.New("database is locked"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/posts/post-1", bytes.NewBufferString(`{"excerpt":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSlugRoutes(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/admin/slugs/:slug", handler.GetPostBySlug)
	router.PUT("/admin/slugs/:slug", handler.UpdatePostBySlug)
	router.DELETE("/admin/slugs/:slug", handler.DeletePostBySlug)

	excerpt := "Short"
	mockUseCase.On("GetPostBySlug", mock.Anything, "best-air-fryers").
		Return(&entity.Post{ID: "post-1", Slug: "best-air-fryers"}, nil)
	mockUseCase.On("UpdatePostBySlug", mock.Anything, "best-air-fryers", entity.PostPatch{Excerpt: &excerpt}).
		Return(&entity.Post{ID: "post-1", Slug: "best-air-fryers", Excerpt: excerpt}, nil)
	mockUseCase.On("DeletePostBySlug", mock.Anything, "best-air-fryers").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/slugs/best-air-fryers", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", "/admin/slugs/best-air-fryers", bytes.NewBufferString(`{"excerpt":"Short"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/admin/slugs/best-air-fryers", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestListPublishedPosts(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPublishedPosts)

	mockUseCase.On("ListPublishedPosts", mock.Anything, 5, 10).
		Return([]*entity.Post{{ID: "post-1", Status: entity.PostStatusPublished}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?limit=5&offset=10", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPublishedPost_NotPublished(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/posts/:slug", handler.GetPublishedPost)

	mockUseCase.On("GetPublishedPost", mock.Anything, "still-a-draft").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/still-a-draft", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}
