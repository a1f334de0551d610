package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetSettings(t *testing.T) {
	mockUseCase := new(MockSettingsUseCase)
	handler := NewSettingsHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.GET("/site-settings", handler.GetSettings)

	settings := entity.DefaultSiteSettings()
	mockUseCase.On("GetSettings", mock.Anything).Return(&settings, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/site-settings", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, settings.LogoText, response["logo_text"])
	mockUseCase.AssertExpectations(t)
}

func TestUpdateSettings(t *testing.T) {
	mockUseCase := new(MockSettingsUseCase)
	handler := NewSettingsHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.PUT("/admin/site-settings", handler.UpdateSettings)

	logo := "Brew Lab"
	useImage := false
	patch := entity.SettingsPatch{LogoText: &logo, UseLogoImage: &useImage}
	mockUseCase.On("UpdateSettings", mock.Anything, patch).
		Return(&entity.SiteSettings{LogoText: logo}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/site-settings", bytes.NewBufferString(`{"logo_text":"Brew Lab","use_logo_image":false}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateSettings_InvalidBody(t *testing.T) {
	mockUseCase := new(MockSettingsUseCase)
	handler := NewSettingsHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.PUT("/admin/site-settings", handler.UpdateSettings)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/site-settings", bytes.NewBufferString(`{"use_logo_image":"yes"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything)
}
