package http

import (
	"net/http"
	"testing"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupContentRouter(uc *MockContentUseCase) *gin.Engine {
	handler := NewContentHandler(uc, logger.New())

	router := newTestRouter("admin-1")
	router.GET("/admin/contents", handler.ListContents)
	router.POST("/admin/contents", handler.CreateContent)
	router.GET("/admin/contents/generate-key", handler.GenerateKey)
	router.GET("/admin/contents/youtube-info", handler.YouTubeInfo)
	router.POST("/admin/contents/bulk-visibility", handler.BulkSetVisibility)
	router.GET("/admin/contents/:id", handler.GetContent)
	router.PUT("/admin/contents/:id", handler.UpdateContent)
	router.DELETE("/admin/contents/:id", handler.DeleteContent)
	router.POST("/admin/contents/:id/toggle-visibility", handler.ToggleVisibility)
	return router
}

func TestListContents_VisibleFilter(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	hidden := false
	uc.On("ListContents", entity.ContentFilter{Visible: &hidden}).Return(&entity.ContentPage{Items: []*entity.Content{}}, nil)

	w := doRequest(router, "GET", "/admin/contents?visible=false", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)

	w = doRequest(router, "GET", "/admin/contents?visible=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContent(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("CreateContent", entity.ContentInput{Title: "Core", YoutubeURL: "https://youtu.be/dQw4w9WgXcQ"}).
		Return(&entity.Content{ID: "c1", VideoKey: "Ab3dE6gH"}, nil)

	w := doRequest(router, "POST", "/admin/contents", CreateContentRequest{Title: "Core", YoutubeURL: "https://youtu.be/dQw4w9WgXcQ"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Ab3dE6gH")
}

func TestCreateContent_Errors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrVideoKeyTaken, http.StatusConflict},
		{usecase.ErrInvalidYoutubeURL, http.StatusBadRequest},
		{usecase.ErrContentFieldsRequired, http.StatusBadRequest},
	}

	for _, tt := range tests {
		uc := new(MockContentUseCase)
		router := setupContentRouter(uc)
		uc.On("CreateContent", mock.Anything).Return(nil, tt.err)

		w := doRequest(router, "POST", "/admin/contents", CreateContentRequest{Title: "Core"})

		assert.Equal(t, tt.code, w.Code, tt.err.Error())
	}
}

func TestUpdateContent_PartialFields(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("UpdateContent", "c1", mock.MatchedBy(func(u entity.ContentUpdate) bool {
		return u.Title != nil && *u.Title == "Renamed" && u.Description == nil && u.Visible == nil
	})).Return(&entity.Content{ID: "c1", Title: "Renamed"}, nil)

	w := doRequest(router, "PUT", "/admin/contents/c1", map[string]string{"title": "Renamed"})

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestUpdateContent_VideoKey(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("UpdateContent", "c1", mock.MatchedBy(func(u entity.ContentUpdate) bool {
		return u.VideoKey != nil && *u.VideoKey == "core-02"
	})).Return(&entity.Content{ID: "c1", VideoKey: "core-02"}, nil)
	uc.On("UpdateContent", "c2", mock.Anything).Return(nil, usecase.ErrVideoKeyTaken)
	uc.On("UpdateContent", "c3", mock.Anything).Return(nil, usecase.ErrInvalidVideoKey)

	w := doRequest(router, "PUT", "/admin/contents/c1", map[string]string{"video_key": "core-02"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"video_key":"core-02"`)

	w = doRequest(router, "PUT", "/admin/contents/c2", map[string]string{"video_key": "taken"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, "PUT", "/admin/contents/c3", map[string]string{"video_key": "bad key"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteContent(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("DeleteContent", "c1").Return(nil)
	uc.On("DeleteContent", "missing").Return(usecase.ErrContentNotFound)

	w := doRequest(router, "DELETE", "/admin/contents/c1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, "DELETE", "/admin/contents/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleVisibility(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("ToggleVisibility", "c1").Return(true, nil)

	w := doRequest(router, "POST", "/admin/contents/c1/toggle-visibility", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"c1","visible":true}`, w.Body.String())
}

func TestBulkSetVisibility_NoneSelected(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("BulkSetVisibility", []string(nil), false).Return(int64(0), usecase.ErrNoContentsSelected)

	w := doRequest(router, "POST", "/admin/contents/bulk-visibility", BulkVisibilityRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateKey(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("GenerateKey").Return("Zx9Yw8Vu")

	w := doRequest(router, "GET", "/admin/contents/generate-key", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"video_key":"Zx9Yw8Vu"}`, w.Body.String())
}

func TestYouTubeInfo(t *testing.T) {
	uc := new(MockContentUseCase)
	router := setupContentRouter(uc)

	uc.On("YouTubeInfo", "https://youtu.be/dQw4w9WgXcQ").Return(&entity.YouTubeInfo{VideoID: "dQw4w9WgXcQ"}, nil)
	uc.On("YouTubeInfo", "nope").Return(nil, usecase.ErrInvalidYoutubeURL)

	w := doRequest(router, "GET", "/admin/contents/youtube-info?url=https://youtu.be/dQw4w9WgXcQ", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dQw4w9WgXcQ")

	w = doRequest(router, "GET", "/admin/contents/youtube-info?url=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
