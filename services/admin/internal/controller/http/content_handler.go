package http

import (
	"net/http"
	"strconv"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewContentHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

type CreateContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	YoutubeURL  string `json:"youtube_url"`
	// VideoKey is generated when empty.
	VideoKey string `json:"video_key"`
	Category string `json:"category"`
	Visible  *bool  `json:"visible"`
	// Duration is ISO-8601, e.g. PT12M30S. Looked up on YouTube when empty.
	Duration string `json:"duration"`
}

type UpdateContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	YoutubeURL  *string `json:"youtube_url"`
	VideoKey    *string `json:"video_key"`
	Category    *string `json:"category"`
	Visible     *bool   `json:"visible"`
}

type BulkVisibilityRequest struct {
	IDs     []string `json:"ids"`
	Visible bool     `json:"visible"`
}

type VisibilityResponse struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
}

type KeyResponse struct {
	VideoKey string `json:"video_key"`
}

// ListContents godoc
// @Summary      List contents
// @Description  All contents newest first, optionally only visible or hidden ones
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Param        visible    query  bool  false  "Filter by visibility"
// @Param        page       query  int   false  "Page number"  default(1)
// @Param        page_size  query  int   false  "Page size"    default(20)
// @Success      200  {object}  entity.ContentPage
// @Router       /admin/contents [get]
func (h *ContentHandler) ListContents(c *gin.Context) {
	filter := entity.ContentFilter{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	if raw := c.Query("visible"); raw != "" {
		visible, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "visible must be true or false"})
			return
		}
		filter.Visible = &visible
	}

	page, err := h.contentUseCase.ListContents(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetContent godoc
// @Summary      Get content
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Content ID"
// @Success      200  {object}  entity.Content
// @Failure      404  {object}  map[string]string
// @Router       /admin/contents/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	content, err := h.contentUseCase.GetContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// CreateContent godoc
// @Summary      Add content
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  CreateContentRequest  true  "Content data"
// @Success      201  {object}  entity.Content
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/contents [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	content, err := h.contentUseCase.CreateContent(c.Request.Context(), entity.ContentInput{
		Title:       req.Title,
		Description: req.Description,
		YoutubeURL:  req.YoutubeURL,
		VideoKey:    req.VideoKey,
		Category:    req.Category,
		Visible:     req.Visible,
		Duration:    req.Duration,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, content)
}

// UpdateContent godoc
// @Summary      Edit content
// @Description  Only the fields present in the body change
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                true  "Content ID"
// @Param        request  body  UpdateContentRequest  true  "Changed fields"
// @Success      200  {object}  entity.Content
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/contents/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	content, err := h.contentUseCase.UpdateContent(c.Request.Context(), c.Param("id"), entity.ContentUpdate{
		Title:       req.Title,
		Description: req.Description,
		YoutubeURL:  req.YoutubeURL,
		VideoKey:    req.VideoKey,
		Category:    req.Category,
		Visible:     req.Visible,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// DeleteContent godoc
// @Summary      Delete content
// @Tags         contents
// @Security     BearerAuth
// @Param        id  path  string  true  "Content ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/contents/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	if err := h.contentUseCase.DeleteContent(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleVisibility godoc
// @Summary      Toggle visibility
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Content ID"
// @Success      200  {object}  VisibilityResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/contents/{id}/toggle-visibility [post]
func (h *ContentHandler) ToggleVisibility(c *gin.Context) {
	id := c.Param("id")
	visible, err := h.contentUseCase.ToggleVisibility(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, VisibilityResponse{ID: id, Visible: visible})
}

// BulkSetVisibility godoc
// @Summary      Show or hide many contents
// @Tags         contents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  BulkVisibilityRequest  true  "Content IDs and target visibility"
// @Success      200  {object}  AffectedResponse
// @Failure      400  {object}  map[string]string
// @Router       /admin/contents/bulk-visibility [post]
func (h *ContentHandler) BulkSetVisibility(c *gin.Context) {
	var req BulkVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	affected, err := h.contentUseCase.BulkSetVisibility(c.Request.Context(), req.IDs, req.Visible)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AffectedResponse{Affected: affected})
}

// GenerateKey godoc
// @Summary      Suggest a video key
// @Description  Random 8 character key; uniqueness is checked on save
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  KeyResponse
// @Router       /admin/contents/generate-key [get]
func (h *ContentHandler) GenerateKey(c *gin.Context) {
	c.JSON(http.StatusOK, KeyResponse{VideoKey: h.contentUseCase.GenerateKey()})
}

// YouTubeInfo godoc
// @Summary      Inspect a YouTube link
// @Description  Video id, thumbnail and, when an API key is configured, duration and title
// @Tags         contents
// @Produce      json
// @Security     BearerAuth
// @Param        url  query  string  true  "YouTube URL"
// @Success      200  {object}  entity.YouTubeInfo
// @Failure      400  {object}  map[string]string
// @Router       /admin/contents/youtube-info [get]
func (h *ContentHandler) YouTubeInfo(c *gin.Context) {
	info, err := h.contentUseCase.YouTubeInfo(c.Request.Context(), c.Query("url"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
