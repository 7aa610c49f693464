package http

import (
	"errors"
	"net/http"
	"strconv"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/middleware"
	"pilates-club/services/catalog/internal/entity"
	"pilates-club/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func (h *CatalogHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSort),
		errors.Is(err, usecase.ErrVideoKeyMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrContentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

// ListVideos godoc
// @Summary      List videos
// @Description  Visible videos with thumbnails and durations, optionally grouped by category
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        sort      query  string  false  "newest or oldest"  default(newest)
// @Param        category  query  string  false  "Only this category"
// @Param        group     query  string  false  "Set to category to group the result"
// @Success      200  {object}  entity.Catalog
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /videos [get]
func (h *CatalogHandler) ListVideos(c *gin.Context) {
	opts := entity.ListOptions{
		Sort:     entity.SortOrder(c.DefaultQuery("sort", string(entity.SortNewest))),
		Category: c.Query("category"),
		Group:    c.Query("group") == "category",
	}

	catalog, err := h.catalogUseCase.ListVideos(c.Request.Context(), opts)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// ListCategories godoc
// @Summary      List categories
// @Description  Distinct categories of visible videos
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  CategoriesResponse
// @Failure      401  {object}  map[string]string
// @Router       /videos/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUseCase.ListCategories(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}

// Watch godoc
// @Summary      Watch page
// @Description  Resolve a visible video by its key and return the player configuration
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        videoKey  path   string  true   "Video key"
// @Param        mobile    query  bool    false  "Force the mobile player; detected from User-Agent when omitted"
// @Success      200  {object}  entity.WatchPage
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /watch/{videoKey} [get]
func (h *CatalogHandler) Watch(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	mobile := usecase.IsMobileAgent(c.GetHeader("User-Agent"))
	if raw := c.Query("mobile"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			mobile = v
		}
	}

	page, err := h.catalogUseCase.Watch(c.Request.Context(), userID, c.Param("videoKey"), mobile)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
