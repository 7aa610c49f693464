package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SiteInfo is the public branding shown on the login and catalog pages.
type SiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SiteHandler struct {
	info SiteInfo
}

func NewSiteHandler(name, description string) *SiteHandler {
	return &SiteHandler{info: SiteInfo{Name: name, Description: description}}
}

// Site godoc
// @Summary      Site information
// @Description  Site name and description for page titles
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  SiteInfo
// @Router       /site [get]
func (h *SiteHandler) Site(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
