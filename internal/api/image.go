package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/service"
)

// ImageHandler serves stored meal images.
type ImageHandler struct {
	images service.IImageService
	logger *zap.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(images service.IImageService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{images: images, logger: logger}
}

// RegisterRoutes registers image routes on router.
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/images/:id", h.GetImage)
}

// GetImage handles GET /images/:id. Linked and object-store images redirect;
// inline images are served directly.
func (h *ImageHandler) GetImage(c *gin.Context) {
	id, ok := idParam(c, "id", "image")
	if !ok {
		return
	}
	content, err := h.images.Content(c.Request.Context(), id)
	if err != nil {
		serviceError(c, h.logger, err, "Image not found")
		return
	}
	if content.RedirectURL != "" {
		c.Redirect(http.StatusFound, content.RedirectURL)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, content.MimeType, content.Data)
}
